package categoryRepository

const (
	queryCreateCategory = `
		INSERT INTO categories (id, name, created_at, updated_at)
		VALUES (:id, :name, :created_at, :updated_at)
	`

	queryGetCategoryByID = `
		SELECT
			id,
			name,
			created_at,
			updated_at
		FROM categories
		WHERE id = :id
	`

	queryListCategories = `
		SELECT
			id,
			name,
			created_at,
			updated_at
		FROM categories
		ORDER BY name ASC
	`

	queryUpdateCategory = `
		UPDATE categories
		SET
			name = :name,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteCategory = `
		DELETE FROM categories
		WHERE id = :id
	`
)
