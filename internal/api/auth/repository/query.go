package authRepository

const (
	queryCreateUser = `
		INSERT INTO users (
			id,
			first_name,
			last_name,
			email,
			password,
			profile_image,
			role,
			account_locked,
			created_at,
			updated_at
		) VALUES (
			:id,
			:first_name,
			:last_name,
			:email,
			:password,
			:profile_image,
			:role,
			:account_locked,
			:created_at,
			:updated_at
		)
	`

	queryGetUserByEmail = `
		SELECT
			id,
			first_name,
			last_name,
			email,
			password,
			profile_image,
			role,
			account_locked,
			created_at,
			updated_at
		FROM users
		WHERE email = :email
	`

	queryGetUserByID = `
		SELECT
			id,
			first_name,
			last_name,
			email,
			password,
			profile_image,
			role,
			account_locked,
			created_at,
			updated_at
		FROM users
		WHERE id = :id
	`
)
