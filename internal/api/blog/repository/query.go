package blogRepository

const (
	queryCreateBlog = `
		INSERT INTO blogs (
			id,
			title,
			description,
			body,
			preview,
			creator_id,
			created_at,
			updated_at
		) VALUES (
			:id,
			:title,
			:description,
			:body,
			:preview,
			:creator_id,
			:created_at,
			:updated_at
		)
	`

	queryGetBlogByID = `
		SELECT
			id,
			title,
			description,
			body,
			preview,
			creator_id,
			created_at,
			updated_at
		FROM blogs
		WHERE id = :id
	`

	blogListColumns = `
			b.id,
			b.title,
			b.description,
			b.body,
			b.preview,
			b.creator_id,
			b.created_at,
			b.updated_at,
			u.first_name AS creator_first_name,
			u.last_name AS creator_last_name,
			u.email AS creator_email,
			u.profile_image AS creator_profile_image,
			u.role AS creator_role,
			u.account_locked AS creator_account_locked,
			COALESCE(lc.like_count, 0) AS like_count,
			COALESCE(cc.comment_count, 0) AS comment_count
	`

	blogListJoins = `
		FROM blogs b
		JOIN users u ON u.id = b.creator_id
		LEFT JOIN (
			SELECT blog_id, COUNT(*) AS like_count
			FROM likes
			GROUP BY blog_id
		) lc ON lc.blog_id = b.id
		LEFT JOIN (
			SELECT blog_id, COUNT(*) AS comment_count
			FROM comments
			GROUP BY blog_id
		) cc ON cc.blog_id = b.id
	`

	queryListBlogs = `
		SELECT ` + blogListColumns + blogListJoins + `
		ORDER BY like_count DESC, b.created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountBlogs = `
		SELECT COUNT(*)
		FROM blogs
	`

	querySearchBlogsByTitle = `
		SELECT ` + blogListColumns + blogListJoins + `
		WHERE (:query = '' OR b.title ILIKE '%' || :query || '%')
		ORDER BY like_count DESC, b.created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountBlogsByTitle = `
		SELECT COUNT(*)
		FROM blogs b
		WHERE (:query = '' OR b.title ILIKE '%' || :query || '%')
	`

	querySearchBlogsByTags = `
		SELECT ` + blogListColumns + blogListJoins + `
		WHERE EXISTS (
			SELECT 1
			FROM blog_categories bc
			JOIN categories cat ON cat.id = bc.category_id
			WHERE bc.blog_id = b.id
			  AND cat.name = ANY(:tags)
		)
		ORDER BY like_count DESC, b.created_at DESC
		LIMIT :limit
	`

	queryUpdateBlog = `
		UPDATE blogs
		SET
			title = :title,
			description = :description,
			body = :body,
			preview = :preview,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteBlog = `
		DELETE FROM blogs
		WHERE id = :id
	`

	queryGetBlogCreator = `
		SELECT
			u.id,
			u.first_name,
			u.last_name,
			u.email,
			u.password,
			u.profile_image,
			u.role,
			u.account_locked,
			u.created_at,
			u.updated_at
		FROM users u
		JOIN blogs b ON b.creator_id = u.id
		WHERE b.id = :blog_id
	`

	queryListBlogLikes = `
		SELECT
			l.id,
			l.blog_id,
			l.user_id,
			l.created_at,
			l.updated_at,
			u.first_name AS user_first_name,
			u.last_name AS user_last_name,
			u.email AS user_email,
			u.profile_image AS user_profile_image,
			u.role AS user_role,
			u.account_locked AS user_account_locked,
			u.created_at AS user_created_at,
			u.updated_at AS user_updated_at
		FROM likes l
		JOIN users u ON u.id = l.user_id
		WHERE l.blog_id = :blog_id
		ORDER BY l.created_at DESC
	`

	queryListBlogComments = `
		SELECT
			c.id,
			c.blog_id,
			c.user_id,
			c.content,
			c.created_at,
			c.updated_at,
			u.first_name AS user_first_name,
			u.last_name AS user_last_name,
			u.email AS user_email,
			u.profile_image AS user_profile_image,
			u.role AS user_role,
			u.account_locked AS user_account_locked,
			u.created_at AS user_created_at,
			u.updated_at AS user_updated_at
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.blog_id = :blog_id
		ORDER BY c.created_at DESC
	`

	queryUpsertCategoryByName = `
		INSERT INTO categories (id, name, created_at, updated_at)
		VALUES (:id, :name, :created_at, :updated_at)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, created_at, updated_at
	`

	queryDeleteBlogCategories = `
		DELETE FROM blog_categories
		WHERE blog_id = :blog_id
	`

	queryInsertBlogCategory = `
		INSERT INTO blog_categories (blog_id, category_id)
		VALUES (:blog_id, :category_id)
		ON CONFLICT (blog_id, category_id) DO NOTHING
	`

	queryListCategoriesForBlog = `
		SELECT
			c.id,
			c.name,
			c.created_at,
			c.updated_at
		FROM categories c
		JOIN blog_categories bc ON bc.category_id = c.id
		WHERE bc.blog_id = :blog_id
		ORDER BY c.name ASC
	`

	queryListCategoriesForBlogs = `
		SELECT
			bc.blog_id AS blog_id,
			c.id,
			c.name,
			c.created_at,
			c.updated_at
		FROM categories c
		JOIN blog_categories bc ON bc.category_id = c.id
		WHERE bc.blog_id = ANY(:blog_ids)
		ORDER BY c.name ASC
	`
)
