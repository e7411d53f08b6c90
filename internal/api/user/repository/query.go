package userRepository

const (
	userColumns = `
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
	`

	queryListUsers = `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY created_at DESC
	`

	queryGetUserByID = `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = :id
	`

	querySearchUsers = `
		SELECT ` + userColumns + `
		FROM users
		WHERE first_name ILIKE '%' || :query || '%'
		   OR last_name ILIKE '%' || :query || '%'
		   OR email ILIKE '%' || :query || '%'
		ORDER BY created_at DESC
	`

	queryToggleLock = `
		UPDATE users
		SET
			account_locked = NOT account_locked,
			updated_at = :updated_at
		WHERE id = :id
		RETURNING account_locked
	`

	queryUpdateUser = `
		UPDATE users
		SET
			first_name = :first_name,
			last_name = :last_name,
			email = :email,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryUpdateProfileImage = `
		UPDATE users
		SET
			profile_image = :profile_image,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryUpdatePassword = `
		UPDATE users
		SET
			password = :password,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteUser = `
		DELETE FROM users
		WHERE id = :id
	`

	queryListBlogsByCreator = `
		SELECT
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
			u.account_locked AS creator_account_locked
		FROM blogs b
		JOIN users u ON u.id = b.creator_id
		WHERE b.creator_id = :user_id
		ORDER BY b.created_at DESC
	`

	blogJoinColumns = `
			b.title AS blog_title,
			b.description AS blog_description,
			b.body AS blog_body,
			b.preview AS blog_preview,
			b.creator_id AS blog_creator_id,
			b.created_at AS blog_created_at,
			b.updated_at AS blog_updated_at,
			cu.first_name AS creator_first_name,
			cu.last_name AS creator_last_name,
			cu.email AS creator_email,
			cu.profile_image AS creator_profile_image,
			cu.role AS creator_role,
			cu.account_locked AS creator_account_locked
	`

	queryListLikesByUser = `
		SELECT
			l.id,
			l.blog_id,
			l.user_id,
			l.created_at,
			l.updated_at,
			` + blogJoinColumns + `
		FROM likes l
		JOIN blogs b ON b.id = l.blog_id
		JOIN users cu ON cu.id = b.creator_id
		WHERE l.user_id = :user_id
		ORDER BY l.created_at DESC
	`

	queryListCommentsByUser = `
		SELECT
			c.id,
			c.blog_id,
			c.user_id,
			c.content,
			c.created_at,
			c.updated_at,
			` + blogJoinColumns + `
		FROM comments c
		JOIN blogs b ON b.id = c.blog_id
		JOIN users cu ON cu.id = b.creator_id
		WHERE c.user_id = :user_id
		ORDER BY c.created_at DESC
	`

	queryListLikesForBlogs = `
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
		WHERE l.blog_id = ANY(:blog_ids)
		ORDER BY l.created_at DESC
	`

	queryListCommentsForBlogs = `
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
		WHERE c.blog_id = ANY(:blog_ids)
		ORDER BY c.created_at DESC
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
