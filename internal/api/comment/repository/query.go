package commentRepository

const (
	queryBlogExists = `
		SELECT EXISTS (
			SELECT 1
			FROM blogs
			WHERE id = :blog_id
		)
	`

	queryCreateComment = `
		INSERT INTO comments (
			id,
			blog_id,
			user_id,
			content,
			created_at,
			updated_at
		) VALUES (
			:id,
			:blog_id,
			:user_id,
			:content,
			:created_at,
			:updated_at
		)
	`

	commentWithAuthorColumns = `
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
	`

	queryGetCommentByID = `
		SELECT ` + commentWithAuthorColumns + `
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.id = :id AND c.blog_id = :blog_id
	`

	queryListCommentsForBlog = `
		SELECT ` + commentWithAuthorColumns + `
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.blog_id = :blog_id
		ORDER BY c.created_at DESC
	`

	queryUpdateComment = `
		UPDATE comments
		SET
			content = :content,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteComment = `
		DELETE FROM comments
		WHERE id = :id
	`
)
