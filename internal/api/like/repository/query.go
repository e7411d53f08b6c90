package likeRepository

const (
	queryBlogExists = `
		SELECT EXISTS (
			SELECT 1
			FROM blogs
			WHERE id = :blog_id
		)
	`

	queryDeleteLikeByBlogAndUser = `
		DELETE FROM likes
		WHERE blog_id = :blog_id AND user_id = :user_id
	`

	queryInsertLike = `
		INSERT INTO likes (
			id,
			blog_id,
			user_id,
			created_at,
			updated_at
		) VALUES (
			:id,
			:blog_id,
			:user_id,
			:created_at,
			:updated_at
		)
		ON CONFLICT (blog_id, user_id) DO NOTHING
	`

	likeWithUserColumns = `
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
	`

	queryGetLikeByID = `
		SELECT ` + likeWithUserColumns + `
		FROM likes l
		JOIN users u ON u.id = l.user_id
		WHERE l.id = :id AND l.blog_id = :blog_id
	`

	queryListLikesForBlog = `
		SELECT ` + likeWithUserColumns + `
		FROM likes l
		JOIN users u ON u.id = l.user_id
		WHERE l.blog_id = :blog_id
		ORDER BY l.created_at DESC
	`
)
