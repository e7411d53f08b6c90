package entity

import "time"

type Like struct {
	ID        string    `db:"id"`
	BlogID    string    `db:"blog_id"`
	UserID    string    `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type LikeWithUser struct {
	Like
	User User
}

// LikeWithBlog pairs a like with the blog it targets and that blog's
// creator, used by the user profile aggregate.
type LikeWithBlog struct {
	Like
	Blog        Blog
	BlogCreator User
}
