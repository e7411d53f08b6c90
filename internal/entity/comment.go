package entity

import "time"

type Comment struct {
	ID        string    `db:"id"`
	BlogID    string    `db:"blog_id"`
	UserID    string    `db:"user_id"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// CommentWithAuthor pairs a comment with the user who wrote it.
type CommentWithAuthor struct {
	Comment
	Author User
}

// CommentWithBlog pairs a comment with its parent blog and that blog's
// creator, used by the user profile aggregate.
type CommentWithBlog struct {
	Comment
	Blog        Blog
	BlogCreator User
}
