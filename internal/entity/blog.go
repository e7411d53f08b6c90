package entity

import (
	"database/sql"
	"time"
)

type Blog struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Body        string         `db:"body"`
	Preview     string         `db:"preview"`
	CreatorID   string         `db:"creator_id"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

// BlogListItem is the bounded list/search view: the blog row plus its
// creator, aggregate counts and category names, fetched in fixed queries
// rather than via a generic relation loader.
type BlogListItem struct {
	Blog
	Creator      User
	Categories   []Category
	LikeCount    int
	CommentCount int
}

type Category struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
