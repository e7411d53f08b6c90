package blog

import "time"

const PageSize = 10

type CreateBlogRequest struct {
	Title       string   `json:"title" validate:"required,max=255"`
	Description string   `json:"description" validate:"max=1000"`
	Body        string   `json:"body" validate:"required"`
	Preview     string   `json:"preview" validate:"required"`
	Categories  []string `json:"categories" validate:"required,min=1,dive,required,max=255"`
}

type UpdateBlogRequest struct {
	Title       string   `json:"title" validate:"required,max=255"`
	Description string   `json:"description" validate:"max=1000"`
	Body        string   `json:"body" validate:"required"`
	Preview     string   `json:"preview" validate:"required"`
	Categories  []string `json:"categories" validate:"required,min=1,dive,required,max=255"`
}

// SearchRequest drives both search modes: when Tags is non-empty the
// query string is ignored and CurrentPage is forced to 1.
type SearchRequest struct {
	Query       string   `json:"query"`
	CurrentPage int      `json:"currentPage"`
	Tags        []string `json:"tags"`
}

type UserSummary struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         string    `json:"email"`
	ProfileImage  string    `json:"profile_image"`
	Role          string    `json:"role"`
	AccountLocked bool      `json:"account_locked"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LikeResponse struct {
	ID        string      `json:"id"`
	BlogID    string      `json:"blog_id"`
	UserID    string      `json:"user_id"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	User      UserSummary `json:"user"`
}

type CommentResponse struct {
	ID        string      `json:"id"`
	BlogID    string      `json:"blog_id"`
	UserID    string      `json:"user_id"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	User      UserSummary `json:"user"`
}

type BlogResponse struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Description  *string            `json:"description"`
	Body         string             `json:"body"`
	Preview      string             `json:"preview"`
	CreatorID    string             `json:"creator_id"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
	User         UserSummary        `json:"user"`
	Categories   []CategoryResponse `json:"categories"`
	LikeCount    int                `json:"like_count"`
	CommentCount int                `json:"comment_count"`

	// Likes and Comments are only hydrated on the detail endpoint.
	Likes    []LikeResponse    `json:"likes,omitempty"`
	Comments []CommentResponse `json:"comments,omitempty"`
}

type BlogListResponse struct {
	Blogs        []BlogResponse `json:"blogs"`
	CurrentPage  int            `json:"currentPage"`
	HasMoreBlogs bool           `json:"hasMoreBlogs"`
}

type BlogDetailResponse struct {
	Message string       `json:"message,omitempty"`
	Blog    BlogResponse `json:"blog"`
}

type UploadResponse struct {
	URL string `json:"url"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
