package user

import "time"

type UpdateUserRequest struct {
	FirstName string `json:"first_name" validate:"required,max=255"`
	LastName  string `json:"last_name" validate:"required,max=255"`
	Email     string `json:"email" validate:"required,email,max=255"`
}

type UpdatePasswordRequest struct {
	CurrentPassword      string `json:"current_password" validate:"required"`
	Password             string `json:"password" validate:"required,min=8,max=72"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

type UserResponse struct {
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

// SearchResult is the reduced projection returned by the search endpoint.
type SearchResult struct {
	ID            string `json:"id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	ProfileImage  string `json:"profile_image"`
	Role          string `json:"role"`
	AccountLocked bool   `json:"account_locked"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

type SearchResponse struct {
	Users []SearchResult `json:"users"`
}

type CategoryView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type LikeView struct {
	ID        string       `json:"id"`
	BlogID    string       `json:"blog_id"`
	UserID    string       `json:"user_id"`
	CreatedAt time.Time    `json:"created_at"`
	User      UserResponse `json:"user"`
}

type CommentView struct {
	ID        string       `json:"id"`
	BlogID    string       `json:"blog_id"`
	UserID    string       `json:"user_id"`
	Content   string       `json:"content"`
	CreatedAt time.Time    `json:"created_at"`
	User      UserResponse `json:"user"`
}

// BlogView carries a blog with its creator and fully hydrated likes and
// comments, as embedded in the profile aggregate.
type BlogView struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description *string        `json:"description"`
	Body        string         `json:"body"`
	Preview     string         `json:"preview"`
	CreatorID   string         `json:"creator_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	User        UserResponse   `json:"user"`
	Categories  []CategoryView `json:"categories"`
	Likes       []LikeView     `json:"likes"`
	Comments    []CommentView  `json:"comments"`
}

type LikeWithBlogView struct {
	ID        string    `json:"id"`
	BlogID    string    `json:"blog_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	Blog      BlogView  `json:"blog"`
}

type CommentWithBlogView struct {
	ID        string    `json:"id"`
	BlogID    string    `json:"blog_id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Blog      BlogView  `json:"blog"`
}

// UserDetailResponse is the deep aggregate: the user plus their blogs,
// likes and comments, each hydrated with the related blog graph.
type UserDetailResponse struct {
	UserResponse
	Blogs    []BlogView            `json:"blogs"`
	Likes    []LikeWithBlogView    `json:"likes"`
	Comments []CommentWithBlogView `json:"comments"`
}

type ImageUploadResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

type LockResponse struct {
	Message       string `json:"message"`
	AccountLocked bool   `json:"account_locked"`
}

type UserUpdateResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
