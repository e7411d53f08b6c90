package comment

import "time"

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

type AuthorResponse struct {
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

type CommentResponse struct {
	ID        string         `json:"id"`
	BlogID    string         `json:"blog_id"`
	UserID    string         `json:"user_id"`
	Content   string         `json:"content"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	User      AuthorResponse `json:"user"`
}

type CommentListResponse struct {
	Comments []CommentResponse `json:"comments"`
}

type CommentDetailResponse struct {
	Message string          `json:"message,omitempty"`
	Comment CommentResponse `json:"comment"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
