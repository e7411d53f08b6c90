package like

import "time"

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

type LikeResponse struct {
	ID        string      `json:"id"`
	BlogID    string      `json:"blog_id"`
	UserID    string      `json:"user_id"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	User      UserSummary `json:"user"`
}

type LikeListResponse struct {
	Likes []LikeResponse `json:"likes"`
}

type LikeDetailResponse struct {
	Like LikeResponse `json:"like"`
}

// ToggleResponse reports which way the toggle went.
type ToggleResponse struct {
	Message string `json:"message"`
	Liked   bool   `json:"liked"`
}
