package entity

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	// DefaultProfileImage is assigned at registration when no image is
	// uploaded. It is never deleted from storage.
	DefaultProfileImage = "/storage/uploads/profile/profile1.jpeg"
)

type User struct {
	ID            string    `db:"id"`
	FirstName     string    `db:"first_name"`
	LastName      string    `db:"last_name"`
	Email         string    `db:"email"`
	Password      string    `db:"password"`
	ProfileImage  string    `db:"profile_image"`
	Role          string    `db:"role"`
	AccountLocked bool      `db:"account_locked"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// UserLoginData is what the token middleware stores in the request locals
// after a successful bearer-token check.
type UserLoginData struct {
	ID    string
	Email string
	Role  string
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
