package userService

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"testing"
	"time"

	"BlogNest/internal/api/user"
	userRepository "BlogNest/internal/api/user/repository"
	"BlogNest/internal/entity"
	bcryptPkg "BlogNest/pkg/bcrypt"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type stubS3 struct {
	uploadURL string
	deleted   []string
}

func (s *stubS3) UploadFile(file *multipart.FileHeader, prefix string) (string, error) {
	return s.uploadURL, nil
}

func (s *stubS3) DeleteFile(key string) error {
	s.deleted = append(s.deleted, key)
	return nil
}

func (s *stubS3) KeyFromURL(fileURL string) string {
	return strings.TrimPrefix(fileURL, "https://cdn.example.com/")
}

type stubUtils struct {
	seq int
}

func (u *stubUtils) NewULIDFromTimestamp(t time.Time) (string, error) {
	u.seq++
	return fmt.Sprintf("01TESTULID%016d", u.seq), nil
}

func (u *stubUtils) ValidateImageFile(file *multipart.FileHeader) error {
	return nil
}

func newTestService(t *testing.T) (IUserService, sqlmock.Sqlmock, *stubS3) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	sqlxDB := sqlx.NewDb(db, "postgres")
	s3Client := &stubS3{uploadURL: "https://cdn.example.com/uploads/profile/p.png"}
	svc := New(logger, userRepository.New(sqlxDB, logger), s3Client,
		bcryptPkg.NewWithCost(bcrypt.MinCost), &stubUtils{})

	return svc, mock, s3Client
}

func userRows(t *testing.T, password, profileImage string) *sqlmock.Rows {
	t.Helper()

	hashed, err := bcryptPkg.NewWithCost(bcrypt.MinCost).HashPassword(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "first_name", "last_name", "email", "password", "profile_image",
		"role", "account_locked", "created_at", "updated_at",
	}).AddRow("user-1", "Ada", "Lovelace", "ada@example.com", hashed,
		profileImage, entity.RoleUser, false, now, now)
}

func TestToggleLock(t *testing.T) {
	cases := []struct {
		name        string
		locked      bool
		wantMessage string
	}{
		{"locks an unlocked account", true, "Account locked successfully."},
		{"unlocks a locked account", false, "Account unlocked successfully."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, mock, _ := newTestService(t)

			mock.ExpectQuery(`RETURNING account_locked`).
				WithArgs(sqlmock.AnyArg(), "user-1").
				WillReturnRows(sqlmock.NewRows([]string{"account_locked"}).AddRow(tc.locked))

			resp, err := svc.ToggleLock(context.Background(), "user-1")
			if err != nil {
				t.Fatalf("ToggleLock: %v", err)
			}

			if resp.AccountLocked != tc.locked {
				t.Fatalf("accountLocked = %v, want %v", resp.AccountLocked, tc.locked)
			}
			if resp.Message != tc.wantMessage {
				t.Fatalf("message = %q, want %q", resp.Message, tc.wantMessage)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestUpdateUserNotOwner(t *testing.T) {
	svc, mock, _ := newTestService(t)

	_, err := svc.UpdateUser(context.Background(), entity.UserLoginData{ID: "someone-else"},
		"user-1", user.UpdateUserRequest{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"})
	if err != user.ErrNotAccountOwner {
		t.Fatalf("err = %v, want ErrNotAccountOwner", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestUpdatePassword(t *testing.T) {
	svc, mock, _ := newTestService(t)
	owner := entity.UserLoginData{ID: "user-1"}

	mock.ExpectQuery(`FROM users`).
		WithArgs("user-1").
		WillReturnRows(userRows(t, "old-password", entity.DefaultProfileImage))
	mock.ExpectExec(`UPDATE users`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	resp, err := svc.UpdatePassword(context.Background(), owner, "user-1", user.UpdatePasswordRequest{
		CurrentPassword:      "old-password",
		Password:             "new-password",
		PasswordConfirmation: "new-password",
	})
	if err != nil {
		t.Fatalf("UpdatePassword: %v", err)
	}

	if resp.Message != "Password updated successfully." {
		t.Fatalf("message = %q", resp.Message)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestUpdatePasswordWrongCurrent(t *testing.T) {
	svc, mock, _ := newTestService(t)
	owner := entity.UserLoginData{ID: "user-1"}

	mock.ExpectQuery(`FROM users`).
		WithArgs("user-1").
		WillReturnRows(userRows(t, "old-password", entity.DefaultProfileImage))

	_, err := svc.UpdatePassword(context.Background(), owner, "user-1", user.UpdatePasswordRequest{
		CurrentPassword:      "not-the-old-password",
		Password:             "new-password",
		PasswordConfirmation: "new-password",
	})
	if err != user.ErrIncorrectPassword {
		t.Fatalf("err = %v, want ErrIncorrectPassword", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestUpdatePasswordNotOwner(t *testing.T) {
	svc, mock, _ := newTestService(t)

	_, err := svc.UpdatePassword(context.Background(), entity.UserLoginData{ID: "someone-else"},
		"user-1", user.UpdatePasswordRequest{
			CurrentPassword:      "old-password",
			Password:             "new-password",
			PasswordConfirmation: "new-password",
		})
	if err != user.ErrNotAccountOwner {
		t.Fatalf("err = %v, want ErrNotAccountOwner", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestDeleteUserRemovesProfileImage(t *testing.T) {
	svc, mock, s3Client := newTestService(t)
	owner := entity.UserLoginData{ID: "user-1"}

	mock.ExpectQuery(`FROM users`).
		WithArgs("user-1").
		WillReturnRows(userRows(t, "password", "https://cdn.example.com/uploads/profile/me.png"))
	mock.ExpectExec(`DELETE FROM users`).
		WithArgs("user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	resp, err := svc.DeleteUser(context.Background(), owner, "user-1")
	if err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}

	if resp.Message != "User deleted successfully." {
		t.Fatalf("message = %q", resp.Message)
	}
	if len(s3Client.deleted) != 1 || s3Client.deleted[0] != "uploads/profile/me.png" {
		t.Fatalf("deleted storage keys = %v", s3Client.deleted)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestDeleteUserKeepsDefaultProfileImage(t *testing.T) {
	svc, mock, s3Client := newTestService(t)
	owner := entity.UserLoginData{ID: "user-1"}

	mock.ExpectQuery(`FROM users`).
		WithArgs("user-1").
		WillReturnRows(userRows(t, "password", entity.DefaultProfileImage))
	mock.ExpectExec(`DELETE FROM users`).
		WithArgs("user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if _, err := svc.DeleteUser(context.Background(), owner, "user-1"); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}

	if len(s3Client.deleted) != 0 {
		t.Fatalf("default profile image was deleted: %v", s3Client.deleted)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
