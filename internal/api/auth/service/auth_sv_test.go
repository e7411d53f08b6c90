package authService

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"testing"
	"time"

	"BlogNest/internal/api/auth"
	authRepository "BlogNest/internal/api/auth/repository"
	"BlogNest/internal/entity"
	bcryptPkg "BlogNest/pkg/bcrypt"
	jwtPkg "BlogNest/pkg/jwt"

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

type stubTokenStore struct {
	revokedUser string
	revokedAt   time.Time
}

func (s *stubTokenStore) RevokeAll(ctx context.Context, userID string, at time.Time) error {
	s.revokedUser = userID
	s.revokedAt = at
	return nil
}

func (s *stubTokenStore) RevokedAt(ctx context.Context, userID string) (time.Time, bool, error) {
	return s.revokedAt, !s.revokedAt.IsZero(), nil
}

func newTestService(t *testing.T) (IAuthService, sqlmock.Sqlmock, *stubTokenStore) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	sqlxDB := sqlx.NewDb(db, "postgres")
	store := &stubTokenStore{}
	svc := New(logger, authRepository.New(sqlxDB, logger), store,
		&stubS3{uploadURL: "https://cdn.example.com/uploads/profile/p.png"},
		bcryptPkg.NewWithCost(bcrypt.MinCost), &stubUtils{})

	return svc, mock, store
}

func userRows(t *testing.T, password string, locked bool) *sqlmock.Rows {
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
		entity.DefaultProfileImage, entity.RoleUser, locked, now, now)
}

func TestLogin(t *testing.T) {
	t.Setenv(jwtPkg.AccessTokenSecretEnv, "test-secret")

	svc, mock, _ := newTestService(t)

	mock.ExpectQuery(`FROM users`).
		WithArgs("ada@example.com").
		WillReturnRows(userRows(t, "correct-password", false))

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ada@example.com",
		Password: "correct-password",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if resp.Token == "" {
		t.Fatal("no token issued")
	}
	if resp.User.Email != "ada@example.com" {
		t.Fatalf("user email = %q", resp.User.Email)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, mock, _ := newTestService(t)

	mock.ExpectQuery(`FROM users`).
		WithArgs("ada@example.com").
		WillReturnRows(userRows(t, "correct-password", false))

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong-password",
	})
	if err != auth.ErrInvalidCredentials {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, mock, _ := newTestService(t)

	mock.ExpectQuery(`FROM users`).
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	if err != auth.ErrInvalidCredentials {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginLockedAccount(t *testing.T) {
	svc, mock, _ := newTestService(t)

	// The password check runs first: a locked account with the right
	// password gets the lock error, not the credentials one.
	mock.ExpectQuery(`FROM users`).
		WithArgs("ada@example.com").
		WillReturnRows(userRows(t, "correct-password", true))

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ada@example.com",
		Password: "correct-password",
	})
	if err != auth.ErrAccountLocked {
		t.Fatalf("err = %v, want ErrAccountLocked", err)
	}
}

func TestLogoutRevokesTokens(t *testing.T) {
	svc, _, store := newTestService(t)

	before := time.Now()
	if err := svc.Logout(context.Background(), "user-1"); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	if store.revokedUser != "user-1" {
		t.Fatalf("revoked user = %q, want user-1", store.revokedUser)
	}
	if store.revokedAt.Before(before) {
		t.Fatalf("revocation time %v predates logout", store.revokedAt)
	}
}
