package likeService

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"testing"
	"time"

	"BlogNest/internal/api/like"
	likeRepository "BlogNest/internal/api/like/repository"
	"BlogNest/internal/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

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

func newTestService(t *testing.T) (ILikeService, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	sqlxDB := sqlx.NewDb(db, "postgres")
	svc := New(logger, likeRepository.New(sqlxDB, logger), &stubUtils{})

	return svc, mock
}

func existsRows(exists bool) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"exists"}).AddRow(exists)
}

func TestToggleLikeAdds(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("blog-1").
		WillReturnRows(existsRows(true))
	mock.ExpectExec(`DELETE FROM likes`).
		WithArgs("blog-1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO likes`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp, err := svc.ToggleLike(context.Background(), entity.UserLoginData{ID: "user-1"}, "blog-1")
	if err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}

	if !resp.Liked || resp.Message != "Like added successfully." {
		t.Fatalf("resp = %+v, want added", resp)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestToggleLikeRemoves(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("blog-1").
		WillReturnRows(existsRows(true))
	mock.ExpectExec(`DELETE FROM likes`).
		WithArgs("blog-1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp, err := svc.ToggleLike(context.Background(), entity.UserLoginData{ID: "user-1"}, "blog-1")
	if err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}

	if resp.Liked || resp.Message != "Like removed successfully." {
		t.Fatalf("resp = %+v, want removed", resp)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestToggleLikeLostInsertRace(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("blog-1").
		WillReturnRows(existsRows(true))
	mock.ExpectExec(`DELETE FROM likes`).
		WithArgs("blog-1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	// ON CONFLICT DO NOTHING swallowed the insert; the like exists either
	// way, so the caller still gets a success.
	mock.ExpectExec(`INSERT INTO likes`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	resp, err := svc.ToggleLike(context.Background(), entity.UserLoginData{ID: "user-1"}, "blog-1")
	if err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}

	if !resp.Liked || resp.Message != "Like added successfully." {
		t.Fatalf("resp = %+v, want added", resp)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestToggleLikeMissingBlog(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("missing").
		WillReturnRows(existsRows(false))
	mock.ExpectRollback()

	_, err := svc.ToggleLike(context.Background(), entity.UserLoginData{ID: "user-1"}, "missing")
	if err != like.ErrBlogNotFound {
		t.Fatalf("err = %v, want ErrBlogNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
