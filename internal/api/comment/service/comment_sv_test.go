package commentService

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"testing"
	"time"

	"BlogNest/internal/api/comment"
	commentRepository "BlogNest/internal/api/comment/repository"
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

func newTestService(t *testing.T) (ICommentService, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	sqlxDB := sqlx.NewDb(db, "postgres")
	svc := New(logger, commentRepository.New(sqlxDB, logger), &stubUtils{})

	return svc, mock
}

func commentRows(authorID string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "blog_id", "user_id", "content", "created_at", "updated_at",
		"user_first_name", "user_last_name", "user_email", "user_profile_image",
		"user_role", "user_account_locked", "user_created_at", "user_updated_at",
	}).AddRow("comment-1", "blog-1", authorID, "original content", now, now,
		"Ada", "Lovelace", "ada@example.com", "/img.png",
		entity.RoleUser, false, now, now)
}

func TestUpdateCommentByAuthor(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(`FROM comments c`).
		WithArgs("comment-1", "blog-1").
		WillReturnRows(commentRows("author-1"))
	mock.ExpectExec(`UPDATE comments`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	resp, err := svc.UpdateComment(context.Background(), entity.UserLoginData{ID: "author-1"},
		"blog-1", "comment-1", comment.UpdateCommentRequest{Content: "edited"})
	if err != nil {
		t.Fatalf("UpdateComment: %v", err)
	}

	if resp.Message != "Comment updated successfully." {
		t.Fatalf("message = %q", resp.Message)
	}
	if resp.Comment.Content != "edited" {
		t.Fatalf("content = %q, want edited", resp.Comment.Content)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestUpdateCommentNotAuthor(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(`FROM comments c`).
		WithArgs("comment-1", "blog-1").
		WillReturnRows(commentRows("author-1"))

	_, err := svc.UpdateComment(context.Background(), entity.UserLoginData{ID: "intruder"},
		"blog-1", "comment-1", comment.UpdateCommentRequest{Content: "edited"})
	if err != comment.ErrNotCommentAuthor {
		t.Fatalf("err = %v, want ErrNotCommentAuthor", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestDeleteCommentNotAuthor(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(`FROM comments c`).
		WithArgs("comment-1", "blog-1").
		WillReturnRows(commentRows("author-1"))

	_, err := svc.DeleteComment(context.Background(), entity.UserLoginData{ID: "intruder"},
		"blog-1", "comment-1")
	if err != comment.ErrNotCommentAuthor {
		t.Fatalf("err = %v, want ErrNotCommentAuthor", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestCreateCommentMissingBlog(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	_, err := svc.CreateComment(context.Background(), entity.UserLoginData{ID: "user-1"},
		"missing", comment.CreateCommentRequest{Content: "hello"})
	if err != comment.ErrBlogNotFound {
		t.Fatalf("err = %v, want ErrBlogNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
