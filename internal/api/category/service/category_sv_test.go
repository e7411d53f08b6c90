package categoryService

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"testing"
	"time"

	"BlogNest/internal/api/category"
	categoryRepository "BlogNest/internal/api/category/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
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

func newTestService(t *testing.T) (ICategoryService, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	sqlxDB := sqlx.NewDb(db, "postgres")
	svc := New(logger, categoryRepository.New(sqlxDB, logger), &stubUtils{})

	return svc, mock
}

func TestCreateCategory(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectExec(`INSERT INTO categories`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	resp, err := svc.CreateCategory(context.Background(), category.CreateCategoryRequest{Name: "golang"})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	if resp.Message != "Category created successfully." {
		t.Fatalf("message = %q", resp.Message)
	}
	if resp.Category.Name != "golang" || resp.Category.ID == "" {
		t.Fatalf("category = %+v", resp.Category)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectExec(`INSERT INTO categories`).
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := svc.CreateCategory(context.Background(), category.CreateCategoryRequest{Name: "golang"})
	if err != category.ErrCategoryNameTaken {
		t.Fatalf("err = %v, want ErrCategoryNameTaken", err)
	}
}

func TestUpdateCategoryMissing(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(`FROM categories`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at", "updated_at"}))

	_, err := svc.UpdateCategory(context.Background(), "missing", category.UpdateCategoryRequest{Name: "renamed"})
	if err != category.ErrCategoryNotFound {
		t.Fatalf("err = %v, want ErrCategoryNotFound", err)
	}
}

func TestDeleteCategoryMissing(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectExec(`DELETE FROM categories`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := svc.DeleteCategory(context.Background(), "missing")
	if err != category.ErrCategoryNotFound {
		t.Fatalf("err = %v, want ErrCategoryNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
