package blogService

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"testing"
	"time"

	"BlogNest/internal/api/blog"
	blogRepository "BlogNest/internal/api/blog/repository"
	"BlogNest/internal/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
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

func newTestService(t *testing.T) (IBlogService, sqlmock.Sqlmock, *stubS3) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	sqlxDB := sqlx.NewDb(db, "postgres")
	s3Client := &stubS3{uploadURL: "https://cdn.example.com/uploads/blogs/image.png"}
	svc := New(logger, blogRepository.New(sqlxDB, logger), s3Client, &stubUtils{})

	return svc, mock, s3Client
}

var blogListColumns = []string{
	"id", "title", "description", "body", "preview", "creator_id",
	"created_at", "updated_at",
	"creator_first_name", "creator_last_name", "creator_email",
	"creator_profile_image", "creator_role", "creator_account_locked",
	"like_count", "comment_count",
}

func blogListRows(n int) *sqlmock.Rows {
	rows := sqlmock.NewRows(blogListColumns)
	now := time.Now()
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("blog-%d", i+1)
		rows.AddRow(id, "Title "+id, "desc", "body", "preview.png", "creator-1",
			now, now, "Ada", "Lovelace", "ada@example.com", "/img.png",
			entity.RoleUser, false, n-i, 0)
	}
	return rows
}

func emptyCategoryRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"blog_id", "id", "name", "created_at", "updated_at"})
}

func TestListBlogsPagination(t *testing.T) {
	cases := []struct {
		name        string
		page        int
		total       int
		rowCount    int
		wantPage    int
		wantHasMore bool
	}{
		{"second page with more behind", 2, 25, 10, 2, true},
		{"last page", 3, 25, 5, 3, false},
		{"page clamped to one", 0, 5, 5, 1, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, mock, _ := newTestService(t)

			mock.ExpectQuery(`SELECT COUNT\(\*\)`).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tc.total))
			mock.ExpectQuery(`FROM blogs b`).
				WithArgs(blog.PageSize, (tc.wantPage-1)*blog.PageSize).
				WillReturnRows(blogListRows(tc.rowCount))
			mock.ExpectQuery(`FROM categories c`).
				WillReturnRows(emptyCategoryRows())

			resp, err := svc.ListBlogs(context.Background(), tc.page)
			if err != nil {
				t.Fatalf("ListBlogs: %v", err)
			}

			if len(resp.Blogs) != tc.rowCount {
				t.Fatalf("blogs = %d, want %d", len(resp.Blogs), tc.rowCount)
			}
			if resp.CurrentPage != tc.wantPage {
				t.Fatalf("currentPage = %d, want %d", resp.CurrentPage, tc.wantPage)
			}
			if resp.HasMoreBlogs != tc.wantHasMore {
				t.Fatalf("hasMoreBlogs = %v, want %v", resp.HasMoreBlogs, tc.wantHasMore)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestSearchBlogsByTitle(t *testing.T) {
	svc, mock, _ := newTestService(t)

	// :query is bound twice in the count statement (empty-query guard plus
	// the ILIKE pattern), so two positional args reach the driver.
	mock.ExpectQuery(`SELECT COUNT\(\*\)`).
		WithArgs("go", "go").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`ILIKE`).
		WithArgs("go", "go", blog.PageSize, 0).
		WillReturnRows(blogListRows(3))
	mock.ExpectQuery(`FROM categories c`).
		WillReturnRows(emptyCategoryRows())

	resp, err := svc.SearchBlogs(context.Background(), blog.SearchRequest{Query: "go"})
	if err != nil {
		t.Fatalf("SearchBlogs: %v", err)
	}

	if len(resp.Blogs) != 3 || resp.CurrentPage != 1 || resp.HasMoreBlogs {
		t.Fatalf("unexpected page: %d blogs, page %d, hasMore %v",
			len(resp.Blogs), resp.CurrentPage, resp.HasMoreBlogs)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestSearchBlogsByTagsOverfetch(t *testing.T) {
	svc, mock, _ := newTestService(t)

	// The query asks for one row beyond the page; a full result means
	// there is more to fetch even though tag search is single-page.
	mock.ExpectQuery(`ANY`).
		WithArgs(pq.Array([]string{"go"}), blog.PageSize+1).
		WillReturnRows(blogListRows(blog.PageSize + 1))
	mock.ExpectQuery(`FROM categories c`).
		WillReturnRows(emptyCategoryRows())

	resp, err := svc.SearchBlogs(context.Background(), blog.SearchRequest{Tags: []string{"go"}, CurrentPage: 4})
	if err != nil {
		t.Fatalf("SearchBlogs: %v", err)
	}

	if len(resp.Blogs) != blog.PageSize {
		t.Fatalf("blogs = %d, want %d", len(resp.Blogs), blog.PageSize)
	}
	if !resp.HasMoreBlogs {
		t.Fatal("hasMoreBlogs = false, want true")
	}
	if resp.CurrentPage != 1 {
		t.Fatalf("currentPage = %d, tag search is always page 1", resp.CurrentPage)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func blogByIDRows(creatorID, preview string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "title", "description", "body", "preview", "creator_id", "created_at", "updated_at",
	}).AddRow("blog-1", "Title", "desc", "body", preview, creatorID, now, now)
}

func creatorRows(id string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "first_name", "last_name", "email", "password", "profile_image",
		"role", "account_locked", "created_at", "updated_at",
	}).AddRow(id, "Ada", "Lovelace", "ada@example.com", "hash", "/img.png",
		entity.RoleUser, false, now, now)
}

func TestUpdateBlogReusesExistingCategory(t *testing.T) {
	svc, mock, _ := newTestService(t)
	creator := entity.UserLoginData{ID: "creator-1"}

	mock.ExpectQuery(`FROM blogs`).
		WithArgs("blog-1").
		WillReturnRows(blogByIDRows("creator-1", "preview.png"))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE blogs`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	// Find-or-create hands back the already existing row, id and
	// timestamps included, not the freshly generated candidate.
	categoryCreatedAt := time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO categories`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("cat-42", categoryCreatedAt, categoryCreatedAt))
	mock.ExpectExec(`DELETE FROM blog_categories`).
		WithArgs("blog-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`INSERT INTO blog_categories`).
		WithArgs("blog-1", "cat-42").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery(`FROM users u`).
		WithArgs("blog-1").
		WillReturnRows(creatorRows("creator-1"))

	resp, err := svc.UpdateBlog(context.Background(), creator, "blog-1", blog.UpdateBlogRequest{
		Title:      "New Title",
		Body:       "new body",
		Preview:    "preview.png",
		Categories: []string{"go"},
	})
	if err != nil {
		t.Fatalf("UpdateBlog: %v", err)
	}

	if resp.Message != "Blog updated successfully." {
		t.Fatalf("message = %q", resp.Message)
	}
	if len(resp.Blog.Categories) != 1 || resp.Blog.Categories[0].ID != "cat-42" {
		t.Fatalf("categories = %+v, want the existing category id", resp.Blog.Categories)
	}
	if !resp.Blog.Categories[0].CreatedAt.Equal(categoryCreatedAt) {
		t.Fatalf("category createdAt = %v, want the existing row's %v",
			resp.Blog.Categories[0].CreatedAt, categoryCreatedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestUpdateBlogNotCreator(t *testing.T) {
	svc, mock, _ := newTestService(t)

	mock.ExpectQuery(`FROM blogs`).
		WithArgs("blog-1").
		WillReturnRows(blogByIDRows("creator-1", "preview.png"))

	_, err := svc.UpdateBlog(context.Background(), entity.UserLoginData{ID: "intruder"}, "blog-1", blog.UpdateBlogRequest{
		Title:      "New Title",
		Body:       "new body",
		Preview:    "preview.png",
		Categories: []string{"go"},
	})
	if err != blog.ErrNotBlogCreator {
		t.Fatalf("err = %v, want ErrNotBlogCreator", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestDeleteBlogRemovesPreviewFromStorage(t *testing.T) {
	svc, mock, s3Client := newTestService(t)

	mock.ExpectQuery(`FROM blogs`).
		WithArgs("blog-1").
		WillReturnRows(blogByIDRows("creator-1", "https://cdn.example.com/uploads/blogs/p.png"))
	mock.ExpectExec(`DELETE FROM blogs`).
		WithArgs("blog-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	resp, err := svc.DeleteBlog(context.Background(), entity.UserLoginData{ID: "creator-1"}, "blog-1")
	if err != nil {
		t.Fatalf("DeleteBlog: %v", err)
	}

	if resp.Message != "Blog deleted successfully." {
		t.Fatalf("message = %q", resp.Message)
	}
	if len(s3Client.deleted) != 1 || s3Client.deleted[0] != "uploads/blogs/p.png" {
		t.Fatalf("deleted storage keys = %v", s3Client.deleted)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestDeleteBlogNotCreator(t *testing.T) {
	svc, mock, s3Client := newTestService(t)

	mock.ExpectQuery(`FROM blogs`).
		WithArgs("blog-1").
		WillReturnRows(blogByIDRows("creator-1", "preview.png"))

	_, err := svc.DeleteBlog(context.Background(), entity.UserLoginData{ID: "intruder"}, "blog-1")
	if err != blog.ErrNotBlogCreator {
		t.Fatalf("err = %v, want ErrNotBlogCreator", err)
	}
	if len(s3Client.deleted) != 0 {
		t.Fatalf("storage keys deleted for a rejected request: %v", s3Client.deleted)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
