package blogRepository

import (
	"BlogNest/internal/entity"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Blogs:      &blogsRepository{q: sqlExecutor, log: r.log},
		Categories: &categoriesRepository{q: sqlExecutor, log: r.log},
		Commit:     commitFunc,
		Rollback:   rollbackFunc,
	}, nil
}

type Client struct {
	Blogs interface {
		CreateBlog(ctx context.Context, blog entity.Blog) error
		GetBlogByID(ctx context.Context, id string) (entity.Blog, error)
		ListBlogs(ctx context.Context, limit, offset int) ([]entity.BlogListItem, int, error)
		SearchByTitle(ctx context.Context, query string, limit, offset int) ([]entity.BlogListItem, int, error)
		SearchByTags(ctx context.Context, tags []string, limit int) ([]entity.BlogListItem, error)
		UpdateBlog(ctx context.Context, blog entity.Blog) error
		DeleteBlog(ctx context.Context, id string) error
		GetCreator(ctx context.Context, blogID string) (entity.User, error)
		ListBlogLikes(ctx context.Context, blogID string) ([]entity.LikeWithUser, error)
		ListBlogComments(ctx context.Context, blogID string) ([]entity.CommentWithAuthor, error)
	}

	Categories interface {
		UpsertByName(ctx context.Context, id, name string, now time.Time) (entity.Category, error)
		SyncBlogCategories(ctx context.Context, blogID string, categoryIDs []string) error
		ListForBlog(ctx context.Context, blogID string) ([]entity.Category, error)
		ListForBlogs(ctx context.Context, blogIDs []string) (map[string][]entity.Category, error)
	}

	Commit   func() error
	Rollback func() error
}

type blogsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type categoriesRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
