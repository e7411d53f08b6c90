package userRepository

import (
	"BlogNest/internal/entity"

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
		Users:    &usersRepository{q: sqlExecutor, log: r.log},
		Profile:  &profileRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Users interface {
		ListUsers(ctx context.Context) ([]entity.User, error)
		GetUserByID(ctx context.Context, id string) (entity.User, error)
		SearchUsers(ctx context.Context, query string) ([]entity.User, error)
		ToggleLock(ctx context.Context, id string) (bool, error)
		UpdateUser(ctx context.Context, id, firstName, lastName, email string) error
		UpdateProfileImage(ctx context.Context, id, profileImage string) error
		UpdatePassword(ctx context.Context, id, hashedPassword string) error
		DeleteUser(ctx context.Context, id string) error
	}

	// Profile serves the deep show aggregate with bounded view queries.
	Profile interface {
		ListBlogsByCreator(ctx context.Context, userID string) ([]entity.BlogListItem, error)
		ListLikesByUser(ctx context.Context, userID string) ([]entity.LikeWithBlog, error)
		ListCommentsByUser(ctx context.Context, userID string) ([]entity.CommentWithBlog, error)
		ListLikesForBlogs(ctx context.Context, blogIDs []string) (map[string][]entity.LikeWithUser, error)
		ListCommentsForBlogs(ctx context.Context, blogIDs []string) (map[string][]entity.CommentWithAuthor, error)
		ListCategoriesForBlogs(ctx context.Context, blogIDs []string) (map[string][]entity.Category, error)
	}

	Commit   func() error
	Rollback func() error
}

type usersRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type profileRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
