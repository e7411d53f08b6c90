package blogRepository

import (
	blogs "BlogNest/internal/api/blog"
	"BlogNest/internal/entity"
	contextPkg "BlogNest/pkg/context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const pqUniqueViolation = "23505"

type blogListItemDB struct {
	ID                   string         `db:"id"`
	Title                string         `db:"title"`
	Description          sql.NullString `db:"description"`
	Body                 string         `db:"body"`
	Preview              string         `db:"preview"`
	CreatorID            string         `db:"creator_id"`
	CreatedAt            time.Time      `db:"created_at"`
	UpdatedAt            time.Time      `db:"updated_at"`
	CreatorFirstName     string         `db:"creator_first_name"`
	CreatorLastName      string         `db:"creator_last_name"`
	CreatorEmail         string         `db:"creator_email"`
	CreatorProfileImage  string         `db:"creator_profile_image"`
	CreatorRole          string         `db:"creator_role"`
	CreatorAccountLocked bool           `db:"creator_account_locked"`
	LikeCount            int            `db:"like_count"`
	CommentCount         int            `db:"comment_count"`
}

type likeWithUserDB struct {
	ID                string    `db:"id"`
	BlogID            string    `db:"blog_id"`
	UserID            string    `db:"user_id"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
	UserFirstName     string    `db:"user_first_name"`
	UserLastName      string    `db:"user_last_name"`
	UserEmail         string    `db:"user_email"`
	UserProfileImage  string    `db:"user_profile_image"`
	UserRole          string    `db:"user_role"`
	UserAccountLocked bool      `db:"user_account_locked"`
	UserCreatedAt     time.Time `db:"user_created_at"`
	UserUpdatedAt     time.Time `db:"user_updated_at"`
}

type commentWithAuthorDB struct {
	ID                string    `db:"id"`
	BlogID            string    `db:"blog_id"`
	UserID            string    `db:"user_id"`
	Content           string    `db:"content"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
	UserFirstName     string    `db:"user_first_name"`
	UserLastName      string    `db:"user_last_name"`
	UserEmail         string    `db:"user_email"`
	UserProfileImage  string    `db:"user_profile_image"`
	UserRole          string    `db:"user_role"`
	UserAccountLocked bool      `db:"user_account_locked"`
	UserCreatedAt     time.Time `db:"user_created_at"`
	UserUpdatedAt     time.Time `db:"user_updated_at"`
}

func (r *blogsRepository) CreateBlog(ctx context.Context, blog entity.Blog) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":          blog.ID,
		"title":       blog.Title,
		"description": blog.Description,
		"body":        blog.Body,
		"preview":     blog.Preview,
		"creator_id":  blog.CreatorID,
		"created_at":  blog.CreatedAt,
		"updated_at":  blog.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateBlog named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"title":      blog.Title,
			}).Warn("CreateBlog title already taken")
			return blogs.ErrTitleAlreadyExists
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating blog")
		return err
	}

	return nil
}

func (r *blogsRepository) GetBlogByID(ctx context.Context, id string) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var blog entity.Blog

	query, args, err := sqlx.Named(queryGetBlogByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogByID named query preparation err")
		return entity.Blog{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&blog); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Blog{}, blogs.ErrBlogNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogByID execution err")
		return entity.Blog{}, err
	}

	return blog, nil
}

func (r *blogsRepository) ListBlogs(ctx context.Context, limit, offset int) ([]entity.BlogListItem, int, error) {
	requestID := contextPkg.GetRequestID(ctx)

	total, err := r.count(ctx, queryCountBlogs, map[string]interface{}{})
	if err != nil {
		return nil, 0, err
	}

	items, err := r.selectListItems(ctx, queryListBlogs, map[string]interface{}{
		"limit":  limit,
		"offset": offset,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListBlogs execution err")
		return nil, 0, err
	}

	return items, total, nil
}

func (r *blogsRepository) SearchByTitle(ctx context.Context, searchQuery string, limit, offset int) ([]entity.BlogListItem, int, error) {
	requestID := contextPkg.GetRequestID(ctx)

	total, err := r.count(ctx, queryCountBlogsByTitle, map[string]interface{}{"query": searchQuery})
	if err != nil {
		return nil, 0, err
	}

	items, err := r.selectListItems(ctx, querySearchBlogsByTitle, map[string]interface{}{
		"query":  searchQuery,
		"limit":  limit,
		"offset": offset,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SearchByTitle execution err")
		return nil, 0, err
	}

	return items, total, nil
}

func (r *blogsRepository) SearchByTags(ctx context.Context, tags []string, limit int) ([]entity.BlogListItem, error) {
	requestID := contextPkg.GetRequestID(ctx)

	items, err := r.selectListItems(ctx, querySearchBlogsByTags, map[string]interface{}{
		"tags":  pq.Array(tags),
		"limit": limit,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SearchByTags execution err")
		return nil, err
	}

	return items, nil
}

func (r *blogsRepository) UpdateBlog(ctx context.Context, blog entity.Blog) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":          blog.ID,
		"title":       blog.Title,
		"description": blog.Description,
		"body":        blog.Body,
		"preview":     blog.Preview,
		"updated_at":  time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBlog named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return blogs.ErrTitleAlreadyExists
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateBlog execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return blogs.ErrBlogNotFound
	}

	return nil
}

func (r *blogsRepository) DeleteBlog(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteBlog, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBlog named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteBlog execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return blogs.ErrBlogNotFound
	}

	return nil
}

func (r *blogsRepository) GetCreator(ctx context.Context, blogID string) (entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var user entity.User

	query, args, err := sqlx.Named(queryGetBlogCreator, map[string]interface{}{"blog_id": blogID})
	if err != nil {
		return entity.User{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.User{}, blogs.ErrBlogNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCreator execution err")
		return entity.User{}, err
	}

	return user, nil
}

func (r *blogsRepository) ListBlogLikes(ctx context.Context, blogID string) ([]entity.LikeWithUser, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []likeWithUserDB

	query, args, err := sqlx.Named(queryListBlogLikes, map[string]interface{}{"blog_id": blogID})
	if err != nil {
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListBlogLikes execution err")
		return nil, err
	}

	likes := make([]entity.LikeWithUser, 0, len(rows))
	for _, row := range rows {
		likes = append(likes, entity.LikeWithUser{
			Like: entity.Like{
				ID:        row.ID,
				BlogID:    row.BlogID,
				UserID:    row.UserID,
				CreatedAt: row.CreatedAt,
				UpdatedAt: row.UpdatedAt,
			},
			User: entity.User{
				ID:            row.UserID,
				FirstName:     row.UserFirstName,
				LastName:      row.UserLastName,
				Email:         row.UserEmail,
				ProfileImage:  row.UserProfileImage,
				Role:          row.UserRole,
				AccountLocked: row.UserAccountLocked,
				CreatedAt:     row.UserCreatedAt,
				UpdatedAt:     row.UserUpdatedAt,
			},
		})
	}

	return likes, nil
}

func (r *blogsRepository) ListBlogComments(ctx context.Context, blogID string) ([]entity.CommentWithAuthor, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []commentWithAuthorDB

	query, args, err := sqlx.Named(queryListBlogComments, map[string]interface{}{"blog_id": blogID})
	if err != nil {
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListBlogComments execution err")
		return nil, err
	}

	comments := make([]entity.CommentWithAuthor, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, entity.CommentWithAuthor{
			Comment: entity.Comment{
				ID:        row.ID,
				BlogID:    row.BlogID,
				UserID:    row.UserID,
				Content:   row.Content,
				CreatedAt: row.CreatedAt,
				UpdatedAt: row.UpdatedAt,
			},
			Author: entity.User{
				ID:            row.UserID,
				FirstName:     row.UserFirstName,
				LastName:      row.UserLastName,
				Email:         row.UserEmail,
				ProfileImage:  row.UserProfileImage,
				Role:          row.UserRole,
				AccountLocked: row.UserAccountLocked,
				CreatedAt:     row.UserCreatedAt,
				UpdatedAt:     row.UserUpdatedAt,
			},
		})
	}

	return comments, nil
}

func (r *blogsRepository) count(ctx context.Context, namedQuery string, argsKV map[string]interface{}) (int, error) {
	var total int

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		return 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}

	return total, nil
}

func (r *blogsRepository) selectListItems(ctx context.Context, namedQuery string, argsKV map[string]interface{}) ([]entity.BlogListItem, error) {
	var rows []blogListItemDB

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	items := make([]entity.BlogListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, entity.BlogListItem{
			Blog: entity.Blog{
				ID:          row.ID,
				Title:       row.Title,
				Description: row.Description,
				Body:        row.Body,
				Preview:     row.Preview,
				CreatorID:   row.CreatorID,
				CreatedAt:   row.CreatedAt,
				UpdatedAt:   row.UpdatedAt,
			},
			Creator: entity.User{
				ID:            row.CreatorID,
				FirstName:     row.CreatorFirstName,
				LastName:      row.CreatorLastName,
				Email:         row.CreatorEmail,
				ProfileImage:  row.CreatorProfileImage,
				Role:          row.CreatorRole,
				AccountLocked: row.CreatorAccountLocked,
			},
			LikeCount:    row.LikeCount,
			CommentCount: row.CommentCount,
		})
	}

	return items, nil
}
