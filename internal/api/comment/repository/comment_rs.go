package commentRepository

import (
	"BlogNest/internal/api/comment"
	"BlogNest/internal/entity"
	contextPkg "BlogNest/pkg/context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

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

func (row commentWithAuthorDB) toEntity() entity.CommentWithAuthor {
	return entity.CommentWithAuthor{
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
	}
}

func (r *commentsRepository) BlogExists(ctx context.Context, blogID string) (bool, error) {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryBlogExists, map[string]interface{}{"blog_id": blogID})
	if err != nil {
		return false, err
	}

	query = r.q.Rebind(query)

	var exists bool
	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&exists); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("BlogExists execution err")
		return false, err
	}

	return exists, nil
}

func (r *commentsRepository) CreateComment(ctx context.Context, c entity.Comment) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryCreateComment, map[string]interface{}{
		"id":         c.ID,
		"blog_id":    c.BlogID,
		"user_id":    c.UserID,
		"content":    c.Content,
		"created_at": c.CreatedAt,
		"updated_at": c.UpdatedAt,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateComment named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating comment")
		return err
	}

	return nil
}

func (r *commentsRepository) GetCommentByID(ctx context.Context, blogID, commentID string) (entity.CommentWithAuthor, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var row commentWithAuthorDB

	query, args, err := sqlx.Named(queryGetCommentByID, map[string]interface{}{
		"id":      commentID,
		"blog_id": blogID,
	})
	if err != nil {
		return entity.CommentWithAuthor{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.CommentWithAuthor{}, comment.ErrCommentNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommentByID execution err")
		return entity.CommentWithAuthor{}, err
	}

	return row.toEntity(), nil
}

func (r *commentsRepository) ListForBlog(ctx context.Context, blogID string) ([]entity.CommentWithAuthor, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []commentWithAuthorDB

	query, args, err := sqlx.Named(queryListCommentsForBlog, map[string]interface{}{"blog_id": blogID})
	if err != nil {
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListForBlog execution err")
		return nil, err
	}

	comments := make([]entity.CommentWithAuthor, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, row.toEntity())
	}

	return comments, nil
}

func (r *commentsRepository) UpdateComment(ctx context.Context, commentID, content string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryUpdateComment, map[string]interface{}{
		"id":         commentID,
		"content":    content,
		"updated_at": time.Now(),
	})
	if err != nil {
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateComment execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return comment.ErrCommentNotFound
	}

	return nil
}

func (r *commentsRepository) DeleteComment(ctx context.Context, commentID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteComment, map[string]interface{}{"id": commentID})
	if err != nil {
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteComment execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return comment.ErrCommentNotFound
	}

	return nil
}
