package likeRepository

import (
	"BlogNest/internal/api/like"
	"BlogNest/internal/entity"
	contextPkg "BlogNest/pkg/context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

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

func (row likeWithUserDB) toEntity() entity.LikeWithUser {
	return entity.LikeWithUser{
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
	}
}

func (r *likesRepository) BlogExists(ctx context.Context, blogID string) (bool, error) {
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

// DeleteByBlogAndUser removes the user's like and reports whether a row was
// actually there to remove.
func (r *likesRepository) DeleteByBlogAndUser(ctx context.Context, blogID, userID string) (bool, error) {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteLikeByBlogAndUser, map[string]interface{}{
		"blog_id": blogID,
		"user_id": userID,
	})
	if err != nil {
		return false, err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteByBlogAndUser execution err")
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

// InsertLike inserts the like and reports whether the row landed. A zero
// rows-affected result means a concurrent insert won the unique constraint
// race, which callers treat as the like already existing.
func (r *likesRepository) InsertLike(ctx context.Context, l entity.Like) (bool, error) {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryInsertLike, map[string]interface{}{
		"id":         l.ID,
		"blog_id":    l.BlogID,
		"user_id":    l.UserID,
		"created_at": l.CreatedAt,
		"updated_at": l.UpdatedAt,
	})
	if err != nil {
		return false, err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("InsertLike execution err")
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

func (r *likesRepository) GetLikeByID(ctx context.Context, blogID, likeID string) (entity.LikeWithUser, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var row likeWithUserDB

	query, args, err := sqlx.Named(queryGetLikeByID, map[string]interface{}{
		"id":      likeID,
		"blog_id": blogID,
	})
	if err != nil {
		return entity.LikeWithUser{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.LikeWithUser{}, like.ErrLikeNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetLikeByID execution err")
		return entity.LikeWithUser{}, err
	}

	return row.toEntity(), nil
}

func (r *likesRepository) ListForBlog(ctx context.Context, blogID string) ([]entity.LikeWithUser, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []likeWithUserDB

	query, args, err := sqlx.Named(queryListLikesForBlog, map[string]interface{}{"blog_id": blogID})
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

	likes := make([]entity.LikeWithUser, 0, len(rows))
	for _, row := range rows {
		likes = append(likes, row.toEntity())
	}

	return likes, nil
}
