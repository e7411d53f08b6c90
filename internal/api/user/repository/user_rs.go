package userRepository

import (
	"BlogNest/internal/api/user"
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

func (r *usersRepository) ListUsers(ctx context.Context) ([]entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var users []entity.User

	query := r.q.Rebind(queryListUsers)

	if err := r.q.SelectContext(ctx, &users, query); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListUsers execution err")
		return nil, err
	}

	return users, nil
}

func (r *usersRepository) GetUserByID(ctx context.Context, id string) (entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var u entity.User

	query, args, err := sqlx.Named(queryGetUserByID, map[string]interface{}{"id": id})
	if err != nil {
		return entity.User{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&u); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.User{}, user.ErrUserNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetUserByID execution err")
		return entity.User{}, err
	}

	return u, nil
}

func (r *usersRepository) SearchUsers(ctx context.Context, searchQuery string) ([]entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var users []entity.User

	query, args, err := sqlx.Named(querySearchUsers, map[string]interface{}{"query": searchQuery})
	if err != nil {
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &users, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SearchUsers execution err")
		return nil, err
	}

	return users, nil
}

// ToggleLock flips the account_locked flag and returns the new value.
func (r *usersRepository) ToggleLock(ctx context.Context, id string) (bool, error) {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryToggleLock, map[string]interface{}{
		"id":         id,
		"updated_at": time.Now(),
	})
	if err != nil {
		return false, err
	}

	query = r.q.Rebind(query)

	var locked bool
	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&locked); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, user.ErrUserNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ToggleLock execution err")
		return false, err
	}

	return locked, nil
}

func (r *usersRepository) UpdateUser(ctx context.Context, id, firstName, lastName, email string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryUpdateUser, map[string]interface{}{
		"id":         id,
		"first_name": firstName,
		"last_name":  lastName,
		"email":      email,
		"updated_at": time.Now(),
	})
	if err != nil {
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return user.ErrEmailAlreadyExists
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateUser execution err")
		return err
	}

	return checkAffected(result)
}

func (r *usersRepository) UpdateProfileImage(ctx context.Context, id, profileImage string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryUpdateProfileImage, map[string]interface{}{
		"id":            id,
		"profile_image": profileImage,
		"updated_at":    time.Now(),
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
		}).Error("UpdateProfileImage execution err")
		return err
	}

	return checkAffected(result)
}

func (r *usersRepository) UpdatePassword(ctx context.Context, id, hashedPassword string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryUpdatePassword, map[string]interface{}{
		"id":         id,
		"password":   hashedPassword,
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
		}).Error("UpdatePassword execution err")
		return err
	}

	return checkAffected(result)
}

func (r *usersRepository) DeleteUser(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteUser, map[string]interface{}{"id": id})
	if err != nil {
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteUser execution err")
		return err
	}

	return checkAffected(result)
}

func checkAffected(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return user.ErrUserNotFound
	}
	return nil
}
