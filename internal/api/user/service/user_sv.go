package userService

import (
	"BlogNest/internal/api/user"
	"BlogNest/internal/entity"
	contextPkg "BlogNest/pkg/context"
	"BlogNest/pkg/utils"
	"errors"
	"mime/multipart"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *userService) ListUsers(ctx context.Context) (*user.UserListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.userRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	users, err := repo.Users.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, makeUserResponse(u))
	}

	return &user.UserListResponse{Users: responses}, nil
}

func (s *userService) SearchUsers(ctx context.Context, query string) (*user.SearchResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.userRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	users, err := repo.Users.SearchUsers(ctx, query)
	if err != nil {
		return nil, err
	}

	results := make([]user.SearchResult, 0, len(users))
	for _, u := range users {
		results = append(results, user.SearchResult{
			ID:            u.ID,
			FirstName:     u.FirstName,
			LastName:      u.LastName,
			Email:         u.Email,
			ProfileImage:  u.ProfileImage,
			Role:          u.Role,
			AccountLocked: u.AccountLocked,
		})
	}

	return &user.SearchResponse{Users: results}, nil
}

func (s *userService) ToggleLock(ctx context.Context, id string) (*user.LockResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.userRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	locked, err := repo.Users.ToggleLock(ctx, id)
	if err != nil {
		return nil, err
	}

	message := "Account unlocked successfully."
	if locked {
		message = "Account locked successfully."
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    id,
		"locked":     locked,
	}).Info("Account lock toggled")

	return &user.LockResponse{
		Message:       message,
		AccountLocked: locked,
	}, nil
}

func (s *userService) UploadProfileImage(ctx context.Context, id string, file *multipart.FileHeader) (*user.ImageUploadResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if file == nil {
		return nil, user.ErrNoFileUploaded
	}

	repo, err := s.userRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	existing, err := repo.Users.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.utils.ValidateImageFile(file); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid profile image")
		return nil, mapImageError(err)
	}

	uploadedURL, err := s.s3Client.UploadFile(file, "uploads/profile")
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to upload profile image")
		return nil, user.ErrFailedToUpload
	}

	if err := repo.Users.UpdateProfileImage(ctx, id, uploadedURL); err != nil {
		return nil, err
	}

	// The previous image is removed best-effort; the placeholder is shared
	// and never deleted.
	if existing.ProfileImage != "" && existing.ProfileImage != entity.DefaultProfileImage {
		if key := s.s3Client.KeyFromURL(existing.ProfileImage); key != "" {
			if err := s.s3Client.DeleteFile(key); err != nil {
				s.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"user_id":    id,
					"image":      existing.ProfileImage,
					"error":      err.Error(),
				}).Warn("Failed to delete previous profile image")
			}
		}
	}

	existing.ProfileImage = uploadedURL

	return &user.ImageUploadResponse{
		Message: "Profile image updated successfully.",
		User:    makeUserResponse(existing),
	}, nil
}

func (s *userService) UpdateUser(ctx context.Context, userData entity.UserLoginData, id string, req user.UpdateUserRequest) (*user.UserUpdateResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if userData.ID != id {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userData.ID,
			"target_id":  id,
		}).Warn("User update rejected for non-owner")
		return nil, user.ErrNotAccountOwner
	}

	repo, err := s.userRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	if err := repo.Users.UpdateUser(ctx, id, req.FirstName, req.LastName, req.Email); err != nil {
		return nil, err
	}

	updated, err := repo.Users.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &user.UserUpdateResponse{
		Message: "User updated successfully.",
		User:    makeUserResponse(updated),
	}, nil
}

func (s *userService) UpdatePassword(ctx context.Context, userData entity.UserLoginData, id string, req user.UpdatePasswordRequest) (*user.MessageResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if userData.ID != id {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userData.ID,
			"target_id":  id,
		}).Warn("Password update rejected for non-owner")
		return nil, user.ErrNotAccountOwner
	}

	repo, err := s.userRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	existing, err := repo.Users.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.bcryptUtils.ComparePassword(existing.Password, req.CurrentPassword); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    id,
		}).Warn("Current password verification failed")
		return nil, user.ErrIncorrectPassword
	}

	hashed, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return nil, err
	}

	if err := repo.Users.UpdatePassword(ctx, id, hashed); err != nil {
		return nil, err
	}

	return &user.MessageResponse{Message: "Password updated successfully."}, nil
}

func (s *userService) DeleteUser(ctx context.Context, userData entity.UserLoginData, id string) (*user.MessageResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if userData.ID != id {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userData.ID,
			"target_id":  id,
		}).Warn("User delete rejected for non-owner")
		return nil, user.ErrNotAccountOwner
	}

	repo, err := s.userRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	existing, err := repo.Users.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := repo.Users.DeleteUser(ctx, id); err != nil {
		return nil, err
	}

	if existing.ProfileImage != "" && existing.ProfileImage != entity.DefaultProfileImage {
		if key := s.s3Client.KeyFromURL(existing.ProfileImage); key != "" {
			if err := s.s3Client.DeleteFile(key); err != nil {
				s.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"user_id":    id,
					"error":      err.Error(),
				}).Warn("Failed to delete profile image from storage")
			}
		}
	}

	return &user.MessageResponse{Message: "User deleted successfully."}, nil
}

func makeUserResponse(u entity.User) user.UserResponse {
	return user.UserResponse{
		ID:            u.ID,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Email:         u.Email,
		ProfileImage:  u.ProfileImage,
		Role:          u.Role,
		AccountLocked: u.AccountLocked,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func mapImageError(err error) error {
	switch {
	case errors.Is(err, utils.ErrFileTooLarge):
		return user.ErrFileTooLarge
	case errors.Is(err, utils.ErrInvalidFileType), errors.Is(err, utils.ErrNoFileUploaded):
		return user.ErrInvalidFileType
	default:
		return err
	}
}
