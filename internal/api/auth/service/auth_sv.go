package authService

import (
	"BlogNest/internal/api/auth"
	"BlogNest/internal/entity"
	contextPkg "BlogNest/pkg/context"
	jwtPkg "BlogNest/pkg/jwt"
	"BlogNest/pkg/utils"
	"errors"
	"mime/multipart"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const accessTokenTTL = time.Hour * 24

func (s *authService) Register(ctx context.Context, req auth.RegisterRequest, profileImage *multipart.FileHeader) (*auth.AuthResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	profileImagePath := entity.DefaultProfileImage

	if profileImage != nil {
		if err := s.utils.ValidateImageFile(profileImage); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Invalid profile image")
			return nil, mapImageError(err)
		}

		uploadedURL, err := s.s3Client.UploadFile(profileImage, "uploads/profile")
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to upload profile image")
			return nil, auth.ErrFailedToUpload
		}
		profileImagePath = uploadedURL
	}

	hashed, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		s.cleanupUpload(requestID, profileImagePath)
		return nil, err
	}

	userID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.cleanupUpload(requestID, profileImagePath)
		return nil, err
	}

	now := time.Now()
	user := entity.User{
		ID:           userID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Password:     hashed,
		ProfileImage: profileImagePath,
		Role:         entity.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := repo.Users.CreateUser(ctx, user); err != nil {
		// The uploaded object has no owning row; remove it so storage does
		// not accumulate orphans.
		s.cleanupUpload(requestID, profileImagePath)
		if errors.Is(err, auth.ErrEmailAlreadyExists) {
			return nil, err
		}
		return nil, auth.ErrCreateUser
	}

	token, _, err := jwtPkg.Sign(user, accessTokenTTL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign token")
		return nil, err
	}

	resp := &auth.AuthResponse{
		User:  makeUserResponse(user),
		Token: token,
	}

	return resp, nil
}

func (s *authService) Login(ctx context.Context, req auth.LoginRequest) (*auth.AuthResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.authRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	user, err := repo.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			// Same response whether the email or the password was wrong.
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("Login attempt for unknown email")
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.bcryptUtils.ComparePassword(user.Password, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    user.ID,
		}).Warn("Password comparison failed")
		return nil, auth.ErrInvalidCredentials
	}

	if user.AccountLocked {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    user.ID,
		}).Warn("Login attempt on locked account")
		return nil, auth.ErrAccountLocked
	}

	token, _, err := jwtPkg.Sign(user, accessTokenTTL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign token")
		return nil, err
	}

	resp := &auth.AuthResponse{
		User:  makeUserResponse(user),
		Token: token,
	}

	return resp, nil
}

// Logout revokes every token of the user, not just the presented one.
func (s *authService) Logout(ctx context.Context, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	if err := s.tokenStore.RevokeAll(ctx, userID, time.Now()); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to revoke tokens")
		return err
	}

	return nil
}

func (s *authService) CurrentUser(ctx context.Context, userID string) (*auth.UserResponse, error) {
	repo, err := s.authRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	user, err := repo.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := makeUserResponse(user)
	return &resp, nil
}

func (s *authService) cleanupUpload(requestID, imagePath string) {
	if imagePath == "" || imagePath == entity.DefaultProfileImage {
		return
	}
	if err := s.s3Client.DeleteFile(s.s3Client.KeyFromURL(imagePath)); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"image":      imagePath,
			"error":      err.Error(),
		}).Warn("Failed to delete orphaned upload")
	}
}

func makeUserResponse(user entity.User) auth.UserResponse {
	return auth.UserResponse{
		ID:            user.ID,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Email:         user.Email,
		ProfileImage:  user.ProfileImage,
		Role:          user.Role,
		AccountLocked: user.AccountLocked,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
		Blogs:         []interface{}{},
		Comments:      []interface{}{},
		Likes:         []interface{}{},
	}
}

func mapImageError(err error) error {
	switch {
	case errors.Is(err, utils.ErrFileTooLarge):
		return auth.ErrFileTooLarge
	case errors.Is(err, utils.ErrInvalidFileType), errors.Is(err, utils.ErrNoFileUploaded):
		return auth.ErrInvalidFileType
	default:
		return err
	}
}
