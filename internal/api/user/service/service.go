package userService

import (
	"BlogNest/internal/api/user"
	userRepository "BlogNest/internal/api/user/repository"
	"BlogNest/internal/entity"
	"BlogNest/pkg/bcrypt"
	"BlogNest/pkg/s3"
	"BlogNest/pkg/utils"
	"context"
	"mime/multipart"

	"github.com/sirupsen/logrus"
)

type IUserService interface {
	ListUsers(ctx context.Context) (*user.UserListResponse, error)
	GetUserProfile(ctx context.Context, id string) (*user.UserDetailResponse, error)
	SearchUsers(ctx context.Context, query string) (*user.SearchResponse, error)
	ToggleLock(ctx context.Context, id string) (*user.LockResponse, error)
	UploadProfileImage(ctx context.Context, id string, file *multipart.FileHeader) (*user.ImageUploadResponse, error)
	UpdateUser(ctx context.Context, userData entity.UserLoginData, id string, req user.UpdateUserRequest) (*user.UserUpdateResponse, error)
	UpdatePassword(ctx context.Context, userData entity.UserLoginData, id string, req user.UpdatePasswordRequest) (*user.MessageResponse, error)
	DeleteUser(ctx context.Context, userData entity.UserLoginData, id string) (*user.MessageResponse, error)
}

type userService struct {
	log         *logrus.Logger
	userRepo    userRepository.Repository
	s3Client    s3.ItfS3
	bcryptUtils bcrypt.IBcrypt
	utils       utils.IUtils
}

func New(
	log *logrus.Logger,
	userRepo userRepository.Repository,
	s3Client s3.ItfS3,
	bcryptUtils bcrypt.IBcrypt,
	utils utils.IUtils,
) IUserService {
	return &userService{
		log:         log,
		userRepo:    userRepo,
		s3Client:    s3Client,
		bcryptUtils: bcryptUtils,
		utils:       utils,
	}
}
