package authService

import (
	"BlogNest/internal/api/auth"
	authRepository "BlogNest/internal/api/auth/repository"
	"BlogNest/pkg/bcrypt"
	"BlogNest/pkg/redis"
	"BlogNest/pkg/s3"
	"BlogNest/pkg/utils"
	"context"
	"mime/multipart"

	"github.com/sirupsen/logrus"
)

type IAuthService interface {
	Register(ctx context.Context, req auth.RegisterRequest, profileImage *multipart.FileHeader) (*auth.AuthResponse, error)
	Login(ctx context.Context, req auth.LoginRequest) (*auth.AuthResponse, error)
	Logout(ctx context.Context, userID string) error
	CurrentUser(ctx context.Context, userID string) (*auth.UserResponse, error)
}

type authService struct {
	log         *logrus.Logger
	authRepo    authRepository.Repository
	tokenStore  redis.ITokenStore
	s3Client    s3.ItfS3
	bcryptUtils bcrypt.IBcrypt
	utils       utils.IUtils
}

func New(
	log *logrus.Logger,
	authRepo authRepository.Repository,
	tokenStore redis.ITokenStore,
	s3Client s3.ItfS3,
	bcryptUtils bcrypt.IBcrypt,
	utils utils.IUtils,
) IAuthService {
	return &authService{
		log:         log,
		authRepo:    authRepo,
		tokenStore:  tokenStore,
		s3Client:    s3Client,
		bcryptUtils: bcryptUtils,
		utils:       utils,
	}
}
