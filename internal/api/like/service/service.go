package likeService

import (
	"BlogNest/internal/api/like"
	likeRepository "BlogNest/internal/api/like/repository"
	"BlogNest/internal/entity"
	"BlogNest/pkg/utils"
	"context"

	"github.com/sirupsen/logrus"
)

type ILikeService interface {
	ToggleLike(ctx context.Context, userData entity.UserLoginData, blogID string) (*like.ToggleResponse, error)
	ListLikes(ctx context.Context, blogID string) (*like.LikeListResponse, error)
	GetLikeByID(ctx context.Context, blogID, likeID string) (*like.LikeDetailResponse, error)
}

type likeService struct {
	log      *logrus.Logger
	likeRepo likeRepository.Repository
	utils    utils.IUtils
}

func New(
	log *logrus.Logger,
	likeRepo likeRepository.Repository,
	utils utils.IUtils,
) ILikeService {
	return &likeService{
		log:      log,
		likeRepo: likeRepo,
		utils:    utils,
	}
}
