package commentService

import (
	"BlogNest/internal/api/comment"
	commentRepository "BlogNest/internal/api/comment/repository"
	"BlogNest/internal/entity"
	"BlogNest/pkg/utils"
	"context"

	"github.com/sirupsen/logrus"
)

type ICommentService interface {
	ListComments(ctx context.Context, blogID string) (*comment.CommentListResponse, error)
	CreateComment(ctx context.Context, userData entity.UserLoginData, blogID string, req comment.CreateCommentRequest) (*comment.CommentDetailResponse, error)
	GetCommentByID(ctx context.Context, blogID, commentID string) (*comment.CommentDetailResponse, error)
	UpdateComment(ctx context.Context, userData entity.UserLoginData, blogID, commentID string, req comment.UpdateCommentRequest) (*comment.CommentDetailResponse, error)
	DeleteComment(ctx context.Context, userData entity.UserLoginData, blogID, commentID string) (*comment.MessageResponse, error)
}

type commentService struct {
	log         *logrus.Logger
	commentRepo commentRepository.Repository
	utils       utils.IUtils
}

func New(
	log *logrus.Logger,
	commentRepo commentRepository.Repository,
	utils utils.IUtils,
) ICommentService {
	return &commentService{
		log:         log,
		commentRepo: commentRepo,
		utils:       utils,
	}
}
