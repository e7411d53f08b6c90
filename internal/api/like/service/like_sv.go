package likeService

import (
	"BlogNest/internal/api/like"
	"BlogNest/internal/entity"
	contextPkg "BlogNest/pkg/context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// ToggleLike removes the caller's like when one exists and creates it
// otherwise. The delete and the guarded insert run in one transaction; a
// concurrent toggle that wins the unique constraint race is reported as
// the like already being present.
func (s *likeService) ToggleLike(ctx context.Context, userData entity.UserLoginData, blogID string) (*like.ToggleResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.likeRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}
	defer repo.Rollback()

	exists, err := repo.Likes.BlogExists(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, like.ErrBlogNotFound
	}

	removed, err := repo.Likes.DeleteByBlogAndUser(ctx, blogID, userData.ID)
	if err != nil {
		return nil, err
	}

	if removed {
		if err := repo.Commit(); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to commit like removal")
			return nil, err
		}

		return &like.ToggleResponse{
			Message: "Like removed successfully.",
			Liked:   false,
		}, nil
	}

	likeID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return nil, err
	}

	now := time.Now()
	inserted, err := repo.Likes.InsertLike(ctx, entity.Like{
		ID:        likeID,
		BlogID:    blogID,
		UserID:    userData.ID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	if !inserted {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"blog_id":    blogID,
			"user_id":    userData.ID,
		}).Warn("Like insert lost a concurrent race; treating as already liked")
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit like creation")
		return nil, err
	}

	return &like.ToggleResponse{
		Message: "Like added successfully.",
		Liked:   true,
	}, nil
}

func (s *likeService) ListLikes(ctx context.Context, blogID string) (*like.LikeListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.likeRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	exists, err := repo.Likes.BlogExists(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, like.ErrBlogNotFound
	}

	likes, err := repo.Likes.ListForBlog(ctx, blogID)
	if err != nil {
		return nil, err
	}

	responses := make([]like.LikeResponse, 0, len(likes))
	for _, l := range likes {
		responses = append(responses, makeLikeResponse(l))
	}

	return &like.LikeListResponse{Likes: responses}, nil
}

func (s *likeService) GetLikeByID(ctx context.Context, blogID, likeID string) (*like.LikeDetailResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.likeRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	l, err := repo.Likes.GetLikeByID(ctx, blogID, likeID)
	if err != nil {
		return nil, err
	}

	return &like.LikeDetailResponse{Like: makeLikeResponse(l)}, nil
}

func makeLikeResponse(l entity.LikeWithUser) like.LikeResponse {
	return like.LikeResponse{
		ID:        l.ID,
		BlogID:    l.BlogID,
		UserID:    l.UserID,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
		User: like.UserSummary{
			ID:            l.User.ID,
			FirstName:     l.User.FirstName,
			LastName:      l.User.LastName,
			Email:         l.User.Email,
			ProfileImage:  l.User.ProfileImage,
			Role:          l.User.Role,
			AccountLocked: l.User.AccountLocked,
			CreatedAt:     l.User.CreatedAt,
			UpdatedAt:     l.User.UpdatedAt,
		},
	}
}
