package commentService

import (
	"BlogNest/internal/api/comment"
	"BlogNest/internal/entity"
	contextPkg "BlogNest/pkg/context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *commentService) ListComments(ctx context.Context, blogID string) (*comment.CommentListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.commentRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	exists, err := repo.Comments.BlogExists(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, comment.ErrBlogNotFound
	}

	comments, err := repo.Comments.ListForBlog(ctx, blogID)
	if err != nil {
		return nil, err
	}

	responses := make([]comment.CommentResponse, 0, len(comments))
	for _, c := range comments {
		responses = append(responses, makeCommentResponse(c))
	}

	return &comment.CommentListResponse{Comments: responses}, nil
}

func (s *commentService) CreateComment(ctx context.Context, userData entity.UserLoginData, blogID string, req comment.CreateCommentRequest) (*comment.CommentDetailResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.commentRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	exists, err := repo.Comments.BlogExists(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, comment.ErrBlogNotFound
	}

	commentID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return nil, err
	}

	now := time.Now()
	newComment := entity.Comment{
		ID:        commentID,
		BlogID:    blogID,
		UserID:    userData.ID,
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := repo.Comments.CreateComment(ctx, newComment); err != nil {
		return nil, err
	}

	created, err := repo.Comments.GetCommentByID(ctx, blogID, commentID)
	if err != nil {
		return nil, err
	}

	return &comment.CommentDetailResponse{
		Message: "Comment created successfully.",
		Comment: makeCommentResponse(created),
	}, nil
}

func (s *commentService) GetCommentByID(ctx context.Context, blogID, commentID string) (*comment.CommentDetailResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.commentRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	c, err := repo.Comments.GetCommentByID(ctx, blogID, commentID)
	if err != nil {
		return nil, err
	}

	return &comment.CommentDetailResponse{Comment: makeCommentResponse(c)}, nil
}

func (s *commentService) UpdateComment(ctx context.Context, userData entity.UserLoginData, blogID, commentID string, req comment.UpdateCommentRequest) (*comment.CommentDetailResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.commentRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	existing, err := repo.Comments.GetCommentByID(ctx, blogID, commentID)
	if err != nil {
		return nil, err
	}

	if existing.UserID != userData.ID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"comment_id": commentID,
			"user_id":    userData.ID,
		}).Warn("Comment update rejected for non-author")
		return nil, comment.ErrNotCommentAuthor
	}

	if err := repo.Comments.UpdateComment(ctx, commentID, req.Content); err != nil {
		return nil, err
	}

	existing.Content = req.Content
	existing.UpdatedAt = time.Now()

	return &comment.CommentDetailResponse{
		Message: "Comment updated successfully.",
		Comment: makeCommentResponse(existing),
	}, nil
}

func (s *commentService) DeleteComment(ctx context.Context, userData entity.UserLoginData, blogID, commentID string) (*comment.MessageResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.commentRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	existing, err := repo.Comments.GetCommentByID(ctx, blogID, commentID)
	if err != nil {
		return nil, err
	}

	if existing.UserID != userData.ID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"comment_id": commentID,
			"user_id":    userData.ID,
		}).Warn("Comment delete rejected for non-author")
		return nil, comment.ErrNotCommentAuthor
	}

	if err := repo.Comments.DeleteComment(ctx, commentID); err != nil {
		return nil, err
	}

	return &comment.MessageResponse{Message: "Comment deleted successfully."}, nil
}

func makeCommentResponse(c entity.CommentWithAuthor) comment.CommentResponse {
	return comment.CommentResponse{
		ID:        c.ID,
		BlogID:    c.BlogID,
		UserID:    c.UserID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		User: comment.AuthorResponse{
			ID:            c.Author.ID,
			FirstName:     c.Author.FirstName,
			LastName:      c.Author.LastName,
			Email:         c.Author.Email,
			ProfileImage:  c.Author.ProfileImage,
			Role:          c.Author.Role,
			AccountLocked: c.Author.AccountLocked,
			CreatedAt:     c.Author.CreatedAt,
			UpdatedAt:     c.Author.UpdatedAt,
		},
	}
}
