package blogService

import (
	"BlogNest/internal/api/blog"
	blogRepository "BlogNest/internal/api/blog/repository"
	"BlogNest/internal/entity"
	"BlogNest/pkg/utils"
	"database/sql"
	"errors"
	"time"

	"golang.org/x/net/context"
)

// syncCategories finds or creates every requested category by name and
// rewrites the blog's join rows to exactly that set. Runs on the caller's
// (transactional) client.
func (s *blogService) syncCategories(ctx context.Context, repo blogRepository.Client, blogID string, names []string, now time.Time) ([]blog.CategoryResponse, error) {
	categories := make([]blog.CategoryResponse, 0, len(names))
	categoryIDs := make([]string, 0, len(names))

	for _, name := range names {
		candidateID, err := s.utils.NewULIDFromTimestamp(now)
		if err != nil {
			return nil, err
		}

		c, err := repo.Categories.UpsertByName(ctx, candidateID, name, now)
		if err != nil {
			return nil, err
		}

		categoryIDs = append(categoryIDs, c.ID)
		categories = append(categories, blog.CategoryResponse{
			ID:        c.ID,
			Name:      c.Name,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		})
	}

	if err := repo.Categories.SyncBlogCategories(ctx, blogID, categoryIDs); err != nil {
		return nil, err
	}

	return categories, nil
}

func (s *blogService) attachCategories(ctx context.Context, repo blogRepository.Client, items []entity.BlogListItem) ([]blog.BlogResponse, error) {
	blogIDs := make([]string, 0, len(items))
	for _, item := range items {
		blogIDs = append(blogIDs, item.ID)
	}

	byBlog, err := repo.Categories.ListForBlogs(ctx, blogIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]blog.BlogResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, makeBlogResponse(
			item.Blog,
			item.Creator,
			categoryResponses(byBlog[item.ID]),
			item.LikeCount,
			item.CommentCount,
		))
	}

	return responses, nil
}

func makeBlogResponse(b entity.Blog, creator entity.User, categories []blog.CategoryResponse, likeCount, commentCount int) blog.BlogResponse {
	return blog.BlogResponse{
		ID:           b.ID,
		Title:        b.Title,
		Description:  fromNullString(b.Description),
		Body:         b.Body,
		Preview:      b.Preview,
		CreatorID:    b.CreatorID,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
		User:         makeUserSummary(creator),
		Categories:   categories,
		LikeCount:    likeCount,
		CommentCount: commentCount,
	}
}

func makeUserSummary(user entity.User) blog.UserSummary {
	return blog.UserSummary{
		ID:            user.ID,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Email:         user.Email,
		ProfileImage:  user.ProfileImage,
		Role:          user.Role,
		AccountLocked: user.AccountLocked,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

func categoryResponses(categories []entity.Category) []blog.CategoryResponse {
	responses := make([]blog.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		responses = append(responses, blog.CategoryResponse{
			ID:        c.ID,
			Name:      c.Name,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		})
	}
	return responses
}

func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func mapImageError(err error) error {
	switch {
	case errors.Is(err, utils.ErrFileTooLarge):
		return blog.ErrFileTooLarge
	case errors.Is(err, utils.ErrInvalidFileType), errors.Is(err, utils.ErrNoFileUploaded):
		return blog.ErrInvalidFileType
	default:
		return err
	}
}
