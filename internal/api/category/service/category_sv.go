package categoryService

import (
	"BlogNest/internal/api/category"
	"BlogNest/internal/entity"
	contextPkg "BlogNest/pkg/context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *categoryService) ListCategories(ctx context.Context) (*category.CategoryListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.categoryRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	categories, err := repo.Categories.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]category.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		responses = append(responses, makeCategoryResponse(c))
	}

	return &category.CategoryListResponse{Categories: responses}, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, req category.CreateCategoryRequest) (*category.CategoryDetailResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.categoryRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	categoryID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return nil, err
	}

	now := time.Now()
	c := entity.Category{
		ID:        categoryID,
		Name:      req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := repo.Categories.CreateCategory(ctx, c); err != nil {
		return nil, err
	}

	return &category.CategoryDetailResponse{
		Message:  "Category created successfully.",
		Category: makeCategoryResponse(c),
	}, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id string) (*category.CategoryDetailResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.categoryRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	c, err := repo.Categories.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &category.CategoryDetailResponse{Category: makeCategoryResponse(c)}, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id string, req category.UpdateCategoryRequest) (*category.CategoryDetailResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.categoryRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	existing, err := repo.Categories.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.UpdatedAt = time.Now()

	if err := repo.Categories.UpdateCategory(ctx, existing); err != nil {
		return nil, err
	}

	return &category.CategoryDetailResponse{
		Message:  "Category updated successfully.",
		Category: makeCategoryResponse(existing),
	}, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id string) (*category.MessageResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.categoryRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	if err := repo.Categories.DeleteCategory(ctx, id); err != nil {
		return nil, err
	}

	return &category.MessageResponse{Message: "Category deleted successfully."}, nil
}

func makeCategoryResponse(c entity.Category) category.CategoryResponse {
	return category.CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
