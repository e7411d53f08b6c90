package categoryService

import (
	"BlogNest/internal/api/category"
	categoryRepository "BlogNest/internal/api/category/repository"
	"BlogNest/pkg/utils"
	"context"

	"github.com/sirupsen/logrus"
)

type ICategoryService interface {
	ListCategories(ctx context.Context) (*category.CategoryListResponse, error)
	CreateCategory(ctx context.Context, req category.CreateCategoryRequest) (*category.CategoryDetailResponse, error)
	GetCategoryByID(ctx context.Context, id string) (*category.CategoryDetailResponse, error)
	UpdateCategory(ctx context.Context, id string, req category.UpdateCategoryRequest) (*category.CategoryDetailResponse, error)
	DeleteCategory(ctx context.Context, id string) (*category.MessageResponse, error)
}

type categoryService struct {
	log          *logrus.Logger
	categoryRepo categoryRepository.Repository
	utils        utils.IUtils
}

func New(
	log *logrus.Logger,
	categoryRepo categoryRepository.Repository,
	utils utils.IUtils,
) ICategoryService {
	return &categoryService{
		log:          log,
		categoryRepo: categoryRepo,
		utils:        utils,
	}
}
