package blogService

import (
	"BlogNest/internal/api/blog"
	blogRepository "BlogNest/internal/api/blog/repository"
	"BlogNest/internal/entity"
	"BlogNest/pkg/s3"
	"BlogNest/pkg/utils"
	"context"
	"mime/multipart"

	"github.com/sirupsen/logrus"
)

type IBlogService interface {
	ListBlogs(ctx context.Context, page int) (*blog.BlogListResponse, error)
	SearchBlogs(ctx context.Context, req blog.SearchRequest) (*blog.BlogListResponse, error)
	CreateBlog(ctx context.Context, userData entity.UserLoginData, req blog.CreateBlogRequest) (*blog.BlogDetailResponse, error)
	UploadImage(ctx context.Context, file *multipart.FileHeader) (*blog.UploadResponse, error)
	GetBlogByID(ctx context.Context, id string) (*blog.BlogDetailResponse, error)
	UpdateBlog(ctx context.Context, userData entity.UserLoginData, id string, req blog.UpdateBlogRequest) (*blog.BlogDetailResponse, error)
	DeleteBlog(ctx context.Context, userData entity.UserLoginData, id string) (*blog.MessageResponse, error)
}

type blogService struct {
	log      *logrus.Logger
	blogRepo blogRepository.Repository
	s3Client s3.ItfS3
	utils    utils.IUtils
}

func New(
	log *logrus.Logger,
	blogRepo blogRepository.Repository,
	s3Client s3.ItfS3,
	utils utils.IUtils,
) IBlogService {
	return &blogService{
		log:      log,
		blogRepo: blogRepo,
		s3Client: s3Client,
		utils:    utils,
	}
}
