package blogService

import (
	"BlogNest/internal/api/blog"
	"BlogNest/internal/entity"
	contextPkg "BlogNest/pkg/context"
	"errors"
	"mime/multipart"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *blogService) ListBlogs(ctx context.Context, page int) (*blog.BlogListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if page < 1 {
		page = 1
	}

	repo, err := s.blogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	offset := (page - 1) * blog.PageSize
	items, total, err := repo.Blogs.ListBlogs(ctx, blog.PageSize, offset)
	if err != nil {
		return nil, err
	}

	responses, err := s.attachCategories(ctx, repo, items)
	if err != nil {
		return nil, err
	}

	return &blog.BlogListResponse{
		Blogs:        responses,
		CurrentPage:  page,
		HasMoreBlogs: page*blog.PageSize < total,
	}, nil
}

// SearchBlogs runs in one of two modes. A non-empty tag list wins: results
// are blogs whose categories intersect the tags by name, fetched one past
// the page size so HasMoreBlogs can be derived without a count query, and
// the page is forced back to 1. Otherwise the query string is matched as a
// case-insensitive substring of the title with regular pagination.
func (s *blogService) SearchBlogs(ctx context.Context, req blog.SearchRequest) (*blog.BlogListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	if len(req.Tags) > 0 {
		items, err := repo.Blogs.SearchByTags(ctx, req.Tags, blog.PageSize+1)
		if err != nil {
			return nil, err
		}

		hasMore := len(items) > blog.PageSize
		if hasMore {
			items = items[:blog.PageSize]
		}

		responses, err := s.attachCategories(ctx, repo, items)
		if err != nil {
			return nil, err
		}

		return &blog.BlogListResponse{
			Blogs:        responses,
			CurrentPage:  1,
			HasMoreBlogs: hasMore,
		}, nil
	}

	page := req.CurrentPage
	if page < 1 {
		page = 1
	}

	offset := (page - 1) * blog.PageSize
	items, total, err := repo.Blogs.SearchByTitle(ctx, req.Query, blog.PageSize, offset)
	if err != nil {
		return nil, err
	}

	responses, err := s.attachCategories(ctx, repo, items)
	if err != nil {
		return nil, err
	}

	return &blog.BlogListResponse{
		Blogs:        responses,
		CurrentPage:  page,
		HasMoreBlogs: page*blog.PageSize < total,
	}, nil
}

func (s *blogService) CreateBlog(ctx context.Context, userData entity.UserLoginData, req blog.CreateBlogRequest) (*blog.BlogDetailResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}
	defer repo.Rollback()

	blogID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return nil, err
	}

	now := time.Now()
	newBlog := entity.Blog{
		ID:          blogID,
		Title:       req.Title,
		Description: toNullString(req.Description),
		Body:        req.Body,
		Preview:     req.Preview,
		CreatorID:   userData.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := repo.Blogs.CreateBlog(ctx, newBlog); err != nil {
		if errors.Is(err, blog.ErrTitleAlreadyExists) {
			return nil, err
		}
		return nil, blog.ErrCreateBlog
	}

	categories, err := s.syncCategories(ctx, repo, blogID, req.Categories, now)
	if err != nil {
		return nil, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit blog creation")
		return nil, err
	}

	readRepo, err := s.blogRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	creator, err := readRepo.Blogs.GetCreator(ctx, blogID)
	if err != nil {
		return nil, err
	}

	resp := makeBlogResponse(newBlog, creator, categories, 0, 0)
	resp.Likes = []blog.LikeResponse{}
	resp.Comments = []blog.CommentResponse{}

	return &blog.BlogDetailResponse{
		Message: "Blog created successfully.",
		Blog:    resp,
	}, nil
}

func (s *blogService) UploadImage(ctx context.Context, file *multipart.FileHeader) (*blog.UploadResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if file == nil {
		return nil, blog.ErrNoFileUploaded
	}

	if err := s.utils.ValidateImageFile(file); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid blog image")
		return nil, mapImageError(err)
	}

	uploadedURL, err := s.s3Client.UploadFile(file, "uploads/blogs")
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to upload blog image")
		return nil, blog.ErrFailedToUpload
	}

	return &blog.UploadResponse{URL: uploadedURL}, nil
}

func (s *blogService) GetBlogByID(ctx context.Context, id string) (*blog.BlogDetailResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	blogRow, err := repo.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		return nil, err
	}

	creator, err := repo.Blogs.GetCreator(ctx, id)
	if err != nil {
		return nil, err
	}

	categories, err := repo.Categories.ListForBlog(ctx, id)
	if err != nil {
		return nil, err
	}

	likes, err := repo.Blogs.ListBlogLikes(ctx, id)
	if err != nil {
		return nil, err
	}

	comments, err := repo.Blogs.ListBlogComments(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := makeBlogResponse(blogRow, creator, categoryResponses(categories), len(likes), len(comments))

	resp.Likes = make([]blog.LikeResponse, 0, len(likes))
	for _, l := range likes {
		resp.Likes = append(resp.Likes, blog.LikeResponse{
			ID:        l.ID,
			BlogID:    l.BlogID,
			UserID:    l.UserID,
			CreatedAt: l.CreatedAt,
			UpdatedAt: l.UpdatedAt,
			User:      makeUserSummary(l.User),
		})
	}

	resp.Comments = make([]blog.CommentResponse, 0, len(comments))
	for _, c := range comments {
		resp.Comments = append(resp.Comments, blog.CommentResponse{
			ID:        c.ID,
			BlogID:    c.BlogID,
			UserID:    c.UserID,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
			User:      makeUserSummary(c.Author),
		})
	}

	return &blog.BlogDetailResponse{Blog: resp}, nil
}

func (s *blogService) UpdateBlog(ctx context.Context, userData entity.UserLoginData, id string, req blog.UpdateBlogRequest) (*blog.BlogDetailResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	readRepo, err := s.blogRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	existing, err := readRepo.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing.CreatorID != userData.ID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"blog_id":    id,
			"user_id":    userData.ID,
		}).Warn("Blog update rejected for non-creator")
		return nil, blog.ErrNotBlogCreator
	}

	repo, err := s.blogRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}
	defer repo.Rollback()

	now := time.Now()
	updated := entity.Blog{
		ID:          id,
		Title:       req.Title,
		Description: toNullString(req.Description),
		Body:        req.Body,
		Preview:     req.Preview,
		CreatorID:   existing.CreatorID,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   now,
	}

	if err := repo.Blogs.UpdateBlog(ctx, updated); err != nil {
		return nil, err
	}

	categories, err := s.syncCategories(ctx, repo, id, req.Categories, now)
	if err != nil {
		return nil, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit blog update")
		return nil, err
	}

	creator, err := readRepo.Blogs.GetCreator(ctx, id)
	if err != nil {
		return nil, err
	}

	return &blog.BlogDetailResponse{
		Message: "Blog updated successfully.",
		Blog:    makeBlogResponse(updated, creator, categories, 0, 0),
	}, nil
}

func (s *blogService) DeleteBlog(ctx context.Context, userData entity.UserLoginData, id string) (*blog.MessageResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	existing, err := repo.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing.CreatorID != userData.ID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"blog_id":    id,
			"user_id":    userData.ID,
		}).Warn("Blog delete rejected for non-creator")
		return nil, blog.ErrNotBlogCreator
	}

	// Storage cleanup never blocks the delete; an orphaned object is
	// preferable to a blog that cannot be removed.
	if key := s.s3Client.KeyFromURL(existing.Preview); key != "" {
		if err := s.s3Client.DeleteFile(key); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"blog_id":    id,
				"error":      err.Error(),
			}).Warn("Failed to delete blog preview from storage")
		}
	}

	if err := repo.Blogs.DeleteBlog(ctx, id); err != nil {
		return nil, err
	}

	return &blog.MessageResponse{Message: "Blog deleted successfully."}, nil
}
