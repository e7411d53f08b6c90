package blogHandler

import (
	blogService "BlogNest/internal/api/blog/service"
	"BlogNest/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BlogHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	blogService blogService.IBlogService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	bs blogService.IBlogService,
) *BlogHandler {
	return &BlogHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		blogService: bs,
	}
}

func (h *BlogHandler) Start(srv fiber.Router) {
	srv.Get("", h.HandleListBlogs)
	srv.Post("", h.middleware.NewTokenMiddleware, h.HandleCreateBlog)
	srv.Post("/search", h.HandleSearchBlogs)
	srv.Post("/upload", h.middleware.NewTokenMiddleware, h.HandleUploadImage)
	srv.Get("/:id", h.HandleGetBlog)
	srv.Put("/:id", h.middleware.NewTokenMiddleware, h.HandleUpdateBlog)
	srv.Delete("/:id", h.middleware.NewTokenMiddleware, h.HandleDeleteBlog)
}
