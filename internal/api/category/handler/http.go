package categoryHandler

import (
	categoryService "BlogNest/internal/api/category/service"
	"BlogNest/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CategoryHandler struct {
	log             *logrus.Logger
	validator       *validator.Validate
	middleware      middleware.Middleware
	categoryService categoryService.ICategoryService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs categoryService.ICategoryService,
) *CategoryHandler {
	return &CategoryHandler{
		log:             log,
		validator:       validate,
		middleware:      middleware,
		categoryService: cs,
	}
}

func (h *CategoryHandler) Start(srv fiber.Router) {
	srv.Get("", h.HandleListCategories)
	srv.Post("", h.middleware.NewTokenMiddleware, h.HandleCreateCategory)
	srv.Get("/:id", h.HandleGetCategory)
	srv.Put("/:id", h.middleware.NewTokenMiddleware, h.HandleUpdateCategory)
	srv.Delete("/:id", h.middleware.NewTokenMiddleware, h.HandleDeleteCategory)
}
