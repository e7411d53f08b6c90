package userHandler

import (
	userService "BlogNest/internal/api/user/service"
	"BlogNest/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UserHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	userService userService.IUserService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	us userService.IUserService,
) *UserHandler {
	return &UserHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		userService: us,
	}
}

// Start registers the user routes. Static segments go first so /search and
// /lock are not swallowed by the :id parameter.
func (h *UserHandler) Start(srv fiber.Router) {
	srv.Get("", h.HandleListUsers)
	srv.Get("/search", h.middleware.NewTokenMiddleware, h.HandleSearchUsers)
	srv.Post("/lock/:id", h.middleware.NewTokenMiddleware, h.middleware.NewAdminMiddleware, h.HandleToggleLock)
	srv.Get("/:id", h.middleware.NewTokenMiddleware, h.HandleGetUser)
	srv.Post("/:id/image", h.middleware.NewTokenMiddleware, h.HandleUploadProfileImage)
	srv.Post("/:id/password", h.middleware.NewTokenMiddleware, h.HandleUpdatePassword)
	srv.Patch("/:id", h.middleware.NewTokenMiddleware, h.HandleUpdateUser)
	srv.Delete("/:id", h.middleware.NewTokenMiddleware, h.HandleDeleteUser)
}
