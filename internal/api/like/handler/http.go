package likeHandler

import (
	likeService "BlogNest/internal/api/like/service"
	"BlogNest/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type LikeHandler struct {
	log         *logrus.Logger
	middleware  middleware.Middleware
	likeService likeService.ILikeService
}

func New(
	log *logrus.Logger,
	middleware middleware.Middleware,
	ls likeService.ILikeService,
) *LikeHandler {
	return &LikeHandler{
		log:         log,
		middleware:  middleware,
		likeService: ls,
	}
}

// Start registers the like routes. The router is expected to be a group
// mounted under /blogs/:blogId.
func (h *LikeHandler) Start(srv fiber.Router) {
	srv.Post("", h.middleware.NewTokenMiddleware, h.HandleToggleLike)
	srv.Get("", h.HandleListLikes)
	srv.Get("/:id", h.HandleGetLike)
}
