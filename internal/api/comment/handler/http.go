package commentHandler

import (
	commentService "BlogNest/internal/api/comment/service"
	"BlogNest/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CommentHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	commentService commentService.ICommentService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs commentService.ICommentService,
) *CommentHandler {
	return &CommentHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		commentService: cs,
	}
}

// Start registers the comment routes. The router is expected to be a group
// mounted under /blogs/:blogId.
func (h *CommentHandler) Start(srv fiber.Router) {
	srv.Get("", h.HandleListComments)
	srv.Post("", h.middleware.NewTokenMiddleware, h.HandleCreateComment)
	srv.Get("/:commentId", h.HandleGetComment)
	srv.Put("/:commentId", h.middleware.NewTokenMiddleware, h.HandleUpdateComment)
	srv.Delete("/:commentId", h.middleware.NewTokenMiddleware, h.HandleDeleteComment)
}
