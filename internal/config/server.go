package config

import (
	"BlogNest/database/postgres"
	authHandler "BlogNest/internal/api/auth/handler"
	authRepository "BlogNest/internal/api/auth/repository"
	authService "BlogNest/internal/api/auth/service"
	blogHandler "BlogNest/internal/api/blog/handler"
	blogRepository "BlogNest/internal/api/blog/repository"
	blogService "BlogNest/internal/api/blog/service"
	categoryHandler "BlogNest/internal/api/category/handler"
	categoryRepository "BlogNest/internal/api/category/repository"
	categoryService "BlogNest/internal/api/category/service"
	commentHandler "BlogNest/internal/api/comment/handler"
	commentRepository "BlogNest/internal/api/comment/repository"
	commentService "BlogNest/internal/api/comment/service"
	likeHandler "BlogNest/internal/api/like/handler"
	likeRepository "BlogNest/internal/api/like/repository"
	likeService "BlogNest/internal/api/like/service"
	userHandler "BlogNest/internal/api/user/handler"
	userRepository "BlogNest/internal/api/user/repository"
	userService "BlogNest/internal/api/user/service"
	"BlogNest/internal/middleware"
	"BlogNest/pkg/bcrypt"
	"BlogNest/pkg/redis"
	"BlogNest/pkg/s3"
	"BlogNest/pkg/utils"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	db          *sqlx.DB
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	bcryptUtils bcrypt.IBcrypt
	tokenStore  redis.ITokenStore
	s3Client    s3.ItfS3
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}

		if err := postgres.Migrate(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		s.db = db
		return nil
	}
}

func WithTokenStore(tokenStore redis.ITokenStore) ServerOption {
	return func(s *Server) error {
		s.tokenStore = tokenStore
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		if s.tokenStore == nil {
			return fmt.Errorf("token store must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log, s.tokenStore)
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils() ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = bcrypt.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth Domain
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.New(s.log, authRepo, s.tokenStore, s.s3Client, s.bcryptUtils, s.utils)
	authHandlers := authHandler.New(s.log, s.validator, s.middleware, authServices)

	// Blog Domain
	blogRepo := blogRepository.New(s.db, s.log)
	blogServices := blogService.New(s.log, blogRepo, s.s3Client, s.utils)
	blogHandlers := blogHandler.New(s.log, s.validator, s.middleware, blogServices)

	// Category Domain
	categoryRepo := categoryRepository.New(s.db, s.log)
	categoryServices := categoryService.New(s.log, categoryRepo, s.utils)
	categoryHandlers := categoryHandler.New(s.log, s.validator, s.middleware, categoryServices)

	// Comment Domain
	commentRepo := commentRepository.New(s.db, s.log)
	commentServices := commentService.New(s.log, commentRepo, s.utils)
	commentHandlers := commentHandler.New(s.log, s.validator, s.middleware, commentServices)

	// Like Domain
	likeRepo := likeRepository.New(s.db, s.log)
	likeServices := likeService.New(s.log, likeRepo, s.utils)
	likeHandlers := likeHandler.New(s.log, s.middleware, likeServices)

	// User Domain
	userRepo := userRepository.New(s.db, s.log)
	userServices := userService.New(s.log, userRepo, s.s3Client, s.bcryptUtils, s.utils)
	userHandlers := userHandler.New(s.log, s.validator, s.middleware, userServices)

	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware())
	s.engine.Use(s.middleware.NewRateLimiter)

	s.setupHealthCheck()

	router := s.engine.Group("/api/v1")

	authHandlers.Start(router.Group("/auth"))
	// Laravel-style authenticated profile route lives at the API root.
	router.Get("/user", s.middleware.NewTokenMiddleware, authHandlers.HandleCurrentUser)

	blogHandlers.Start(router.Group("/blogs"))
	commentHandlers.Start(router.Group("/blogs/:blogId/comments"))
	likeHandlers.Start(router.Group("/blogs/:blogId/likes"))
	categoryHandlers.Start(router.Group("/categories"))
	userHandlers.Start(router.Group("/users"))
}

func (s *Server) Run() error {
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
