package middleware

import (
	"BlogNest/internal/entity"
	contextPkg "BlogNest/pkg/context"
	jwtPkg "BlogNest/pkg/jwt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

func (m *middleware) NewTokenMiddleware(ctx *fiber.Ctx) error {
	userToken, err := jwtPkg.VerifyTokenHeader(ctx)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"path":  ctx.Path(),
			"error": err.Error(),
		}).Warn("Token verification failed")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized, access token invalid or expired",
		})
	}

	claims, ok := userToken.Claims.(jwt.MapClaims)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized, access token invalid or expired",
		})
	}

	userID, _ := claims["id"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	issuedAt, _ := claims["iat"].(float64)

	if userID == "" || email == "" {
		m.log.WithFields(logrus.Fields{
			"path": ctx.Path(),
		}).Warn("Token claims are missing required fields")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized, access token invalid or expired",
		})
	}

	// Logout stamps a revocation time per user; tokens minted before the
	// stamp are dead even though their signature still verifies.
	revokedAt, revoked, err := m.tokenStore.RevokedAt(contextPkg.FromFiberCtx(ctx), userID)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"path":  ctx.Path(),
			"error": err.Error(),
		}).Error("Failed to check token revocation")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "An unexpected error occurred",
		})
	}
	if revoked && !time.Unix(int64(issuedAt), 0).After(revokedAt) {
		m.log.WithFields(logrus.Fields{
			"path":    ctx.Path(),
			"user_id": userID,
		}).Warn("Rejected revoked token")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized, access token invalid or expired",
		})
	}

	ctx.Locals("user", entity.UserLoginData{
		ID:    userID,
		Email: email,
		Role:  role,
	})

	return ctx.Next()
}

// NewAdminMiddleware must run after NewTokenMiddleware.
func (m *middleware) NewAdminMiddleware(ctx *fiber.Ctx) error {
	user, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized, access token invalid or expired",
		})
	}

	if user.Role != entity.RoleAdmin {
		m.log.WithFields(logrus.Fields{
			"path":    ctx.Path(),
			"user_id": user.ID,
			"role":    user.Role,
		}).Warn("Admin access denied")
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Admin access required",
		})
	}

	return ctx.Next()
}
