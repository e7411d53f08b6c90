package middleware

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"BlogNest/internal/entity"
	jwtPkg "BlogNest/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type stubTokenStore struct {
	revokedAt time.Time
	revoked   bool
}

func (s *stubTokenStore) RevokeAll(ctx context.Context, userID string, at time.Time) error {
	s.revokedAt = at
	s.revoked = true
	return nil
}

func (s *stubTokenStore) RevokedAt(ctx context.Context, userID string) (time.Time, bool, error) {
	return s.revokedAt, s.revoked, nil
}

func newTestMiddleware(store *stubTokenStore) Middleware {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return New(logger, store)
}

func TestAdminMiddleware(t *testing.T) {
	m := newTestMiddleware(&stubTokenStore{})

	newApp := func(role string) *fiber.App {
		app := fiber.New()
		app.Use(func(c *fiber.Ctx) error {
			c.Locals("user", entity.UserLoginData{ID: "u1", Email: "a@b.c", Role: role})
			return c.Next()
		})
		app.Post("/lock", m.NewAdminMiddleware, func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		})
		return app
	}

	resp, err := newApp(entity.RoleUser).Test(httptest.NewRequest(fiber.MethodPost, "/lock", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("non-admin status = %d, want 403", resp.StatusCode)
	}

	resp, err = newApp(entity.RoleAdmin).Test(httptest.NewRequest(fiber.MethodPost, "/lock", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("admin status = %d, want 200", resp.StatusCode)
	}
}

func TestTokenMiddlewareRevocation(t *testing.T) {
	t.Setenv(jwtPkg.AccessTokenSecretEnv, "test-secret")

	store := &stubTokenStore{}
	m := newTestMiddleware(store)

	app := fiber.New()
	app.Get("/me", m.NewTokenMiddleware, func(c *fiber.Ctx) error {
		user, err := jwtPkg.GetUserLoginData(c)
		if err != nil {
			return err
		}
		return c.SendString(user.ID)
	})

	signed, _, err := jwtPkg.Sign(entity.User{ID: "u1", Email: "a@b.c", Role: entity.RoleUser}, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	send := func() int {
		req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request: %v", err)
		}
		return resp.StatusCode
	}

	if status := send(); status != fiber.StatusOK {
		t.Fatalf("fresh token status = %d, want 200", status)
	}

	// A logout after the token was minted kills it.
	store.revoked = true
	store.revokedAt = time.Now().Add(time.Minute)
	if status := send(); status != fiber.StatusUnauthorized {
		t.Fatalf("revoked token status = %d, want 401", status)
	}

	// A revocation older than the token does not.
	store.revokedAt = time.Now().Add(-time.Minute)
	if status := send(); status != fiber.StatusOK {
		t.Fatalf("token newer than revocation status = %d, want 200", status)
	}
}

func TestTokenMiddlewareRejectsMissingToken(t *testing.T) {
	t.Setenv(jwtPkg.AccessTokenSecretEnv, "test-secret")

	m := newTestMiddleware(&stubTokenStore{})

	app := fiber.New()
	app.Get("/me", m.NewTokenMiddleware, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/me", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestRateLimiterBuckets(t *testing.T) {
	limiter := newRateLimiter(1, 2)

	first := limiter.GetLimiterFrom("10.0.0.1")
	if limiter.GetLimiterFrom("10.0.0.1") != first {
		t.Fatal("same IP got a new bucket")
	}
	if limiter.GetLimiterFrom("10.0.0.2") == first {
		t.Fatal("different IPs share a bucket")
	}

	if !first.Allow() || !first.Allow() {
		t.Fatal("burst capacity rejected requests")
	}
	if first.Allow() {
		t.Fatal("request beyond burst was allowed")
	}
	if !limiter.GetLimiterFrom("10.0.0.2").Allow() {
		t.Fatal("second IP was throttled by the first IP's bucket")
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddleware(&stubTokenStore{})

	app := fiber.New()
	app.Use(m.NewRequestIDMiddleware())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(m.GetRequestID(c))
	})

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set(RequestIDKey, "incoming-id")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "incoming-id" {
		t.Fatalf("request id = %q, want incoming-id", body)
	}
	if got := resp.Header.Get(RequestIDKey); got != "incoming-id" {
		t.Fatalf("response header = %q, want incoming-id", got)
	}

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.Header.Get(RequestIDKey) == "" {
		t.Fatal("no request id generated when none supplied")
	}
}
