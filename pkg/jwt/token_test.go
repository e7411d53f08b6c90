package jwtPkg

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"BlogNest/internal/entity"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func TestSignClaims(t *testing.T) {
	t.Setenv(AccessTokenSecretEnv, "test-secret")

	user := entity.User{
		ID:    "01TESTUSER",
		Email: "alice@example.com",
		Role:  entity.RoleAdmin,
	}

	before := time.Now().Unix()
	signed, expiredAt, err := Sign(user, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("claims are not a map")
	}
	if claims["id"] != "01TESTUSER" || claims["email"] != "alice@example.com" || claims["role"] != entity.RoleAdmin {
		t.Fatalf("unexpected identity claims: %v", claims)
	}

	iat, _ := claims["iat"].(float64)
	if int64(iat) < before {
		t.Fatalf("iat %d predates signing", int64(iat))
	}
	if exp, _ := claims["exp"].(float64); int64(exp) != expiredAt {
		t.Fatalf("exp claim %d != returned expiry %d", int64(exp), expiredAt)
	}
}

func TestSignWithoutSecret(t *testing.T) {
	t.Setenv(AccessTokenSecretEnv, "")

	if _, _, err := Sign(entity.User{ID: "u"}, time.Hour); err == nil {
		t.Fatal("expected error when secret is unset")
	}
}

func TestVerifyTokenHeader(t *testing.T) {
	t.Setenv(AccessTokenSecretEnv, "test-secret")

	signed, _, err := Sign(entity.User{ID: "01TESTUSER", Email: "alice@example.com", Role: entity.RoleUser}, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	app := fiber.New()
	app.Get("/protected", func(c *fiber.Ctx) error {
		token, err := VerifyTokenHeader(c)
		if err != nil {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		claims := token.Claims.(jwt.MapClaims)
		return c.SendString(claims["id"].(string))
	})

	cases := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"missing header", "", fiber.StatusUnauthorized},
		{"not bearer", "Basic abc", fiber.StatusUnauthorized},
		{"garbage token", "Bearer not.a.jwt", fiber.StatusUnauthorized},
		{"valid token", "Bearer " + signed, fiber.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request: %v", err)
			}
			if resp.StatusCode != tc.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tc.wantStatus)
			}
			if tc.wantStatus == fiber.StatusOK {
				body, _ := io.ReadAll(resp.Body)
				if string(body) != "01TESTUSER" {
					t.Fatalf("body = %q, want user id", body)
				}
			}
		})
	}
}

func TestVerifyTokenHeaderRejectsWrongSecret(t *testing.T) {
	t.Setenv(AccessTokenSecretEnv, "first-secret")
	signed, _, err := Sign(entity.User{ID: "u", Email: "a@b.c"}, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	t.Setenv(AccessTokenSecretEnv, "second-secret")

	app := fiber.New()
	app.Get("/protected", func(c *fiber.Ctx) error {
		if _, err := VerifyTokenHeader(c); err != nil {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}
