package config

import (
	"bytes"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func TestFiberErrorHandlerMasksInternalErrors(t *testing.T) {
	var logged bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&logged)

	app := NewFiber(logger)
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("pq: connection refused")
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/boom", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	if strings.Contains(string(body), "connection refused") {
		t.Fatalf("internal error leaked to the client: %s", body)
	}
	if !strings.Contains(string(body), "An unexpected error occurred") {
		t.Fatalf("body = %s, want the generic message", body)
	}
	if !strings.Contains(logged.String(), "connection refused") {
		t.Fatal("internal error was not logged")
	}
}

func TestFiberErrorHandlerKeepsClientErrorStatus(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := NewFiber(logger)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/no-such-route", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}
