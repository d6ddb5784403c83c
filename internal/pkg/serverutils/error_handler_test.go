package serverutils

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorEnvelope struct {
	Success   bool   `json:"success"`
	ErrorType string `json:"error_type"`
	Message   string `json:"message"`
}

func newTestApp(handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/test", handler)
	return app
}

func doRequest(t *testing.T, app *fiber.App) (int, errorEnvelope) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope errorEnvelope
	require.NoError(t, json.Unmarshal(body, &envelope))
	return resp.StatusCode, envelope
}

func TestErrorHandlerAppErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantStatus int
		wantKind   string
	}{
		{"validation", NewValidationError("bad input"), fiber.StatusBadRequest, "validation_error"},
		{"auth", NewAuthError("no token"), fiber.StatusUnauthorized, "auth_error"},
		{"rate limit", NewRateLimitError("slow down"), fiber.StatusTooManyRequests, "rate_limit_error"},
		{"not found", NewNotFoundError("missing"), fiber.StatusNotFound, "not_found"},
		{"upstream", NewUpstreamError("model down"), fiber.StatusBadGateway, "upstream_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(func(ctx *fiber.Ctx) error {
				return tt.err
			})

			status, envelope := doRequest(t, app)

			assert.Equal(t, tt.wantStatus, status)
			assert.False(t, envelope.Success)
			assert.Equal(t, tt.wantKind, envelope.ErrorType)
			assert.Equal(t, tt.err.Message, envelope.Message)
		})
	}
}

func TestErrorHandlerValidationErrors(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
	}

	app := newTestApp(func(ctx *fiber.Ctx) error {
		return ValidateRequest(payload{Email: "not-an-email"})
	})

	status, envelope := doRequest(t, app)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "validation_error", envelope.ErrorType)
}

func TestErrorHandlerUnknownErrors(t *testing.T) {
	app := newTestApp(func(ctx *fiber.Ctx) error {
		return fiber.ErrTeapot
	})

	status, envelope := doRequest(t, app)

	assert.Equal(t, fiber.StatusTeapot, status)
	assert.Equal(t, "internal_error", envelope.ErrorType)
}

func TestErrorHandlerPassesSuccessThrough(t *testing.T) {
	app := newTestApp(func(ctx *fiber.Ctx) error {
		return ctx.JSON(SuccessResponse("ok", nil))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
