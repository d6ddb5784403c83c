package serverutils

import "github.com/gofiber/fiber/v2"

// ErrorKind is the machine-readable failure classification returned to
// clients. Validation, auth and rate-limit rejections must stay
// distinguishable from upstream-service failures.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation_error"
	KindAuth       ErrorKind = "auth_error"
	KindRateLimit  ErrorKind = "rate_limit_error"
	KindNotFound   ErrorKind = "not_found"
	KindUpstream   ErrorKind = "upstream_error"
	KindInternal   ErrorKind = "internal_error"
)

type AppError struct {
	Kind    ErrorKind
	Message string
	Status  int
}

func (e *AppError) Error() string {
	return e.Message
}

func NewValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message, Status: fiber.StatusBadRequest}
}

func NewAuthError(message string) *AppError {
	return &AppError{Kind: KindAuth, Message: message, Status: fiber.StatusUnauthorized}
}

func NewRateLimitError(message string) *AppError {
	return &AppError{Kind: KindRateLimit, Message: message, Status: fiber.StatusTooManyRequests}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message, Status: fiber.StatusNotFound}
}

// NewUpstreamError marks a fatal upstream failure (the answer-generation
// call). Degradable upstream failures never become errors at all.
func NewUpstreamError(message string) *AppError {
	return &AppError{Kind: KindUpstream, Message: message, Status: fiber.StatusBadGateway}
}
