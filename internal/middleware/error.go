package middleware

import (
	"errors"
	"strings"

	"lingo-byte/internal/domain"
	"lingo-byte/internal/dto"
	"lingo-byte/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// statusByCode maps domain error codes to HTTP statuses. Codes not listed
// here surface as 500.
var statusByCode = map[domain.ErrorCode]int{
	domain.ErrInvalidInput:         fiber.StatusBadRequest,
	domain.ErrInvalidUsername:      fiber.StatusBadRequest,
	domain.ErrWeakPassword:         fiber.StatusBadRequest,
	domain.ErrInvalidQuizStructure: fiber.StatusBadRequest,
	domain.ErrUnauthenticated:      fiber.StatusUnauthorized,
	domain.ErrInvalidCredentials:   fiber.StatusUnauthorized,
	domain.ErrForbidden:            fiber.StatusForbidden,
	domain.ErrNotFound:             fiber.StatusNotFound,
	domain.ErrConflict:             fiber.StatusConflict,
	domain.ErrUsernameTaken:        fiber.StatusConflict,
	domain.ErrStoreUnavailable:     fiber.StatusServiceUnavailable,
	domain.ErrAIUnavailable:        fiber.StatusServiceUnavailable,
}

// ErrorHandler is the app-level fiber error handler. Every error leaves the
// server as the uniform envelope; internal details are logged, not leaked.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var de *domain.DomainError
	if errors.As(err, &de) {
		status, ok := statusByCode[de.Code]
		if !ok {
			status = fiber.StatusInternalServerError
		}
		if status >= 500 {
			logger.Get().Error("request failed",
				zap.String("path", c.Path()),
				zap.String("code", string(de.Code)),
				zap.Error(err))
		}
		return c.Status(status).JSON(dto.Fail(strings.ToLower(string(de.Code)), de.Message))
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(dto.Fail("http_error", fe.Message))
	}

	logger.Get().Error("unhandled error",
		zap.String("path", c.Path()),
		zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).
		JSON(dto.Fail("internal_error", "An unexpected error occurred"))
}
