package server

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	goerrors "github.com/goliatone/go-errors"
	"go.uber.org/zap"
)

// Messages returned to clients.
const (
	MessageInternalServerError = "An unexpected error occurred. Please try again later."
	MessageTooManyRequests     = "Too many requests. Please try again later."
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error      string `json:"error"`
	StatusCode int    `json:"statusCode"`
}

// ErrorHandler writes err as an ErrorBody. Any 5xx is reported with the
// generic message; the cause is only logged.
func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("http")

	return func(c fiber.Ctx, err error) error {
		status, msg := normalizeError(err)

		if status >= fiber.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("request_id", requestID(c)),
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
			status = fiber.StatusInternalServerError
			msg = MessageInternalServerError
		}

		return c.Status(status).JSON(ErrorBody{Error: msg, StatusCode: status})
	}
}

func normalizeError(err error) (int, string) {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		if fiberErr.Code <= 0 {
			return fiber.StatusInternalServerError, MessageInternalServerError
		}
		return fiberErr.Code, fiberErr.Message
	}

	var typed *goerrors.Error
	if goerrors.As(err, &typed) {
		switch typed.Category {
		case goerrors.CategoryBadInput, goerrors.CategoryValidation:
			return fiber.StatusBadRequest, typed.Message
		case goerrors.CategoryNotFound:
			return fiber.StatusNotFound, typed.Message
		case goerrors.CategoryRateLimit:
			return fiber.StatusTooManyRequests, MessageTooManyRequests
		}
	}

	return fiber.StatusInternalServerError, MessageInternalServerError
}
