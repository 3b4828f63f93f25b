package serverutils

import (
	"context"
	"errors"

	"research-agent-be/pkg/agent/session"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware turns handler errors into the JSON envelope.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code, body := MapError(err)
		return ctx.Status(code).JSON(body)
	}
}

// MapError picks the status code and envelope for err.
func MapError(err error) (int, interface{}) {
	var verr *ValidationError
	var ferr *fiber.Error

	switch {
	case errors.As(err, &verr):
		return fiber.StatusBadRequest, ErrorResponseWithData(fiber.StatusBadRequest, "Validation failed", verr.Fields)
	case errors.Is(err, session.ErrSessionNotFound):
		return fiber.StatusNotFound, ErrorResponse(fiber.StatusNotFound, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fiber.StatusRequestTimeout, ErrorResponse(fiber.StatusRequestTimeout, "Request cancelled")
	case errors.As(err, &ferr):
		return ferr.Code, ErrorResponse(ferr.Code, ferr.Message)
	default:
		return fiber.StatusInternalServerError, ErrorResponse(fiber.StatusInternalServerError, "Internal server error")
	}
}
