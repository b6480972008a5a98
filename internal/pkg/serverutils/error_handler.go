package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorHandlerMiddleware converts errors escaping handlers into the shared
// JSON envelope. Fiber errors keep their status; anything else is a 500
// with a generic message so internals never leak.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(errorResponse{
				Success: false,
				Message: fiberErr.Message,
			})
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(errorResponse{
			Success: false,
			Message: "internal server error",
		})
	}
}
