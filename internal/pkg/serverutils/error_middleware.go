package serverutils

import (
	"errors"

	"doc-agent-be/pkg/letta"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware translates errors bubbling out of controllers into
// the JSON envelope. Backend-reported failures keep their status and raw
// body; everything else is a 500.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		var apiErr *letta.APIError
		if errors.As(err, &apiErr) {
			return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse(apiErr.StatusCode, "agent backend error: "+apiErr.Body))
		}

		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, err.Error()))
	}
}
