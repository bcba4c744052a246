// handlers/respond.go - Shared error to HTTP status mapping
package handlers

import (
	"errors"

	"crickarena/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// respondError translates service errors into HTTP responses. Handlers never
// pick status codes themselves; the error category decides.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrValidation):
		status = fiber.StatusBadRequest
	case errors.Is(err, models.ErrUnauthorized):
		status = fiber.StatusForbidden
	case errors.Is(err, models.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, models.ErrStateConflict), errors.Is(err, models.ErrCapacity):
		status = fiber.StatusConflict
	}

	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		msg = "Internal server error"
	}

	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   msg,
	})
}
