package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/hotel-booking-service/internal/api/dto"
)

const genericErrorMessage = "An error occurred while processing your request."

func ok(c *fiber.Ctx, data any, message string) error {
	return c.JSON(dto.Success(data, message))
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(dto.Failure(message, http.StatusBadRequest, nil))
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusNotFound).JSON(dto.Failure(message, http.StatusNotFound, nil))
}

// internalError surfaces a generic message to the caller and attaches the
// fault text as diagnostic detail only.
func internalError(c *fiber.Ctx, message string, err error) error {
	return c.Status(http.StatusInternalServerError).JSON(dto.Failure(message, http.StatusInternalServerError, err.Error()))
}
