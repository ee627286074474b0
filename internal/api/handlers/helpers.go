package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tarnowskisean-beep/cook-book/internal/service"
)

// errorStatus maps the service error kinds onto HTTP statuses: missing
// records and unroutable jobs are 404, upstream collaborator failures are
// 502, anything else is 500.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrJobNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrUpstream):
		return fiber.StatusBadGateway
	}
	return fiber.StatusInternalServerError
}

func errorJSON(c *fiber.Ctx, err error) error {
	return c.Status(errorStatus(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}
