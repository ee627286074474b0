package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/tarnowskisean-beep/cook-book/internal/service"
)

type ConnectionHandler struct {
	s service.ConnectionService
}

func NewConnectionHandler(s service.ConnectionService) *ConnectionHandler {
	return &ConnectionHandler{s: s}
}

func (h *ConnectionHandler) ToggleConnection(c *fiber.Ctx) error {
	var req struct {
		Platform string `json:"platform"`
	}
	if err := c.BodyParser(&req); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request",
		})
	}
	if req.Platform == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "platform is required",
		})
	}

	connected, err := h.s.Toggle(c.Context(), req.Platform)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"platform":  req.Platform,
		"connected": connected,
	})
}

func (h *ConnectionHandler) ListConnections(c *fiber.Ctx) error {
	accounts, err := h.s.List(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(accounts)
}
