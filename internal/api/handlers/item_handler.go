package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/tarnowskisean-beep/cook-book/internal/service"
	"github.com/tarnowskisean-beep/cook-book/internal/transfer"
)

type ItemHandler struct {
	s service.ItemService
}

func NewItemHandler(s service.ItemService) *ItemHandler {
	return &ItemHandler{s: s}
}

func (h *ItemHandler) CreateItem(c *fiber.Ctx) error {
	var req transfer.ItemCreation
	if err := c.BodyParser(&req); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request",
		})
	}

	id, err := h.s.Create(c.Context(), &req)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id": id,
	})
}

func (h *ItemHandler) GetItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid item id",
		})
	}

	item, err := h.s.Get(c.Context(), int64(id))
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(item)
}

func (h *ItemHandler) ListItems(c *fiber.Ctx) error {
	projectID := c.QueryInt("project_id", 0)

	items, err := h.s.List(c.Context(), int64(projectID))
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(items)
}

func (h *ItemHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid item id",
		})
	}

	var req transfer.ItemCreation
	if err := c.BodyParser(&req); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request",
		})
	}

	if err := h.s.Update(c.Context(), int64(id), &req); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

func (h *ItemHandler) DeleteItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid item id",
		})
	}

	if err := h.s.Remove(c.Context(), int64(id)); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}
