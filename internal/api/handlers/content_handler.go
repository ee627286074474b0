package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/tarnowskisean-beep/cook-book/internal/service"
	"github.com/tarnowskisean-beep/cook-book/internal/transfer"
)

type ContentHandler struct {
	s service.ContentService
}

func NewContentHandler(s service.ContentService) *ContentHandler {
	return &ContentHandler{s: s}
}

func (h *ContentHandler) SaveContent(c *fiber.Ctx) error {
	var req transfer.SaveContentRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request",
		})
	}

	contents, err := h.s.SaveContent(c.Context(), req.ItemID, req.Type, req.URL, req.Platforms, req.Script)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": contents,
	})
}

func (h *ContentHandler) ListContents(c *fiber.Ctx) error {
	itemID := c.QueryInt("item_id", 0)
	if itemID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "item_id is required",
		})
	}

	contents, err := h.s.ListByItem(c.Context(), int64(itemID))
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(contents)
}

func (h *ContentHandler) UpdateScript(c *fiber.Ctx) error {
	var req transfer.UpdateScriptRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request",
		})
	}

	if err := h.s.UpdateScript(c.Context(), req.ContentID, req.Script); err != nil {
		return errorJSON(c, err)
	}

	return c.SendStatus(fiber.StatusOK)
}

func (h *ContentHandler) UpdateMedia(c *fiber.Ctx) error {
	var req transfer.UpdateMediaRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request",
		})
	}

	if err := h.s.UpdateMedia(c.Context(), req.ContentID, req.URL); err != nil {
		return errorJSON(c, err)
	}

	return c.SendStatus(fiber.StatusOK)
}
