package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/tarnowskisean-beep/cook-book/internal/service"
	"github.com/tarnowskisean-beep/cook-book/internal/transfer"
)

type GenerateHandler struct {
	gs service.GenerationService
	rs service.RenderService
}

func NewGenerateHandler(gs service.GenerationService, rs service.RenderService) *GenerateHandler {
	return &GenerateHandler{gs: gs, rs: rs}
}

func (h *GenerateHandler) GenerateScript(c *fiber.Ctx) error {
	var req transfer.GenerateScriptRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request",
		})
	}

	script, err := h.gs.GenerateScript(c.Context(), req.ItemID, req.Platforms)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"script": script,
	})
}

func (h *GenerateHandler) GenerateMediaPrompt(c *fiber.Ctx) error {
	var req transfer.GenerateMediaPromptRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request",
		})
	}

	prompt, err := h.gs.GenerateMediaPrompt(c.Context(), req.ItemID, req.MediaType, req.Platforms)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"prompt":  prompt.Prompt,
		"caption": prompt.Caption,
	})
}

// RenderImage blocks until the image queue settles; the image path is fast
// enough that callers wait inline.
func (h *GenerateHandler) RenderImage(c *fiber.Ctx) error {
	var req transfer.RenderImageRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request",
		})
	}

	url, err := h.rs.GenerateImage(c.Context(), req.Prompt, req.AspectRatio)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"url": url,
	})
}

// SubmitVideo starts an asynchronous render and returns the request id for
// the caller's poll loop. When an item id is supplied the item's persona
// avatar seeds the render.
func (h *GenerateHandler) SubmitVideo(c *fiber.Ctx) error {
	var req transfer.RenderVideoRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request",
		})
	}

	var requestID string
	var err error
	if req.ItemID != 0 {
		requestID, err = h.gs.SubmitItemVideo(c.Context(), req.ItemID, req.Prompt)
	} else {
		requestID, err = h.rs.SubmitVideo(c.Context(), req.Prompt, req.SeedImageURL)
	}
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"request_id": requestID,
	})
}

// RenderStatus is one probe of the poll loop: the client re-invokes it every
// few seconds until a terminal state comes back.
func (h *GenerateHandler) RenderStatus(c *fiber.Ctx) error {
	requestID := c.Query("request_id")
	if requestID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "request_id is required",
		})
	}

	status, err := h.rs.CheckStatus(c.Context(), requestID)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(status)
}
