package handlers

import (
	"io"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/tarnowskisean-beep/cook-book/internal/service"
	"github.com/tarnowskisean-beep/cook-book/internal/transfer"
)

type PersonaHandler struct {
	s      service.PersonaService
	assets service.AssetService
}

func NewPersonaHandler(s service.PersonaService, assets service.AssetService) *PersonaHandler {
	return &PersonaHandler{s: s, assets: assets}
}

func (h *PersonaHandler) GetPersona(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid persona id",
		})
	}

	persona, err := h.s.Get(c.Context(), int64(id))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(persona)
}

func (h *PersonaHandler) ListPersonas(c *fiber.Ctx) error {
	personas, err := h.s.List(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(personas)
}

// ManagePersona upserts the narrative persona fields. A zero id creates a
// new persona.
func (h *PersonaHandler) ManagePersona(c *fiber.Ctx) error {
	var req struct {
		ID int64 `json:"id"`
		transfer.PersonaUpdate
	}
	if err := c.BodyParser(&req); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request",
		})
	}

	id, err := h.s.Manage(c.Context(), req.ID, &req.PersonaUpdate)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"id": id,
	})
}

func (h *PersonaHandler) UpdateSettings(c *fiber.Ctx) error {
	var req transfer.SettingsUpdate
	if err := c.BodyParser(&req); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request",
		})
	}

	if err := h.s.UpdateSettings(c.Context(), &req); err != nil {
		return errorJSON(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

func (h *PersonaHandler) Optimize(c *fiber.Ctx) error {
	traits, err := h.s.Optimize(c.Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(traits)
}

// UploadAvatar accepts a multipart image and registers it as the persona's
// avatar, which later renders use as a continuity seed.
func (h *PersonaHandler) UploadAvatar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid persona id",
		})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "file is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to read file",
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to read file",
		})
	}

	url, err := h.assets.UploadAvatar(c.Context(), int64(id), data)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"avatar_url": url,
	})
}
