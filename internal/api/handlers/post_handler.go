package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/tarnowskisean-beep/cook-book/internal/queue"
	"github.com/tarnowskisean-beep/cook-book/internal/service"
	"github.com/tarnowskisean-beep/cook-book/internal/transfer"
)

type PostHandler struct {
	s           service.ContentService
	AsynqClient *asynq.Client
}

func NewPostHandler(s service.ContentService, asynqClient *asynq.Client) *PostHandler {
	return &PostHandler{s: s, AsynqClient: asynqClient}
}

func (h *PostHandler) SchedulePost(c *fiber.Ctx) error {
	var req transfer.SchedulePostRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request",
		})
	}

	postIDs, delay, err := h.s.SchedulePost(c.Context(), req.ContentIDs, req.ScheduledTime)
	if err != nil {
		return errorJSON(c, err)
	}

	for _, postID := range postIDs {
		if err := queue.EnqueueDelivery(h.AsynqClient, queue.DeliverPostPayload{PostID: postID}, delay); err != nil {
			slog.Error("Error enqueueing delivery", "post_id", postID, "error", err)
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":  "Post scheduled successfully",
		"post_ids": postIDs,
	})
}

func (h *PostHandler) CancelPost(c *fiber.Ctx) error {
	var req transfer.CancelPostRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse request",
		})
	}

	if err := h.s.CancelPost(c.Context(), req.PostID); err != nil {
		return errorJSON(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Post cancelled",
	})
}
