package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tarnowskisean-beep/cook-book/internal/service"
)

type CalendarHandler struct {
	s service.CalendarService
}

func NewCalendarHandler(s service.CalendarService) *CalendarHandler {
	return &CalendarHandler{s: s}
}

// window parses the optional from/to query range, defaulting to the next 30
// days.
func window(c *fiber.Ctx) (time.Time, time.Time) {
	from := time.Now().Truncate(24 * time.Hour)
	to := from.AddDate(0, 0, 30)

	if raw := c.Query("from"); raw != "" {
		if parsed, err := time.Parse("2006-01-02", raw); err == nil {
			from = parsed
		}
	}
	if raw := c.Query("to"); raw != "" {
		if parsed, err := time.Parse("2006-01-02", raw); err == nil {
			to = parsed
		}
	}
	return from, to
}

func (h *CalendarHandler) Calendar(c *fiber.Ctx) error {
	from, to := window(c)
	days, err := h.s.Calendar(c.Context(), from, to)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(days)
}

func (h *CalendarHandler) Queue(c *fiber.Ctx) error {
	from, to := window(c)
	entries, err := h.s.Queue(c.Context(), from, to)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(entries)
}
