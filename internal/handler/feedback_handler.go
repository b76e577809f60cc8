package handler

import (
	"errors"
	"fmt"

	feedbackService "github.com/crypt0g30rgy/anony/internal/service/feedback"
	"github.com/gofiber/fiber/v2"
)

type FeedbackHandler struct {
	feedbackService *feedbackService.FeedbackService
}

func NewFeedbackHandler(fs *feedbackService.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: fs}
}

type submitFeedbackRequest struct {
	Uuid     string `json:"uuid" validate:"required,uuid4"`
	Feedback string `json:"feedback" validate:"required"`
}

func (h *FeedbackHandler) Submit(c *fiber.Ctx) error {
	var req submitFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid or missing 'uuid' or 'feedback' in the JSON payload."})
	}
	if req.Uuid == "" || req.Feedback == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid or missing 'uuid' or 'feedback' in the JSON payload."})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid UUID format."})
	}

	err := h.feedbackService.Submit(c.Context(), req.Uuid, req.Feedback)
	switch {
	case errors.Is(err, feedbackService.ErrInviteNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": fmt.Sprintf("UUID '%s' not found.", req.Uuid)})
	case errors.Is(err, feedbackService.ErrAlreadySubmitted):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Feedback already submitted for this UUID."})
	case errors.Is(err, feedbackService.ErrInviteExpired):
		return c.Status(fiber.StatusGone).JSON(fiber.Map{"message": "Invite has expired."})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Feedback submitted successfully!"})
}

func (h *FeedbackHandler) List(c *fiber.Ctx) error {
	feedbacks, err := h.feedbackService.List(c.Context(), c.Query("q"), c.Query("lang"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(fiber.Map{"feedbacks": feedbacks})
}
