package handler

import (
	inviteService "github.com/crypt0g30rgy/anony/internal/service/invite"
	"github.com/gofiber/fiber/v2"
)

type InviteHandler struct {
	inviteService *inviteService.InviteService
}

func NewInviteHandler(is *inviteService.InviteService) *InviteHandler {
	return &InviteHandler{inviteService: is}
}

type sendInviteRequest struct {
	Emails []string `json:"emails" validate:"required,min=1,dive,email"`
}

func (h *InviteHandler) SendInvite(c *fiber.Ctx) error {
	var req sendInviteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "No 'emails' key found in the JSON payload."})
	}
	if req.Emails == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "No 'emails' key found in the JSON payload."})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid or empty email array."})
	}

	success, errs := h.inviteService.SendInvites(c.Context(), req.Emails)

	return c.JSON(fiber.Map{"success": success, "error": errs})
}
