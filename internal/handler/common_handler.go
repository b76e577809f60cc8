package handler

import (
	"github.com/crypt0g30rgy/anony/internal/web"
	"github.com/gofiber/fiber/v2"
)

type CommonHandler struct{}

func NewCommonHandler() *CommonHandler {
	return &CommonHandler{}
}

func (h *CommonHandler) Index(c *fiber.Ctx) error {
	return c.Type("html").Send(web.Page("index.html"))
}

func (h *CommonHandler) Hello(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Hello, World!"})
}

func (h *CommonHandler) AdminPage(c *fiber.Ctx) error {
	return c.Type("html").Send(web.Page("admin.html"))
}

func (h *CommonHandler) FeedbackForm(c *fiber.Ctx) error {
	if c.Query("uuid") == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "UUID not found in the query parameters."})
	}
	return c.Type("html").Send(web.Page("feedback_form.html"))
}
