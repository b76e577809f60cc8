package router

import (
	"os"

	"github.com/crypt0g30rgy/anony/api"
	"github.com/crypt0g30rgy/anony/internal/handler"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Common   *handler.CommonHandler
	User     *handler.UserHandler
	Invite   *handler.InviteHandler
	Feedback *handler.FeedbackHandler
}

// Register wires every route. Order matters: routes registered before the
// jwt middleware stay public, everything after it requires an access token.
func Register(app *fiber.App, h Handlers) {
	app.Use(swagger.New(swagger.Config{
		BasePath:    "/",
		FileContent: api.OpenAPI,
		Path:        "apidocs",
		Title:       "Anony API docs",
	}))

	app.Get("/", h.Common.Index)
	app.Get("/admin", h.Common.AdminPage)
	app.Get("/feedback_form", h.Common.FeedbackForm)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	api.Get("/hello", h.Common.Hello)
	api.Post("/login", h.User.Login)
	api.Post("/logout", h.User.Logout)
	api.Get("/refresh", h.User.Refresh)

	api.Post("/feedback", h.Feedback.Submit)
	api.Post("/submit_feedback", h.Feedback.Submit)

	app.Use(jwtware.New(jwtware.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": "Invalid or expired JWT"})
		},
		SigningKey: jwtware.SigningKey{Key: []byte(os.Getenv("JWT_ACCESS_SECRET"))},
	}))

	api.Get("/user", h.User.GetCurrentUser)

	api.Post("/send_invite", h.Invite.SendInvite)

	api.Get("/feedback", h.Feedback.List)
	api.Get("/all_feedbacks", h.Feedback.List)
}
