package handler

import (
	"time"

	"github.com/crypt0g30rgy/anony/internal/model"
	"github.com/crypt0g30rgy/anony/internal/service/token"
	userService "github.com/crypt0g30rgy/anony/internal/service/user"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/golang-jwt/jwt/v5"
)

var validate = validator.New()

type UserHandler struct {
	userService *userService.UserService
}

func NewUserHandler(us *userService.UserService) *UserHandler {
	return &UserHandler{userService: us}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid JSON payload"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid email or password field"})
	}

	accessToken, refreshToken, err := h.userService.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	setRefreshCookie(c, refreshToken)

	return c.JSON(model.AccessToken{AccessToken: accessToken})
}

func (h *UserHandler) Logout(c *fiber.Ctx) error {
	refreshToken := c.Cookies("refreshToken")
	if refreshToken == "" {
		return fiber.NewError(fiber.StatusUnauthorized)
	}

	err := h.userService.Logout(c.Context(), refreshToken)
	if err != nil {
		return err
	}
	c.ClearCookie()

	return nil
}

func (h *UserHandler) Refresh(c *fiber.Ctx) error {
	refreshTokenCookie := c.Cookies("refreshToken")
	if refreshTokenCookie == "" {
		return fiber.NewError(fiber.StatusUnauthorized)
	}
	accessToken, refreshToken, err := h.userService.RefreshToken(c.Context(), refreshTokenCookie)
	if err != nil {
		return err
	}

	setRefreshCookie(c, refreshToken)

	return c.JSON(model.AccessToken{AccessToken: accessToken})
}

func (h *UserHandler) GetCurrentUser(c *fiber.Ctx) error {
	userId := parseUserIdFromRequest(c)
	user, err := h.userService.GetCurrentUser(c.Context(), userId)
	if err != nil {
		log.Error("Error while getting user info:", err)
		return fiber.NewError(fiber.StatusBadRequest)
	}
	return c.JSON(user)
}

func setRefreshCookie(c *fiber.Ctx, refreshToken string) {
	cookie := new(fiber.Cookie)
	cookie.Name = "refreshToken"
	cookie.Value = refreshToken
	cookie.Expires = time.Now().Add(token.RefreshTokenExpireHour * time.Hour)
	cookie.HTTPOnly = true
	c.Cookie(cookie)
}

func parseUserIdFromRequest(c *fiber.Ctx) string {
	user := c.Locals("user").(*jwt.Token)
	claims := user.Claims.(jwt.MapClaims)
	return claims["id"].(string)
}
