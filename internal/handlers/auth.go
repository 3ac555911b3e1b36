package handlers

import (
	"net/http"

	"photomarket/internal/models"
	"photomarket/internal/services"

	"github.com/gofiber/fiber/v2"
)

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func RegisterHandler(users *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.RegisterRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request")
		}
		user, err := users.Register(c.UserContext(), req)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(http.StatusCreated).JSON(user)
	}
}

func LoginHandler(users *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request")
		}
		res, err := users.Login(c.UserContext(), req)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}

func RefreshHandler(users *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body refreshRequest
		if err := c.BodyParser(&body); err != nil {
			return badRequest(c, "Invalid request")
		}
		if body.RefreshToken == "" {
			body.RefreshToken = c.Get(refreshHeader)
		}
		if body.RefreshToken == "" {
			return badRequest(c, "refresh_token required")
		}
		res, err := users.Refresh(c.UserContext(), body.RefreshToken)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(res)
	}
}

func LogoutHandler(users *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body refreshRequest
		_ = c.BodyParser(&body)
		if body.RefreshToken == "" {
			body.RefreshToken = c.Get(refreshHeader)
		}
		if err := users.Logout(c.UserContext(), body.RefreshToken); err != nil {
			return respondError(c, err)
		}
		return c.SendStatus(http.StatusNoContent)
	}
}

// SessionHandler returns the caller's resolved identity.
func SessionHandler(identity *services.IdentityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := identity.ResolveSession(c.UserContext(), currentUserID(c))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(sess)
	}
}
