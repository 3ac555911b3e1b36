package handlers

import (
	"strings"

	"photomarket/internal/metrics"
	"photomarket/internal/models"
	"photomarket/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	localUserID = "user_id"
	localEmail  = "email"
	localRole   = "role"

	refreshHeader = "Refresh-Token"
)

func bearerToken(c *fiber.Ctx) string {
	token := c.Query("access_token")
	if token == "" {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
			token = authHeader[7:]
		}
	}
	return token
}

// AuthMiddleware verifies the access token. When it is missing or expired and a
// Refresh-Token header names a live session, the request goes through and a new
// access token is returned in the Authorization response header.
func AuthMiddleware(users *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := bearerToken(c); token != "" {
			claims, err := users.ValidateAccessToken(token)
			if err == nil {
				userID, _ := uuid.Parse(claims.UserID)
				setIdentity(c, userID, claims.Email, claims.Role)
				return c.Next()
			}
			metrics.IncAuthFailure("invalid_access_token")
		}

		refresh := c.Get(refreshHeader)
		if refresh == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Missing or invalid token")
		}

		rec, err := users.Session(c.UserContext(), refresh)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid session")
		}
		access, err := users.GenerateAccessToken(rec.UserID, rec.Email, rec.Role)
		if err != nil {
			return err
		}
		c.Set(fiber.HeaderAuthorization, "Bearer "+access)
		setIdentity(c, rec.UserID, rec.Email, rec.Role)
		return c.Next()
	}
}

func setIdentity(c *fiber.Ctx, userID uuid.UUID, email string, role models.Role) {
	c.Locals(localUserID, userID)
	c.Locals(localEmail, email)
	c.Locals(localRole, role)
}

// RequireRole rejects callers whose token does not carry role.
func RequireRole(role models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if r, _ := c.Locals(localRole).(models.Role); r != role {
			return fiber.NewError(fiber.StatusForbidden, "requires role "+string(role))
		}
		return c.Next()
	}
}

func currentUserID(c *fiber.Ctx) uuid.UUID {
	id, _ := c.Locals(localUserID).(uuid.UUID)
	return id
}
