package handlers

import (
	"net/http"

	"photomarket/internal/models"
	"photomarket/internal/services"

	"github.com/gofiber/fiber/v2"
)

// GetProfileHandler returns the authenticated photographer's profile with categories and portfolio
func GetProfileHandler(profiles *services.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := profiles.GetMyProfile(c.UserContext(), currentUserID(c))
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(p)
	}
}

// UpdateProfileHandler applies a partial update; omitted fields stay as they are
func UpdateProfileHandler(profiles *services.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.ProfileUpdate
		if err := c.BodyParser(&body); err != nil {
			return badRequest(c, "invalid request")
		}
		updated, err := profiles.UpdateProfile(c.UserContext(), currentUserID(c), body)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(updated)
	}
}

// UploadPhotoHandler replaces the profile image (multipart field "photo")
func UploadPhotoHandler(profiles *services.ProfileService, maxBytes int64) fiber.Handler {
	return func(c *fiber.Ctx) error {
		up, err := readUpload(c, "photo", maxBytes)
		if err != nil {
			return respondError(c, err)
		}
		url, err := profiles.UploadProfileImage(c.UserContext(), currentUserID(c), up)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(http.StatusCreated).JSON(fiber.Map{"profile_image_url": url})
	}
}
