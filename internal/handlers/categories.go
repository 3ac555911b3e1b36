package handlers

import (
	"net/http"

	"photomarket/internal/models"
	"photomarket/internal/services"

	"github.com/gofiber/fiber/v2"
)

func CreateCategoryHandler(categories *services.CategoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in models.CategoryInput
		if err := c.BodyParser(&in); err != nil {
			return badRequest(c, "invalid request")
		}
		cat, err := categories.Create(c.UserContext(), currentUserID(c), in)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(http.StatusCreated).JSON(cat)
	}
}

func UpdateCategoryHandler(categories *services.CategoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "id")
		if !ok {
			return badRequest(c, "invalid category id")
		}
		var in models.CategoryInput
		if err := c.BodyParser(&in); err != nil {
			return badRequest(c, "invalid request")
		}
		cat, err := categories.Update(c.UserContext(), currentUserID(c), id, in)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(cat)
	}
}

func DeleteCategoryHandler(categories *services.CategoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "id")
		if !ok {
			return badRequest(c, "invalid category id")
		}
		if err := categories.Delete(c.UserContext(), currentUserID(c), id); err != nil {
			return respondError(c, err)
		}
		return c.SendStatus(http.StatusNoContent)
	}
}
