package handlers

import (
	"net/http"

	"photomarket/internal/models"
	"photomarket/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UploadPortfolioHandler expects multipart field "image" plus optional "title" and "description".
func UploadPortfolioHandler(portfolio *services.PortfolioService, maxBytes int64) fiber.Handler {
	return func(c *fiber.Ctx) error {
		up, err := readUpload(c, "image", maxBytes)
		if err != nil {
			return respondError(c, err)
		}
		img, err := portfolio.Upload(c.UserContext(), currentUserID(c), up, c.FormValue("title"), c.FormValue("description"))
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(http.StatusCreated).JSON(img)
	}
}

func UpdatePortfolioHandler(portfolio *services.PortfolioService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "id")
		if !ok {
			return badRequest(c, "invalid image id")
		}
		var body models.PortfolioUpdate
		if err := c.BodyParser(&body); err != nil {
			return badRequest(c, "invalid request")
		}
		img, err := portfolio.Update(c.UserContext(), currentUserID(c), id, body)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(img)
	}
}

func DeletePortfolioHandler(portfolio *services.PortfolioService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "id")
		if !ok {
			return badRequest(c, "invalid image id")
		}
		if err := portfolio.Delete(c.UserContext(), currentUserID(c), id); err != nil {
			return respondError(c, err)
		}
		return c.SendStatus(http.StatusNoContent)
	}
}
