package handlers

import (
	"photomarket/internal/models"
	"photomarket/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ListPhotographersHandler serves GET /api/photographers?category=&min_rating=&location=&sort=&limit=&offset=
func ListPhotographersHandler(listing *services.ListingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var f models.PhotographerFilter
		if err := c.QueryParser(&f); err != nil {
			return badRequest(c, "invalid query")
		}
		rows, err := listing.ListPhotographers(c.UserContext(), f)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(rows)
	}
}

func GetPhotographerHandler(listing *services.ListingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "id")
		if !ok {
			return badRequest(c, "invalid photographer id")
		}
		detail, err := listing.GetPhotographer(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(detail)
	}
}

func ListPhotographerCategoriesHandler(listing *services.ListingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "id")
		if !ok {
			return badRequest(c, "invalid photographer id")
		}
		cats, err := listing.ListCategories(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(cats)
	}
}

func ListCategoryNamesHandler(listing *services.ListingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		names, err := listing.ListCategoryNames(c.UserContext())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(names)
	}
}

// ListPortfolioHandler serves GET /api/portfolio?photographer_id=&category=&order=&limit=&offset=
func ListPortfolioHandler(listing *services.ListingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var f models.PortfolioFilter
		if err := c.QueryParser(&f); err != nil {
			return badRequest(c, "invalid query")
		}
		if raw := c.Query("photographer_id"); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				return badRequest(c, "invalid photographer_id")
			}
			f.PhotographerID = &id
		}
		rows, err := listing.ListPortfolio(c.UserContext(), f)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(rows)
	}
}
