package handlers

import (
	"net/http"

	"photomarket/internal/models"
	"photomarket/internal/services"

	"github.com/gofiber/fiber/v2"
)

func CreateBookingHandler(bookings *services.BookingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateBookingRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid request")
		}
		b, err := bookings.Create(c.UserContext(), currentUserID(c), req)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(http.StatusCreated).JSON(b)
	}
}

// ListBookingsHandler serves GET /api/bookings?status=&as=client
func ListBookingsHandler(bookings *services.BookingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		views, err := bookings.List(c.UserContext(), currentUserID(c), c.Query("status"), c.Query("as") == "client")
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(views)
	}
}

func UpdateBookingStatusHandler(bookings *services.BookingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "id")
		if !ok {
			return badRequest(c, "invalid booking id")
		}
		var req models.UpdateBookingStatusRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid request")
		}
		b, err := bookings.UpdateStatus(c.UserContext(), currentUserID(c), id, req.Status)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(b)
	}
}

func CancelBookingHandler(bookings *services.BookingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "id")
		if !ok {
			return badRequest(c, "invalid booking id")
		}
		b, err := bookings.Cancel(c.UserContext(), currentUserID(c), id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(b)
	}
}
