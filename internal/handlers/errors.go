package handlers

import (
	"errors"
	"log"
	"net/http"

	"photomarket/internal/services"

	"github.com/gofiber/fiber/v2"
)

var statusByError = []struct {
	err    error
	status int
}{
	{services.ErrUserExists, http.StatusConflict},
	{services.ErrInvalidCredentials, http.StatusUnauthorized},
	{services.ErrInvalidToken, http.StatusUnauthorized},
	{services.ErrNotFound, http.StatusNotFound},
	{services.ErrForbidden, http.StatusForbidden},
	{services.ErrNotPhotographer, http.StatusForbidden},
	{services.ErrSelfBooking, http.StatusForbidden},
	{services.ErrInUse, http.StatusConflict},
	{services.ErrInvalidStatus, http.StatusBadRequest},
	{services.ErrInvalidTransition, http.StatusConflict},
	{services.ErrConflict, http.StatusConflict},
	{services.ErrCategoryMismatch, http.StatusBadRequest},
	{services.ErrNoFile, http.StatusBadRequest},
	{services.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
	{services.ErrUnsupportedMedia, http.StatusUnsupportedMediaType},
}

// respondError writes err as {"error": msg} with a status derived from the service sentinel.
func respondError(c *fiber.Ctx, err error) error {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": verr.Error(), "field": verr.Field})
	}
	for _, m := range statusByError {
		if errors.Is(err, m.err) {
			return c.Status(m.status).JSON(fiber.Map{"error": m.err.Error()})
		}
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}

	log.Printf("Error [%s %s]: %v", c.Method(), c.Path(), err)
	return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}

// ErrorHandler is installed as fiber's ErrorHandler so middleware errors share the body shape.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return respondError(c, err)
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": msg})
}
