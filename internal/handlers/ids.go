package handlers

import (
	"net/http"
	"strconv"

	"photomarket/internal/models"
	"photomarket/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ResolveLegacyHandler maps a legacy integer id to its UUID. ?ensure=true creates
// the mapping when the legacy row exists.
func ResolveLegacyHandler(ids *services.IDMapService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		legacyID, err := strconv.ParseInt(c.Params("legacy_id"), 10, 64)
		if err != nil || legacyID <= 0 {
			return badRequest(c, "invalid legacy id")
		}

		var id *uuid.UUID
		if c.QueryBool("ensure") {
			id, err = ids.EnsureUUID(c.UserContext(), legacyID)
		} else {
			id, err = ids.ResolveUUID(c.UserContext(), legacyID)
		}
		if err != nil {
			return respondError(c, err)
		}
		if id == nil {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "no mapping for legacy id"})
		}
		return c.JSON(models.IDMapping{LegacyID: legacyID, UUID: *id})
	}
}

func ResolveUUIDHandler(ids *services.IDMapService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := uuidParam(c, "uuid")
		if !ok {
			return badRequest(c, "invalid uuid")
		}
		legacyID, err := ids.ResolveLegacyID(c.UserContext(), id)
		if err != nil {
			return respondError(c, err)
		}
		if legacyID == nil {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "no mapping for uuid"})
		}
		return c.JSON(models.IDMapping{LegacyID: *legacyID, UUID: id})
	}
}
