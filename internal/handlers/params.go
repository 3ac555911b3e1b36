package handlers

import (
	"io"

	"photomarket/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func uuidParam(c *fiber.Ctx, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params(name))
	return id, err == nil
}

// readUpload pulls a multipart file into memory. A missing or empty field is
// ErrNoFile; nothing is sent to storage in that case.
func readUpload(c *fiber.Ctx, field string, maxBytes int64) (*services.Upload, error) {
	fh, err := c.FormFile(field)
	if err != nil || fh.Size == 0 {
		return nil, services.ErrNoFile
	}
	if maxBytes > 0 && fh.Size > maxBytes {
		return nil, services.ErrFileTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, fh.Size))
	if err != nil {
		return nil, err
	}
	return &services.Upload{Filename: fh.Filename, Data: data}, nil
}
