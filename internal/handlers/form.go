package handlers

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/skamga/accounts-api/internal/services"
)

const maxImageBytes = 3 << 20

// formImage reads the optional multipart "image" field. A missing field (or a
// non-multipart body) is not an error; an oversized file is.
func formImage(c *fiber.Ctx) (*services.Upload, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return nil, nil
	}

	if fh.Size > maxImageBytes {
		return nil, errors.New("image must not exceed 3MB")
	}

	f, err := fh.Open()
	if err != nil {
		return nil, errors.New("failed to read uploaded image")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.New("failed to read uploaded image")
	}

	return &services.Upload{Data: data, Name: fh.Filename}, nil
}
