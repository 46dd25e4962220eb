package upload

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"pos-backend/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// MaxFileSize caps uploads at 5 MB.
const MaxFileSize = 5 * 1024 * 1024

var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

// SaveImage validates and stores an uploaded image under dir and returns
// the public path ("uploads/<name>"). Stored names are uuid-based so
// concurrent uploads never clash.
func SaveImage(c *fiber.Ctx, file *multipart.FileHeader, dir string) (string, error) {
	if file.Size > MaxFileSize {
		return "", fiber.NewError(fiber.StatusBadRequest, "File too large, limit is 5 MB!")
	}

	contentType := file.Header.Get("Content-Type")
	if !allowedContentTypes[strings.ToLower(contentType)] {
		return "", fiber.NewError(fiber.StatusBadRequest, "Only .jpeg, .jpg and .png format allowed!")
	}

	name := uuid.NewString() + filepath.Ext(file.Filename)
	if err := c.SaveFile(file, filepath.Join(dir, name)); err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Error uploading file")
	}

	return fmt.Sprintf("uploads/%s", name), nil
}

// POST /api/upload/logo
func LogoHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, err := c.FormFile("logo")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "No file uploaded")
		}

		path, err := SaveImage(c, file, cfg.UploadDir)
		if err != nil {
			return err
		}

		return c.JSON(fiber.Map{
			"success":  true,
			"message":  "Logo uploaded successfully",
			"logoPath": path,
			"filename": filepath.Base(path),
		})
	}
}
