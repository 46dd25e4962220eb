package category

import (
	"strings"

	"pos-backend/internal/config"
	"pos-backend/internal/database"
	"pos-backend/internal/models"
	"pos-backend/internal/upload"

	"github.com/gofiber/fiber/v2"
)

type CreateRequest struct {
	Name  string `json:"name" form:"name"`
	Image string `json:"image" form:"image"`
}

type UpdateRequest struct {
	Name  *string `json:"name"`
	Image *string `json:"image"`
}

// POST /api/category
// Accepts JSON or multipart form. A multipart "image" file takes precedence
// over the image field, which may hold a URL or an emoji literal.
func CreateHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body!")
		}

		if file, err := c.FormFile("image"); err == nil && file != nil {
			path, err := upload.SaveImage(c, file, cfg.UploadDir)
			if err != nil {
				return err
			}
			body.Image = path
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" || body.Image == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Please provide all required fields (name, image)!")
		}

		var existing models.Category
		if err := database.DB.Where("name = ?", body.Name).First(&existing).Error; err == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Category already exists!")
		}

		cat := models.Category{Name: body.Name, Image: body.Image}
		if err := database.DB.Create(&cat).Error; err != nil {
			// unique index backstop for the lookup/insert race
			return fiber.NewError(fiber.StatusBadRequest, "Category already exists!")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": true,
			"message": "Category added!",
			"data":    cat,
		})
	}
}

// GET /api/category
func ListHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var categories []models.Category
		if err := database.DB.Find(&categories).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list categories")
		}
		return c.JSON(fiber.Map{"success": true, "data": categories})
	}
}

// PUT /api/category/:id
func UpdateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var cat models.Category
		if err := database.DB.First(&cat, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Category not found!")
		}

		var body UpdateRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body!")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Name cannot be empty!")
			}
			cat.Name = name
		}
		if body.Image != nil {
			cat.Image = *body.Image
		}

		if err := database.DB.Save(&cat).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Category already exists!")
		}

		return c.JSON(fiber.Map{"success": true, "message": "Category updated!", "data": cat})
	}
}

// DELETE /api/category/:id
func DeleteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var cat models.Category
		if err := database.DB.First(&cat, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Category not found!")
		}
		if err := database.DB.Delete(&cat).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete category")
		}

		return c.JSON(fiber.Map{"success": true, "message": "Category deleted!"})
	}
}
