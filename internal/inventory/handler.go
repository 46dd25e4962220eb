package inventory

import (
	"strings"
	"time"

	"pos-backend/internal/database"
	"pos-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateRequest struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	CurrentStock float64 `json:"currentStock"`
	MinStock     float64 `json:"minStock"`
	Unit         string  `json:"unit"`
}

type UpdateRequest struct {
	Name         *string  `json:"name"`
	Category     *string  `json:"category"`
	CurrentStock *float64 `json:"currentStock"`
	MinStock     *float64 `json:"minStock"`
	Unit         *string  `json:"unit"`
}

// GET /api/inventory?search=&category=
// Category "All" means no category filter.
func ListHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.InventoryItem{})

		if search := strings.TrimSpace(c.Query("search")); search != "" {
			dbq = dbq.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
		}
		if category := c.Query("category"); category != "" && category != "All" {
			dbq = dbq.Where("category = ?", category)
		}

		var items []models.InventoryItem
		if err := dbq.Order("name asc").Find(&items).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list inventory")
		}

		return c.JSON(fiber.Map{"success": true, "data": items})
	}
}

// POST /api/inventory
func CreateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body!")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.Category = strings.TrimSpace(body.Category)
		body.Unit = strings.TrimSpace(body.Unit)
		if body.Name == "" || body.Category == "" || body.Unit == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Please provide name, category, and unit!")
		}

		item := models.InventoryItem{
			Name:         body.Name,
			Category:     body.Category,
			CurrentStock: body.CurrentStock,
			MinStock:     body.MinStock,
			Unit:         body.Unit,
			LastUpdated:  time.Now(),
		}
		if err := database.DB.Create(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not add inventory item")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": true,
			"message": "Inventory item added!",
			"data":    item,
		})
	}
}

// PUT /api/inventory/:id
// LastUpdated is bumped on every update regardless of which fields changed.
func UpdateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var item models.InventoryItem
		if err := database.DB.First(&item, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Item not found!")
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
			item.Name = name
		}
		if body.Category != nil {
			item.Category = *body.Category
		}
		if body.CurrentStock != nil {
			item.CurrentStock = *body.CurrentStock
		}
		if body.MinStock != nil {
			item.MinStock = *body.MinStock
		}
		if body.Unit != nil {
			item.Unit = *body.Unit
		}
		item.LastUpdated = time.Now()

		if err := database.DB.Save(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update inventory item")
		}

		return c.JSON(fiber.Map{"success": true, "message": "Inventory item updated!", "data": item})
	}
}

// DELETE /api/inventory/:id
func DeleteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var item models.InventoryItem
		if err := database.DB.First(&item, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Item not found!")
		}
		if err := database.DB.Delete(&item).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete inventory item")
		}

		return c.JSON(fiber.Map{"success": true, "message": "Inventory item deleted!", "data": item})
	}
}
