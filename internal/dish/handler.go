package dish

import (
	"strconv"
	"strings"

	"pos-backend/internal/database"
	"pos-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	CategoryID  uint    `json:"category"`
}

type UpdateRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	CategoryID  *uint    `json:"category"`
	Available   *bool    `json:"available"`
}

type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
	Limit int   `json:"limit"`
}

// POST /api/dish
func CreateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body!")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" || body.Price == 0 || body.Description == "" || body.Image == "" || body.CategoryID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Please provide all required fields!")
		}
		if body.Price < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Price cannot be negative!")
		}

		var existing models.Dish
		if err := database.DB.Where("name = ?", body.Name).First(&existing).Error; err == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dish already exists!")
		}

		// referential integrity is enforced at write time only
		var cat models.Category
		if err := database.DB.First(&cat, "id = ?", body.CategoryID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid category provided!")
		}

		d := models.Dish{
			Name:        body.Name,
			Price:       body.Price,
			Description: body.Description,
			Image:       body.Image,
			CategoryID:  body.CategoryID,
			Available:   true,
		}
		if err := database.DB.Create(&d).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dish already exists!")
		}
		d.Category = &cat

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": true,
			"message": "Dish added!",
			"data":    d,
		})
	}
}

// GET /api/dish?search=&category=&page=&limit=
// Search is a case-insensitive substring match on name. Pagination metadata
// is returned only when page/limit are requested.
func ListHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Dish{}).Preload("Category")

		if search := strings.TrimSpace(c.Query("search")); search != "" {
			dbq = dbq.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
		}
		if category := c.Query("category"); category != "" && category != "All" {
			dbq = dbq.Where("category_id = ?", category)
		}

		page, _ := strconv.Atoi(c.Query("page"))
		limit, _ := strconv.Atoi(c.Query("limit"))

		if page > 0 && limit > 0 {
			var total int64
			if err := dbq.Count(&total).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Could not list dishes")
			}

			var dishes []models.Dish
			if err := dbq.Offset((page - 1) * limit).Limit(limit).Find(&dishes).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Could not list dishes")
			}

			pages := int(total) / limit
			if int(total)%limit != 0 {
				pages++
			}
			return c.JSON(fiber.Map{
				"success": true,
				"data":    dishes,
				"pagination": Pagination{
					Total: total,
					Page:  page,
					Pages: pages,
					Limit: limit,
				},
			})
		}

		var dishes []models.Dish
		if err := dbq.Find(&dishes).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list dishes")
		}
		return c.JSON(fiber.Map{"success": true, "data": dishes})
	}
}

// PUT /api/dish/:id
func UpdateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var d models.Dish
		if err := database.DB.First(&d, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Dish not found!")
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
			d.Name = name
		}
		if body.Price != nil {
			if *body.Price < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Price cannot be negative!")
			}
			d.Price = *body.Price
		}
		if body.Description != nil {
			d.Description = *body.Description
		}
		if body.Image != nil {
			d.Image = *body.Image
		}
		if body.CategoryID != nil {
			var cat models.Category
			if err := database.DB.First(&cat, "id = ?", *body.CategoryID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid category provided!")
			}
			d.CategoryID = *body.CategoryID
		}
		if body.Available != nil {
			d.Available = *body.Available
		}

		if err := database.DB.Save(&d).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dish already exists!")
		}
		database.DB.Preload("Category").First(&d, d.ID)

		return c.JSON(fiber.Map{"success": true, "message": "Dish updated!", "data": d})
	}
}

// DELETE /api/dish/:id
func DeleteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var d models.Dish
		if err := database.DB.First(&d, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Dish not found!")
		}
		if err := database.DB.Delete(&d).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete dish")
		}

		return c.JSON(fiber.Map{"success": true, "message": "Dish deleted!"})
	}
}
