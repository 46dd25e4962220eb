package role

import (
	"strings"

	"pos-backend/internal/database"
	"pos-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateRequest struct {
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Permissions models.PermissionList `json:"permissions"`
}

type UpdateRequest struct {
	Name        *string                `json:"name"`
	Description *string                `json:"description"`
	Permissions *models.PermissionList `json:"permissions"`
}

// GET /api/role — active roles only, newest first.
func ListHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var roles []models.Role
		if err := database.DB.
			Where("is_active = ?", true).
			Order("created_at desc").
			Find(&roles).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list roles")
		}
		return c.JSON(fiber.Map{"success": true, "data": roles})
	}
}

// GET /api/role/:id
func GetHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var r models.Role
		if err := database.DB.First(&r, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Role not found!")
		}
		return c.JSON(fiber.Map{"success": true, "data": r})
	}
}

// POST /api/role
func CreateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body!")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" || body.Description == "" || body.Permissions == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Name, description, and permissions are required!")
		}
		if !body.Permissions.Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid permission specified!")
		}

		var existing models.Role
		if err := database.DB.Where("name = ?", body.Name).First(&existing).Error; err == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Role already exists!")
		}

		r := models.Role{
			Name:        body.Name,
			Description: body.Description,
			Permissions: body.Permissions,
			IsActive:    true,
		}
		if err := database.DB.Create(&r).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Role already exists!")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": true,
			"message": "Role created successfully!",
			"data":    r,
		})
	}
}

// PUT /api/role/:id
func UpdateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var r models.Role
		if err := database.DB.First(&r, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Role not found!")
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
			r.Name = name
		}
		if body.Description != nil {
			r.Description = *body.Description
		}
		if body.Permissions != nil {
			if !body.Permissions.Valid() {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid permission specified!")
			}
			r.Permissions = *body.Permissions
		}

		if err := database.DB.Save(&r).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Role already exists!")
		}

		return c.JSON(fiber.Map{"success": true, "message": "Role updated successfully!", "data": r})
	}
}

// DELETE /api/role/:id — soft delete, the record stays for audit history.
func DeleteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var r models.Role
		if err := database.DB.First(&r, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Role not found!")
		}

		r.IsActive = false
		if err := database.DB.Save(&r).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete role")
		}

		return c.JSON(fiber.Map{"success": true, "message": "Role deleted successfully!", "data": r})
	}
}
