package audit

import (
	"pos-backend/internal/database"
	"pos-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GET /api/user/:id/sessions — the 10 most recent sessions.
func SessionsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var sessions []models.LoginSession
		if err := database.DB.
			Where("user_id = ?", id).
			Order("login_time desc").
			Limit(10).
			Find(&sessions).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list sessions")
		}

		return c.JSON(fiber.Map{"success": true, "data": sessions})
	}
}

// GET /api/user/:id/activity — the user plus their full session history.
func ActivityHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var u models.User
		if err := database.DB.Preload("Role").First(&u, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "User not found!")
		}

		var sessions []models.LoginSession
		if err := database.DB.
			Where("user_id = ?", id).
			Order("login_time desc").
			Find(&sessions).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list sessions")
		}

		return c.JSON(fiber.Map{
			"success": true,
			"data": fiber.Map{
				"user":     u,
				"sessions": sessions,
			},
		})
	}
}
