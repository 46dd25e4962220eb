package auth

import (
	"fmt"
	"strings"

	"pos-backend/internal/config"
	"pos-backend/internal/database"
	"pos-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// CookieName is the credential cookie set on login.
	CookieName = "accessToken"

	CtxUserKey   = "current_user"
	CtxUserIDKey = "user_id"
)

// Middleware verifies the bearer credential and resolves it to a live user
// record. The cookie is checked first, then the Authorization header.
// Missing credential, bad signature or a vanished user all end the request
// with 401.
func Middleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := c.Cookies(CookieName)
		if tokenStr == "" {
			authHeader := c.Get("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				tokenStr = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}
		if tokenStr == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Please provide token!")
		}

		token, err := jwt.ParseWithClaims(tokenStr, &JWTCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid Token!")
		}

		claims, ok := token.Claims.(*JWTCustomClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid Token!")
		}

		var user models.User
		if err := database.DB.Preload("Role").First(&user, "id = ?", claims.UserID).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "User not exist!")
		}

		c.Locals(CtxUserKey, &user)
		c.Locals(CtxUserIDKey, user.ID)

		return c.Next()
	}
}

// CurrentUser returns the user attached by Middleware.
func CurrentUser(c *fiber.Ctx) (*models.User, error) {
	user, ok := c.Locals(CtxUserKey).(*models.User)
	if !ok || user == nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Please provide token!")
	}
	return user, nil
}
