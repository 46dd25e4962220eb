package user

import (
	"regexp"
	"strings"
	"time"

	"pos-backend/internal/audit"
	"pos-backend/internal/auth"
	"pos-backend/internal/config"
	"pos-backend/internal/database"
	"pos-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

var (
	emailRe = regexp.MustCompile(`\S+@\S+\.\S+`)
	phoneRe = regexp.MustCompile(`^\d{10}$`)
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   uint   `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	RoleID   *uint   `json:"role"`
	IsActive *bool   `json:"isActive"`
	Password *string `json:"password"`
}

// POST /api/user/register
func RegisterHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RegisterRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body!")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		body.Name = strings.TrimSpace(body.Name)

		if body.Name == "" || body.Phone == "" || body.Email == "" || body.Password == "" || body.RoleID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "All fields are required!")
		}
		if !emailRe.MatchString(body.Email) {
			return fiber.NewError(fiber.StatusBadRequest, "Email must be in valid format!")
		}
		if !phoneRe.MatchString(body.Phone) {
			return fiber.NewError(fiber.StatusBadRequest, "Phone number must be a 10-digit number!")
		}

		var existing models.User
		if err := database.DB.Where("email = ?", body.Email).First(&existing).Error; err == nil {
			return fiber.NewError(fiber.StatusBadRequest, "User already exists!")
		}

		var role models.Role
		if err := database.DB.First(&role, "id = ?", body.RoleID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid role provided!")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not hash password")
		}

		u := models.User{
			Name:         body.Name,
			Phone:        body.Phone,
			Email:        body.Email,
			PasswordHash: string(hash),
			RoleID:       body.RoleID,
			IsActive:     true,
		}
		if err := database.DB.Create(&u).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "User already exists!")
		}
		u.Role = &role

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"success": true,
			"message": "New user created!",
			"data":    u,
		})
	}
}

// POST /api/user/login
func LoginHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body!")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		if body.Email == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "All fields are required!")
		}

		var u models.User
		if err := database.DB.Preload("Role").Where("email = ?", body.Email).First(&u).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid Credentials")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(body.Password)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid Credentials")
		}

		token, err := auth.GenerateToken(cfg.JWTSecret, &u)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not generate token")
		}

		location := c.Get("X-Location")
		if location == "" {
			location = "Unknown Location"
		}
		ip := c.Get("X-Forwarded-For")
		if ip == "" {
			ip = c.IP()
		}

		now := time.Now()
		if err := audit.OpenSession(u.ID, now, location, ip, c.Get("User-Agent")); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not record login session")
		}

		database.DB.Model(&u).Updates(map[string]any{
			"last_login":          now,
			"last_login_location": location,
		})
		u.LastLogin = &now
		u.LastLoginLocation = location

		c.Cookie(&fiber.Cookie{
			Name:     auth.CookieName,
			Value:    token,
			Expires:  now.Add(auth.TokenTTL),
			HTTPOnly: true,
			SameSite: "None",
			Secure:   true,
		})

		return c.JSON(fiber.Map{
			"success": true,
			"message": "User login successfully!",
			"data":    u,
			"token":   token,
		})
	}
}

// POST /api/user/logout
func LogoutHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		now := time.Now()
		if err := audit.CloseActiveSession(u.ID, now); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not close login session")
		}
		database.DB.Model(u).Update("last_logout", now)

		c.ClearCookie(auth.CookieName)
		return c.JSON(fiber.Map{"success": true, "message": "User logout successfully!"})
	}
}

// GET /api/user/profile
func ProfileHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"success": true, "data": u})
	}
}

// GET /api/user
func ListHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var users []models.User
		if err := database.DB.Preload("Role").Find(&users).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list users")
		}
		return c.JSON(fiber.Map{"success": true, "data": users})
	}
}

// PUT /api/user/:id
// Partial update: only fields present in the payload are touched.
func UpdateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var u models.User
		if err := database.DB.First(&u, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "User not found!")
		}

		var body UpdateRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body!")
		}

		if body.Name != nil {
			u.Name = strings.TrimSpace(*body.Name)
		}
		if body.Email != nil {
			email := strings.TrimSpace(strings.ToLower(*body.Email))
			if !emailRe.MatchString(email) {
				return fiber.NewError(fiber.StatusBadRequest, "Email must be in valid format!")
			}
			u.Email = email
		}
		if body.Phone != nil {
			if !phoneRe.MatchString(*body.Phone) {
				return fiber.NewError(fiber.StatusBadRequest, "Phone number must be a 10-digit number!")
			}
			u.Phone = *body.Phone
		}
		if body.RoleID != nil {
			var role models.Role
			if err := database.DB.First(&role, "id = ?", *body.RoleID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid role provided!")
			}
			u.RoleID = *body.RoleID
		}
		if body.IsActive != nil {
			u.IsActive = *body.IsActive
		}
		if body.Password != nil && strings.TrimSpace(*body.Password) != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(*body.Password), bcrypt.DefaultCost)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Could not hash password")
			}
			u.PasswordHash = string(hash)
		}

		if err := database.DB.Save(&u).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update user")
		}
		database.DB.Preload("Role").First(&u, u.ID)

		return c.JSON(fiber.Map{"success": true, "message": "User updated successfully!", "data": u})
	}
}

// DELETE /api/user/:id
func DeleteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var u models.User
		if err := database.DB.First(&u, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "User not found!")
		}
		if err := database.DB.Delete(&u).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete user")
		}

		return c.JSON(fiber.Map{"success": true, "message": "User deleted successfully!"})
	}
}
