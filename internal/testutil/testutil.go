// Package testutil wires handler tests to an in-memory database and a
// fiber app configured like the real server.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"pos-backend/internal/auth"
	"pos-backend/internal/config"
	"pos-backend/internal/database"
	"pos-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	JWTSecret    = "test-secret-0123456789abcdef01234567"
	UserPassword = "password123"
)

// SetupDB opens a fresh in-memory database, migrates it and installs it as
// the package-global handle handlers use. Each test gets its own database,
// keyed by the test name.
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	database.DB = db
	return db
}

// NewApp builds a fiber app with the same error translation boundary as
// the server.
func NewApp() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"success": false,
					"message": e.Message,
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "Something went wrong",
			})
		},
	})
}

// Config returns a config suitable for handler tests.
func Config(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		JWTSecret: JWTSecret,
		UploadDir: t.TempDir(),
	}
}

// SeedUser creates a role and an active user with UserPassword.
func SeedUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	role := models.Role{
		Name:        "Waiter",
		Description: "Takes orders",
		Permissions: models.PermissionList{"view_orders", "create_orders"},
		IsActive:    true,
	}
	require.NoError(t, db.Create(&role).Error)

	hash, err := bcrypt.GenerateFromPassword([]byte(UserPassword), bcrypt.MinCost)
	require.NoError(t, err)

	u := models.User{
		Name:         "Test Waiter",
		Phone:        "0123456789",
		Email:        "waiter@example.com",
		PasswordHash: string(hash),
		RoleID:       role.ID,
		IsActive:     true,
	}
	require.NoError(t, db.Create(&u).Error)
	u.Role = &role
	return &u
}

// BearerToken mints a token for the user with the test secret.
func BearerToken(t *testing.T, u *models.User) string {
	t.Helper()
	token, err := auth.GenerateToken(JWTSecret, u)
	require.NoError(t, err)
	return "Bearer " + token
}
