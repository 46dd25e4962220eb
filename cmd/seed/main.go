// Seed creates the Admin role and an initial admin user so a fresh
// deployment can log in. Safe to run repeatedly.
package main

import (
	"log"
	"os"

	"pos-backend/internal/config"
	"pos-backend/internal/database"
	"pos-backend/internal/models"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	cfg := config.Load()
	database.Init(cfg)

	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD are required")
	}

	var adminRole models.Role
	err := database.DB.Where("name = ?", "Admin").First(&adminRole).Error
	if err != nil {
		adminRole = models.Role{
			Name:        "Admin",
			Description: "Full access",
			Permissions: models.ValidPermissions,
			IsActive:    true,
		}
		if err := database.DB.Create(&adminRole).Error; err != nil {
			log.Fatalf("Could not create Admin role: %v", err)
		}
		log.Println("Created Admin role")
	}

	var existing models.User
	if err := database.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		log.Println("Admin user already exists, nothing to do")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Could not hash password: %v", err)
	}

	admin := models.User{
		Name:         "Admin",
		Phone:        "0000000000",
		Email:        email,
		PasswordHash: string(hash),
		RoleID:       adminRole.ID,
		IsActive:     true,
	}
	if err := database.DB.Create(&admin).Error; err != nil {
		log.Fatalf("Could not create admin user: %v", err)
	}
	log.Println("Created admin user", email)
}
