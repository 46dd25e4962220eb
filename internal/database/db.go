package database

import (
	"log"

	"pos-backend/internal/config"
	"pos-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	log.Println("Database connected, migration complete.")
}

// Migrate runs AutoMigrate over every model. Split out from Init so the
// seed command and tests can migrate their own handles.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.LoginSession{},
		&models.Category{},
		&models.Dish{},
		&models.Order{},
		&models.OrderItem{},
		&models.InventoryItem{},
		&models.Settings{},
	)
}
