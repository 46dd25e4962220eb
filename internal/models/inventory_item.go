package models

import "time"

// InventoryItem tracks stock for kitchen supplies. Category is free text,
// not a reference to the menu categories.
type InventoryItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Category     string    `gorm:"size:100;not null" json:"category"`
	CurrentStock float64   `gorm:"not null;default:0" json:"currentStock"`
	MinStock     float64   `gorm:"not null;default:0" json:"minStock"`
	Unit         string    `gorm:"size:20;not null" json:"unit"`
	LastUpdated  time.Time `json:"lastUpdated"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
