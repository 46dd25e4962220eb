package models

import "time"

type Dish struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Price       float64   `gorm:"not null" json:"price"`
	Description string    `gorm:"size:500;not null" json:"description"`
	Image       string    `gorm:"size:255;not null" json:"image"`
	CategoryID  uint      `gorm:"index;not null" json:"categoryId"`
	Category    *Category `json:"category,omitempty"`
	Available   bool      `gorm:"default:true" json:"available"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
