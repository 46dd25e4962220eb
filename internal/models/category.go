package models

import "time"

type Category struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	// Image holds a URL, an uploaded file path or an emoji literal.
	Image     string    `gorm:"size:255;not null" json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
