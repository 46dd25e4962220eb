package models

import "time"

type User struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	Name              string     `gorm:"size:100;not null" json:"name"`
	Email             string     `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone             string     `gorm:"size:20;not null" json:"phone"`
	PasswordHash      string     `gorm:"size:255;not null" json:"-"`
	RoleID            uint       `gorm:"index;not null" json:"roleId"`
	Role              *Role      `json:"role,omitempty"`
	IsActive          bool       `gorm:"default:true" json:"isActive"`
	LastLogin         *time.Time `json:"lastLogin"`
	LastLoginLocation string     `gorm:"size:255" json:"lastLoginLocation"`
	LastLogout        *time.Time `json:"lastLogout"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}
