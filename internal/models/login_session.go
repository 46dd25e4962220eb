package models

import "time"

// LoginSession is an append-only audit record, one row per login. Logout
// closes the newest active session instead of deleting it.
type LoginSession struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     uint       `gorm:"index;not null" json:"userId"`
	User       *User      `json:"user,omitempty"`
	LoginTime  time.Time  `gorm:"index;not null" json:"loginTime"`
	LogoutTime *time.Time `json:"logoutTime"`
	Location   string     `gorm:"size:255" json:"location"`
	IPAddress  string     `gorm:"size:64" json:"ipAddress"`
	UserAgent  string     `gorm:"size:255" json:"userAgent"`
	IsActive   bool       `gorm:"default:true" json:"isActive"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}
