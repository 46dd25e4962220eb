// Package audit keeps the login-session trail: one append-only record per
// login, closed on logout, never deleted.
package audit

import (
	"fmt"
	"time"

	"pos-backend/internal/database"
	"pos-backend/internal/models"
)

// OpenSession writes a new active LoginSession row.
func OpenSession(userID uint, loginTime time.Time, location, ip, userAgent string) error {
	if location == "" {
		location = "Unknown"
	}
	session := models.LoginSession{
		UserID:    userID,
		LoginTime: loginTime,
		Location:  location,
		IPAddress: ip,
		UserAgent: userAgent,
		IsActive:  true,
	}
	if err := database.DB.Create(&session).Error; err != nil {
		return fmt.Errorf("could not record login session: %w", err)
	}
	return nil
}

// CloseActiveSession marks the newest active session of the user as logged
// out. Closing when no session is active is not an error.
func CloseActiveSession(userID uint, logoutTime time.Time) error {
	var session models.LoginSession
	err := database.DB.
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("login_time desc").
		First(&session).Error
	if err != nil {
		return nil
	}

	session.LogoutTime = &logoutTime
	session.IsActive = false
	if err := database.DB.Save(&session).Error; err != nil {
		return fmt.Errorf("could not close login session: %w", err)
	}
	return nil
}
