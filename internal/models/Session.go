package models

import (
	"time"

	"gorm.io/gorm"
)

// Session is the server-side record behind a login token. Logout deletes the
// row, which invalidates the token immediately even though the JWT itself is
// still within its expiry window.
type Session struct {
	gorm.Model
	Token     string    `json:"-" gorm:"unique"`
	UserID    uint      `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}
