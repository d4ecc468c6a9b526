package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered member of the platform.
type User struct {
	ID               uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Username         string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	Email            string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash     string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	ProfilePicture   string    `json:"profilePicture" gorm:"size:512"`
	Bio              string    `json:"bio" gorm:"size:1024"`
	IsAdmin          bool      `json:"isAdmin" gorm:"default:false;index"`
	IsEmailVerified  bool      `json:"isEmailVerified" gorm:"default:false"`
	TwoFactorEnabled bool      `json:"twoFactorEnabled" gorm:"default:false"`
	TwoFactorSecret  string    `json:"-" gorm:"size:255"` // Never expose in JSON
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// BeforeCreate sets the UUID and normalizes the email before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.Email = NormalizeEmail(u.Email)
	return nil
}

// NormalizeEmail lowercases and trims an email address so uniqueness checks are
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Snapshot captures the identity fields embedded into articles and comments at
// write time. Snapshots are copies, never re-resolved against the users table.
func (u *User) Snapshot() UserSnapshot {
	return UserSnapshot{ID: u.ID, Username: u.Username}
}

// UserSnapshot is a denormalized copy of a user's identity.
type UserSnapshot struct {
	ID       uuid.UUID `json:"_id" gorm:"type:char(36);index"`
	Username string    `json:"username" gorm:"size:255"`
}
