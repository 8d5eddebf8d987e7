package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an administrator account.
type User struct {
	ID       string `gorm:"type:varchar;primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"` // bcrypt hash, never plaintext
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// UserSummary is the only user shape returned to clients.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username}
}
