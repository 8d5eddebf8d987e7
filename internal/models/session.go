package models

import (
	"time"

	"gorm.io/datatypes"
)

// Session is the server-side half of an admin session; the cookie holds only SID.
type Session struct {
	SID    string         `gorm:"column:sid;type:varchar;primaryKey"`
	Sess   datatypes.JSON `gorm:"column:sess;not null"`
	Expire time.Time      `gorm:"column:expire;not null;index:IDX_session_expire"`
}

func (Session) TableName() string { return "session" }
