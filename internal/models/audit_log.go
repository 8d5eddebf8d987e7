package models

import "time"

type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	UserID   string `gorm:"type:varchar;not null" json:"userId"`
	Entity   string `gorm:"size:50;not null" json:"entity"` // "job", "contact", "application", "user"
	EntityID string `gorm:"type:varchar" json:"entityId"`
	Action   string `gorm:"size:50;not null" json:"action"` // "create", "update", "delete"
	Details  string `gorm:"type:text" json:"details"`
}
