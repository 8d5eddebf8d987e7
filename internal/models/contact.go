package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactSubmission — заявка с публичной формы обратной связи.
type ContactSubmission struct {
	ID          string    `gorm:"type:varchar;primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Email       string    `gorm:"not null" json:"email"`
	Company     *string   `json:"company"`
	ProjectType *string   `json:"projectType"`
	Budget      *string   `json:"budget"`
	Timeline    *string   `json:"timeline"`
	Message     string    `gorm:"not null" json:"message"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (s *ContactSubmission) BeforeCreate(*gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

type InsertContactSubmission struct {
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Company     *string `json:"company"`
	ProjectType *string `json:"projectType"`
	Budget      *string `json:"budget"`
	Timeline    *string `json:"timeline"`
	Message     string  `json:"message" binding:"required"`
}

// NewContactSubmission keeps optional fields nil when they were not sent.
func NewContactSubmission(in InsertContactSubmission) ContactSubmission {
	return ContactSubmission{
		Name:        in.Name,
		Email:       in.Email,
		Company:     in.Company,
		ProjectType: in.ProjectType,
		Budget:      in.Budget,
		Timeline:    in.Timeline,
		Message:     in.Message,
	}
}
