package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JobApplication: отклик кандидата на вакансию с резюме.
type JobApplication struct {
	ID        string    `gorm:"type:varchar;primaryKey" json:"id"`
	JobID     string    `gorm:"type:varchar;not null;index" json:"jobId"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Phone     *string   `json:"phone"`
	ResumeURL string    `gorm:"column:resume_url;not null" json:"resumeUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

func (a *JobApplication) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// ApplicationForm is the multipart form posted by the careers page.
type ApplicationForm struct {
	Name  string `form:"applicantName" binding:"required,min=2"`
	Email string `form:"applicantEmail" binding:"required,email"`
	Phone string `form:"applicantPhone"`
}
