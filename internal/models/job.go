package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Job struct {
	ID          string    `gorm:"type:varchar;primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Location    string    `gorm:"not null" json:"location"`
	Type        string    `gorm:"not null" json:"type"`       // full-time, contract ...
	Experience  string    `gorm:"not null" json:"experience"` // junior / mid / senior
	Description string    `gorm:"not null" json:"description"`
	Skills      Skills    `gorm:"type:text[]" json:"skills"`
	IsActive    bool      `gorm:"not null" json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (j *Job) BeforeCreate(*gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	if j.Skills == nil {
		j.Skills = Skills{}
	}
	return nil
}

// InsertJob is the create payload.
type InsertJob struct {
	Title       string   `json:"title" binding:"required"`
	Location    string   `json:"location" binding:"required"`
	Type        string   `json:"type" binding:"required"`
	Experience  string   `json:"experience" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Skills      []string `json:"skills" binding:"omitempty,dive,required"`
	IsActive    *bool    `json:"isActive"`
}

// JobUpdate is a partial InsertJob: nil fields are left untouched.
type JobUpdate struct {
	Title       *string   `json:"title" binding:"omitempty,min=1"`
	Location    *string   `json:"location" binding:"omitempty,min=1"`
	Type        *string   `json:"type" binding:"omitempty,min=1"`
	Experience  *string   `json:"experience" binding:"omitempty,min=1"`
	Description *string   `json:"description" binding:"omitempty,min=1"`
	Skills      *[]string `json:"skills"`
	IsActive    *bool     `json:"isActive"`
}

// Columns returns the column -> value set for the provided fields only.
func (u JobUpdate) Columns() map[string]any {
	cols := map[string]any{}
	if u.Title != nil {
		cols["title"] = *u.Title
	}
	if u.Location != nil {
		cols["location"] = *u.Location
	}
	if u.Type != nil {
		cols["type"] = *u.Type
	}
	if u.Experience != nil {
		cols["experience"] = *u.Experience
	}
	if u.Description != nil {
		cols["description"] = *u.Description
	}
	if u.Skills != nil {
		cols["skills"] = Skills(*u.Skills)
	}
	if u.IsActive != nil {
		cols["is_active"] = *u.IsActive
	}
	return cols
}

// Apply copies the provided fields onto j.
func (u JobUpdate) Apply(j *Job) {
	if u.Title != nil {
		j.Title = *u.Title
	}
	if u.Location != nil {
		j.Location = *u.Location
	}
	if u.Type != nil {
		j.Type = *u.Type
	}
	if u.Experience != nil {
		j.Experience = *u.Experience
	}
	if u.Description != nil {
		j.Description = *u.Description
	}
	if u.Skills != nil {
		j.Skills = Skills(append([]string{}, *u.Skills...))
	}
	if u.IsActive != nil {
		j.IsActive = *u.IsActive
	}
}

// NewJob builds a Job from an insert payload, applying the defaults
// (active, no skills) when the caller omitted them.
func NewJob(in InsertJob) Job {
	job := Job{
		Title:       in.Title,
		Location:    in.Location,
		Type:        in.Type,
		Experience:  in.Experience,
		Description: in.Description,
		Skills:      Skills{},
		IsActive:    true,
	}
	if in.Skills != nil {
		job.Skills = Skills(append([]string{}, in.Skills...))
	}
	if in.IsActive != nil {
		job.IsActive = *in.IsActive
	}
	return job
}
