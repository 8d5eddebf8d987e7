package database

import (
	"context"

	"zyberian-site/internal/models"
)

// CreateContactSubmission only persists; notifying staff is the caller's job.
func (s *GormStorage) CreateContactSubmission(ctx context.Context, in models.InsertContactSubmission) (models.ContactSubmission, error) {
	sub := models.NewContactSubmission(in)
	if err := s.db.WithContext(ctx).Create(&sub).Error; err != nil {
		return models.ContactSubmission{}, err
	}
	return sub, nil
}

func (s *GormStorage) GetContactSubmissions(ctx context.Context) ([]models.ContactSubmission, error) {
	var subs []models.ContactSubmission
	err := s.db.WithContext(ctx).Order("created_at asc").Find(&subs).Error
	return subs, wrapf(err, "failed to load contact submissions")
}

func (s *GormStorage) DeleteContactSubmission(ctx context.Context, id string) (bool, error) {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ContactSubmission{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
