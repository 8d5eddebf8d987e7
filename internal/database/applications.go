package database

import (
	"context"

	"zyberian-site/internal/models"
)

func (s *GormStorage) CreateJobApplication(ctx context.Context, app models.JobApplication) (models.JobApplication, error) {
	if err := s.db.WithContext(ctx).Create(&app).Error; err != nil {
		return models.JobApplication{}, err
	}
	return app, nil
}

func (s *GormStorage) GetJobApplications(ctx context.Context) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := s.db.WithContext(ctx).Order("created_at asc").Find(&apps).Error
	return apps, wrapf(err, "failed to load job applications")
}

func (s *GormStorage) DeleteJobApplication(ctx context.Context, id string) (bool, error) {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.JobApplication{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
