package database

import (
	"context"

	"zyberian-site/internal/models"

	"gorm.io/gorm/clause"
)

func (s *GormStorage) GetJobs(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	err := s.db.WithContext(ctx).Order("created_at asc").Find(&jobs).Error
	return jobs, wrapf(err, "failed to load jobs")
}

// GetActiveJobs is the only job list the public site sees.
func (s *GormStorage) GetActiveJobs(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at asc").
		Find(&jobs).Error
	return jobs, wrapf(err, "failed to load active jobs")
}

func (s *GormStorage) GetJob(ctx context.Context, id string) (models.Job, error) {
	var job models.Job
	if err := s.db.WithContext(ctx).Where("id = ?", id).Take(&job).Error; err != nil {
		return models.Job{}, notFound(err)
	}
	return job, nil
}

func (s *GormStorage) CreateJob(ctx context.Context, in models.InsertJob) (models.Job, error) {
	job := models.NewJob(in)
	if err := s.db.WithContext(ctx).Create(&job).Error; err != nil {
		return models.Job{}, err
	}
	return job, nil
}

func (s *GormStorage) UpdateJob(ctx context.Context, id string, upd models.JobUpdate) (models.Job, error) {
	cols := upd.Columns()
	if len(cols) == 0 {
		return s.GetJob(ctx, id)
	}

	var job models.Job
	res := s.db.WithContext(ctx).
		Model(&job).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(cols)
	if res.Error != nil {
		return models.Job{}, res.Error
	}
	if res.RowsAffected == 0 {
		return models.Job{}, ErrNotFound
	}
	return job, nil
}

func (s *GormStorage) DeleteJob(ctx context.Context, id string) (bool, error) {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Job{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
