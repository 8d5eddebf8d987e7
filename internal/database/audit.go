package database

import (
	"context"

	"zyberian-site/internal/models"
)

// helper для записи в журнал аудита
func (s *GormStorage) CreateAuditLog(ctx context.Context, entry models.AuditLog) error {
	return s.db.WithContext(ctx).Create(&entry).Error
}

func (s *GormStorage) GetAuditLogs(ctx context.Context, limit int) ([]models.AuditLog, error) {
	var logs []models.AuditLog
	err := s.db.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Find(&logs).Error
	return logs, wrapf(err, "failed to load audit logs")
}
