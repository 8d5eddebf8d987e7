package database

import (
	"context"
	"errors"
	"time"

	"zyberian-site/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *GormStorage) FindSession(ctx context.Context, sid string, now time.Time) (models.Session, error) {
	var sess models.Session
	err := s.db.WithContext(ctx).
		Where("sid = ? AND expire > ?", sid, now).
		Take(&sess).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Session{}, ErrSessionNotFound
		}
		return models.Session{}, err
	}
	return sess, nil
}

func (s *GormStorage) SaveSession(ctx context.Context, sess models.Session) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "sid"}},
			DoUpdates: clause.AssignmentColumns([]string{"sess", "expire"}),
		}).
		Create(&sess).Error
}

// DeleteSession is a no-op for unknown ids.
func (s *GormStorage) DeleteSession(ctx context.Context, sid string) error {
	return s.db.WithContext(ctx).Where("sid = ?", sid).Delete(&models.Session{}).Error
}

func (s *GormStorage) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	res := s.db.WithContext(ctx).Where("expire <= ?", now).Delete(&models.Session{})
	return res.RowsAffected, res.Error
}
