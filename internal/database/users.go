package database

import (
	"context"
	"errors"
	"fmt"

	"zyberian-site/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStorage implements Storage and SessionRepository on top of gorm/postgres.
type GormStorage struct {
	db *gorm.DB
}

func NewStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{db: db}
}

func (s *GormStorage) GetUser(ctx context.Context, id string) (models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).Take(&user).Error; err != nil {
		return models.User{}, notFound(err)
	}
	return user, nil
}

func (s *GormStorage) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).Take(&user).Error; err != nil {
		return models.User{}, notFound(err)
	}
	return user, nil
}

func (s *GormStorage) CreateUser(ctx context.Context, username, password string) (models.User, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{Username: username, Password: hash}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrUsernameTaken
		}
		return models.User{}, err
	}
	return user, nil
}

func (s *GormStorage) UpdateAdminCredentials(ctx context.Context, id, username, password string) (models.User, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	res := s.db.WithContext(ctx).
		Model(&user).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(map[string]any{"username": username, "password": hash})
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return models.User{}, ErrUsernameTaken
		}
		return models.User{}, res.Error
	}
	if res.RowsAffected == 0 {
		return models.User{}, ErrNotFound
	}
	return user, nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
