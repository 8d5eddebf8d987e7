package database

import (
	"context"
	"errors"

	"zyberian-site/internal/logger"
)

// SeedAdmin создаёт администратора, если такого username ещё нет.
// Returns true when a new user was created.
func SeedAdmin(ctx context.Context, store Storage, username, password string, log *logger.Logger) (bool, error) {
	_, err := store.GetUserByUsername(ctx, username)
	if err == nil {
		// админ уже есть — ничего не делаем
		log.Info().Str("username", username).Msg("admin user already exists, seeding skipped")
		return false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return false, wrapf(err, "failed to check admin user")
	}

	if _, err := store.CreateUser(ctx, username, password); err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			return false, nil
		}
		return false, wrapf(err, "failed to create default admin")
	}

	log.Info().Str("username", username).Msg("created default admin user")
	return true, nil
}
