package database

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound: записи с таким id нет.
	ErrNotFound = errors.New("record not found")

	// ErrUsernameTaken is returned when users.username would stop being unique.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrSessionNotFound covers both missing and expired sessions.
	ErrSessionNotFound = errors.New("session not found")
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
