package database

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockStorage(t *testing.T) (*GormStorage, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return NewStorage(db), mock
}

func TestGormStorage_GetActiveJobs_FiltersAndOrders(t *testing.T) {
	s, mock := newMockStorage(t)

	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "title", "location", "type", "experience", "description", "skills", "is_active", "created_at"}).
		AddRow("j1", "Go Engineer", "Remote", "full-time", "senior", "Build things", "{go,postgres}", true, created)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "jobs" WHERE is_active = $1 ORDER BY created_at asc`)).
		WithArgs(true).
		WillReturnRows(rows)

	jobs, err := s.GetActiveJobs(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "j1", jobs[0].ID)
	assert.Equal(t, []string{"go", "postgres"}, []string(jobs[0].Skills))
	assert.True(t, jobs[0].IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStorage_GetJobs_DriverErrorSurfaces(t *testing.T) {
	s, mock := newMockStorage(t)

	boom := errors.New("connection reset")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "jobs" ORDER BY created_at asc`)).
		WillReturnError(boom)

	_, err := s.GetJobs(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestGormStorage_DeleteJob_Missing(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "jobs" WHERE id = $1`)).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := s.DeleteJob(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStorage_DeleteContactSubmission_Existing(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "contact_submissions" WHERE id = $1`)).
		WithArgs("c1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := s.DeleteContactSubmission(context.Background(), "c1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGormStorage_CreateUser_UniqueViolation(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WithArgs(sqlmock.AnyArg(), "admin", sqlmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	_, err := s.CreateUser(context.Background(), "admin", "secret123")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestGormStorage_GetUserByUsername_NotFound(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE username = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password"}))

	_, err := s.GetUserByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormStorage_FindSession_ExpiredIsNotFound(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "session" WHERE sid = $1 AND expire > $2`)).
		WillReturnRows(sqlmock.NewRows([]string{"sid", "sess", "expire"}))

	_, err := s.FindSession(context.Background(), "sid-1", time.Now())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestGormStorage_DeleteExpiredSessions(t *testing.T) {
	s, mock := newMockStorage(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "session" WHERE expire <= $1`)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := s.DeleteExpiredSessions(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	err := Migrate(nil)
	assert.Error(t, err)
}
