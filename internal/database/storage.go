package database

import (
	"context"
	"time"

	"zyberian-site/internal/models"
)

// Storage is the only way handlers reach the relational store.
// Lookups of a missing row return ErrNotFound; deletes report whether a
// row was removed instead of failing.
type Storage interface {
	GetUser(ctx context.Context, id string) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	// CreateUser hashes password before persisting it.
	CreateUser(ctx context.Context, username, password string) (models.User, error)
	UpdateAdminCredentials(ctx context.Context, id, username, password string) (models.User, error)

	GetJobs(ctx context.Context) ([]models.Job, error)
	GetActiveJobs(ctx context.Context) ([]models.Job, error)
	GetJob(ctx context.Context, id string) (models.Job, error)
	CreateJob(ctx context.Context, in models.InsertJob) (models.Job, error)
	UpdateJob(ctx context.Context, id string, upd models.JobUpdate) (models.Job, error)
	DeleteJob(ctx context.Context, id string) (bool, error)

	CreateContactSubmission(ctx context.Context, in models.InsertContactSubmission) (models.ContactSubmission, error)
	GetContactSubmissions(ctx context.Context) ([]models.ContactSubmission, error)
	DeleteContactSubmission(ctx context.Context, id string) (bool, error)

	CreateJobApplication(ctx context.Context, app models.JobApplication) (models.JobApplication, error)
	GetJobApplications(ctx context.Context) ([]models.JobApplication, error)
	DeleteJobApplication(ctx context.Context, id string) (bool, error)

	CreateAuditLog(ctx context.Context, entry models.AuditLog) error
	GetAuditLogs(ctx context.Context, limit int) ([]models.AuditLog, error)
}

// SessionRepository persists server-side sessions. FindSession never
// returns a session whose expiry is not after now.
type SessionRepository interface {
	FindSession(ctx context.Context, sid string, now time.Time) (models.Session, error)
	SaveSession(ctx context.Context, s models.Session) error
	DeleteSession(ctx context.Context, sid string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

var (
	_ Storage           = (*GormStorage)(nil)
	_ SessionRepository = (*GormStorage)(nil)
	_ Storage           = (*MemoryStorage)(nil)
	_ SessionRepository = (*MemoryStorage)(nil)
)
