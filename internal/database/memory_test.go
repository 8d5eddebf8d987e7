package database

import (
	"context"
	"testing"
	"time"

	"zyberian-site/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func ptr[T any](v T) *T { return &v }

func sampleJob(title string) models.InsertJob {
	return models.InsertJob{
		Title:       title,
		Location:    "Remote",
		Type:        "full-time",
		Experience:  "senior",
		Description: "Cloud platform work",
	}
}

func TestMemoryStorage_CreateJob_Defaults(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	job, err := s.CreateJob(ctx, sampleJob("Go Engineer"))
	require.NoError(t, err)

	assert.NotEmpty(t, job.ID)
	assert.True(t, job.IsActive)
	assert.NotNil(t, job.Skills)
	assert.Empty(t, job.Skills)
	assert.False(t, job.CreatedAt.IsZero())
}

func TestMemoryStorage_ActiveJobsOnly(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	in := sampleJob("Hidden")
	in.IsActive = ptr(false)
	_, err := s.CreateJob(ctx, in)
	require.NoError(t, err)
	visible, err := s.CreateJob(ctx, sampleJob("Visible"))
	require.NoError(t, err)

	active, err := s.GetActiveJobs(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, visible.ID, active[0].ID)

	all, err := s.GetJobs(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Hidden", all[0].Title, "jobs are ordered by creation time")
}

func TestMemoryStorage_UpdateJob_Partial(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	in := sampleJob("Go Engineer")
	in.Skills = []string{"go"}
	job, err := s.CreateJob(ctx, in)
	require.NoError(t, err)

	updated, err := s.UpdateJob(ctx, job.ID, models.JobUpdate{Location: ptr("Berlin")})
	require.NoError(t, err)

	want := job
	want.Location = "Berlin"
	assert.Equal(t, want, updated)

	_, err = s.UpdateJob(ctx, "missing", models.JobUpdate{Title: ptr("x")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStorage_DeleteIsIdempotent(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	job, err := s.CreateJob(ctx, sampleJob("Go Engineer"))
	require.NoError(t, err)

	ok, err := s.DeleteJob(ctx, job.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.DeleteJob(ctx, job.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.DeleteContactSubmission(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStorage_ContactSubmissionNullDefaults(t *testing.T) {
	s := NewMemoryStorage()

	sub, err := s.CreateContactSubmission(context.Background(), models.InsertContactSubmission{
		Name:    "A. Tester",
		Email:   "a@example.com",
		Message: "Interested in cloud migration work for our platform.",
	})
	require.NoError(t, err)

	assert.Nil(t, sub.Company)
	assert.Nil(t, sub.ProjectType)
	assert.Nil(t, sub.Budget)
	assert.Nil(t, sub.Timeline)
}

func TestMemoryStorage_Users(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	u, err := s.CreateUser(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", u.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("admin123")))

	cost, err := bcrypt.Cost([]byte(u.Password))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, cost, 10)

	_, err = s.CreateUser(ctx, "admin", "other")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	other, err := s.CreateUser(ctx, "editor", "editor123")
	require.NoError(t, err)
	_, err = s.UpdateAdminCredentials(ctx, other.ID, "admin", "x")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	changed, err := s.UpdateAdminCredentials(ctx, u.ID, "root", "n3w-pass")
	require.NoError(t, err)
	assert.Equal(t, "root", changed.Username)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(changed.Password), []byte("n3w-pass")))

	_, err = s.UpdateAdminCredentials(ctx, "missing", "x", "y")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStorage_Sessions(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, s.SaveSession(ctx, models.Session{SID: "live", Sess: []byte(`{}`), Expire: now.Add(time.Hour)}))
	require.NoError(t, s.SaveSession(ctx, models.Session{SID: "dead", Sess: []byte(`{}`), Expire: now.Add(-time.Hour)}))

	_, err := s.FindSession(ctx, "live", now)
	assert.NoError(t, err)
	_, err = s.FindSession(ctx, "dead", now)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	n, err := s.DeleteExpiredSessions(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, 1, s.Sessions())

	require.NoError(t, s.DeleteSession(ctx, "live"))
	require.NoError(t, s.DeleteSession(ctx, "live"))
	assert.Equal(t, 0, s.Sessions())
}

func TestMemoryStorage_AuditNewestFirst(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	for _, action := range []string{"create", "update", "delete"} {
		require.NoError(t, s.CreateAuditLog(ctx, models.AuditLog{UserID: "u1", Entity: "job", Action: action}))
	}

	logs, err := s.GetAuditLogs(ctx, 2)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "delete", logs[0].Action)
	assert.Equal(t, "update", logs[1].Action)
}

func TestMemoryStorage_ApplicationsFollowJobs(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	_, err := s.CreateJobApplication(ctx, models.JobApplication{JobID: "missing"})
	assert.ErrorIs(t, err, ErrNotFound)

	job, err := s.CreateJob(ctx, sampleJob("Go Engineer"))
	require.NoError(t, err)
	_, err = s.CreateJobApplication(ctx, models.JobApplication{JobID: job.ID, Name: "Ann", Email: "ann@example.com", ResumeURL: "/uploads/r.pdf"})
	require.NoError(t, err)

	_, err = s.DeleteJob(ctx, job.ID)
	require.NoError(t, err)

	apps, err := s.GetJobApplications(ctx)
	require.NoError(t, err)
	assert.Empty(t, apps)
}
