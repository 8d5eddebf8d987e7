package database

import (
	"context"
	"sort"
	"sync"
	"time"

	"zyberian-site/internal/models"

	"github.com/google/uuid"
)

// MemoryStorage is an in-process Storage and SessionRepository for tests.
// It mirrors the postgres semantics (unique usernames, creation ordering,
// bcrypt hashing) but keeps nothing across restarts.
type MemoryStorage struct {
	mu           sync.Mutex
	users        map[string]models.User
	jobs         map[string]models.Job
	submissions  map[string]models.ContactSubmission
	applications map[string]models.JobApplication
	sessions     map[string]models.Session
	audit        []models.AuditLog
	now          func() time.Time
	last         time.Time
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		users:        map[string]models.User{},
		jobs:         map[string]models.Job{},
		submissions:  map[string]models.ContactSubmission{},
		applications: map[string]models.JobApplication{},
		sessions:     map[string]models.Session{},
		now:          time.Now,
	}
}

// tick returns a strictly increasing creation timestamp. Must hold mu.
func (m *MemoryStorage) tick() time.Time {
	t := m.now().UTC()
	if !t.After(m.last) {
		t = m.last.Add(time.Microsecond)
	}
	m.last = t
	return t
}

func (m *MemoryStorage) GetUser(_ context.Context, id string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return u, nil
}

func (m *MemoryStorage) GetUserByUsername(_ context.Context, username string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (m *MemoryStorage) CreateUser(_ context.Context, username, password string) (models.User, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.usernameTaken(username, "") {
		return models.User{}, ErrUsernameTaken
	}
	u := models.User{ID: uuid.NewString(), Username: username, Password: hash}
	m.users[u.ID] = u
	return u, nil
}

func (m *MemoryStorage) UpdateAdminCredentials(_ context.Context, id, username, password string) (models.User, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	if m.usernameTaken(username, id) {
		return models.User{}, ErrUsernameTaken
	}
	u.Username = username
	u.Password = hash
	m.users[id] = u
	return u, nil
}

func (m *MemoryStorage) usernameTaken(username, exceptID string) bool {
	for id, u := range m.users {
		if id != exceptID && u.Username == username {
			return true
		}
	}
	return false
}

func (m *MemoryStorage) GetJobs(_ context.Context) ([]models.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.sortedJobs(false), nil
}

func (m *MemoryStorage) GetActiveJobs(_ context.Context) ([]models.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.sortedJobs(true), nil
}

func (m *MemoryStorage) sortedJobs(activeOnly bool) []models.Job {
	jobs := make([]models.Job, 0, len(m.jobs))
	for _, j := range m.jobs {
		if activeOnly && !j.IsActive {
			continue
		}
		jobs = append(jobs, cloneJob(j))
	}
	sort.Slice(jobs, func(a, b int) bool { return jobs[a].CreatedAt.Before(jobs[b].CreatedAt) })
	return jobs
}

func (m *MemoryStorage) GetJob(_ context.Context, id string) (models.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	j, ok := m.jobs[id]
	if !ok {
		return models.Job{}, ErrNotFound
	}
	return cloneJob(j), nil
}

func (m *MemoryStorage) CreateJob(_ context.Context, in models.InsertJob) (models.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job := models.NewJob(in)
	job.ID = uuid.NewString()
	job.CreatedAt = m.tick()
	m.jobs[job.ID] = job
	return cloneJob(job), nil
}

func (m *MemoryStorage) UpdateJob(_ context.Context, id string, upd models.JobUpdate) (models.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[id]
	if !ok {
		return models.Job{}, ErrNotFound
	}
	upd.Apply(&job)
	m.jobs[id] = job
	return cloneJob(job), nil
}

func (m *MemoryStorage) DeleteJob(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.jobs[id]; !ok {
		return false, nil
	}
	delete(m.jobs, id)
	for appID, app := range m.applications {
		if app.JobID == id {
			delete(m.applications, appID)
		}
	}
	return true, nil
}

func cloneJob(j models.Job) models.Job {
	j.Skills = append(models.Skills{}, j.Skills...)
	return j
}

func (m *MemoryStorage) CreateContactSubmission(_ context.Context, in models.InsertContactSubmission) (models.ContactSubmission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sub := models.NewContactSubmission(in)
	sub.ID = uuid.NewString()
	sub.CreatedAt = m.tick()
	m.submissions[sub.ID] = sub
	return sub, nil
}

func (m *MemoryStorage) GetContactSubmissions(_ context.Context) ([]models.ContactSubmission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	subs := make([]models.ContactSubmission, 0, len(m.submissions))
	for _, s := range m.submissions {
		subs = append(subs, s)
	}
	sort.Slice(subs, func(a, b int) bool { return subs[a].CreatedAt.Before(subs[b].CreatedAt) })
	return subs, nil
}

func (m *MemoryStorage) DeleteContactSubmission(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.submissions[id]; !ok {
		return false, nil
	}
	delete(m.submissions, id)
	return true, nil
}

func (m *MemoryStorage) CreateJobApplication(_ context.Context, app models.JobApplication) (models.JobApplication, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.jobs[app.JobID]; !ok {
		return models.JobApplication{}, ErrNotFound
	}
	app.ID = uuid.NewString()
	app.CreatedAt = m.tick()
	m.applications[app.ID] = app
	return app, nil
}

func (m *MemoryStorage) GetJobApplications(_ context.Context) ([]models.JobApplication, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	apps := make([]models.JobApplication, 0, len(m.applications))
	for _, a := range m.applications {
		apps = append(apps, a)
	}
	sort.Slice(apps, func(a, b int) bool { return apps[a].CreatedAt.Before(apps[b].CreatedAt) })
	return apps, nil
}

func (m *MemoryStorage) DeleteJobApplication(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.applications[id]; !ok {
		return false, nil
	}
	delete(m.applications, id)
	return true, nil
}

func (m *MemoryStorage) CreateAuditLog(_ context.Context, entry models.AuditLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry.ID = uint(len(m.audit) + 1)
	entry.CreatedAt = m.tick()
	m.audit = append(m.audit, entry)
	return nil
}

func (m *MemoryStorage) GetAuditLogs(_ context.Context, limit int) ([]models.AuditLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	logs := make([]models.AuditLog, 0, len(m.audit))
	for i := len(m.audit) - 1; i >= 0 && (limit <= 0 || len(logs) < limit); i-- {
		logs = append(logs, m.audit[i])
	}
	return logs, nil
}

func (m *MemoryStorage) FindSession(_ context.Context, sid string, now time.Time) (models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sid]
	if !ok || !s.Expire.After(now) {
		return models.Session{}, ErrSessionNotFound
	}
	return s, nil
}

func (m *MemoryStorage) SaveSession(_ context.Context, s models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[s.SID] = s
	return nil
}

func (m *MemoryStorage) DeleteSession(_ context.Context, sid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, sid)
	return nil
}

func (m *MemoryStorage) DeleteExpiredSessions(_ context.Context, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for sid, s := range m.sessions {
		if !s.Expire.After(now) {
			delete(m.sessions, sid)
			n++
		}
	}
	return n, nil
}

// Sessions reports the number of stored session rows, expired included.
func (m *MemoryStorage) Sessions() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.sessions)
}
