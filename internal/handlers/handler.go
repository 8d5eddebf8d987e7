package handlers

import (
	"zyberian-site/internal/database"
	"zyberian-site/internal/logger"
	"zyberian-site/internal/mailer"
	"zyberian-site/internal/resumes"
)

// Handler holds everything the JSON routes need. Storage is the only
// path to the database.
type Handler struct {
	store    database.Storage
	notifier mailer.Notifier
	resumes  resumes.Store
	log      *logger.Logger
}

func New(store database.Storage, notifier mailer.Notifier, resumeStore resumes.Store, log *logger.Logger) *Handler {
	registerFieldNames()
	return &Handler{
		store:    store,
		notifier: notifier,
		resumes:  resumeStore,
		log:      log,
	}
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
