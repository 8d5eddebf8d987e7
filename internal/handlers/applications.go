package handlers

import (
	"errors"
	"net/http"
	"strings"

	"zyberian-site/internal/database"
	"zyberian-site/internal/logger"
	"zyberian-site/internal/models"
	"zyberian-site/internal/resumes"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// Apply accepts a multipart application for an open position. Form
// fields and the resume are validated together before anything is stored.
func (h *Handler) Apply(c *gin.Context) {
	var (
		form   models.ApplicationForm
		fields []FieldError
	)

	if err := c.ShouldBindWith(&form, binding.FormMultipart); err != nil {
		fields = append(fields, toValidationError(err).Fields...)
	}

	fh, err := c.FormFile("resume")
	contentType := ""
	if err != nil {
		fields = append(fields, FieldError{Field: "resume", Message: "is required"})
	} else if contentType, err = resumes.Validate(fh); err != nil {
		fields = append(fields, FieldError{Field: "resume", Message: err.Error()})
	}

	if len(fields) > 0 {
		h.fail(c, &ValidationError{Fields: fields}, "Invalid application data")
		return
	}

	ctx := c.Request.Context()
	jobID := c.Param("id")
	job, err := h.store.GetJob(ctx, jobID)
	if errors.Is(err, database.ErrNotFound) || (err == nil && !job.IsActive) {
		notFound(c, "Job not found")
		return
	}
	if err != nil {
		h.fail(c, err, "Failed to submit application")
		return
	}

	f, err := fh.Open()
	if err != nil {
		h.fail(c, err, "Failed to submit application")
		return
	}
	defer f.Close()

	url, err := h.resumes.Save(ctx, resumes.NewKey(fh.Filename), f, fh.Size, contentType)
	if err != nil {
		h.fail(c, err, "Failed to store resume")
		return
	}

	app := models.JobApplication{
		JobID:     job.ID,
		Name:      form.Name,
		Email:     form.Email,
		ResumeURL: url,
	}
	if phone := strings.TrimSpace(form.Phone); phone != "" {
		app.Phone = &phone
	}

	app, err = h.store.CreateJobApplication(ctx, app)
	if err != nil {
		h.fail(c, err, "Failed to submit application")
		return
	}

	logger.FromContext(ctx).Info().
		Str("application_id", app.ID).
		Str("job_id", job.ID).
		Msg("job application received")

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Application submitted successfully"})
}

func (h *Handler) ListApplications(c *gin.Context) {
	apps, err := h.store.GetJobApplications(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Failed to fetch applications")
		return
	}
	c.JSON(http.StatusOK, orEmpty(apps))
}

func (h *Handler) DeleteApplication(c *gin.Context) {
	id := c.Param("id")
	ok, err := h.store.DeleteJobApplication(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Failed to delete application")
		return
	}
	if !ok {
		notFound(c, "Application not found")
		return
	}

	h.audit(c, "application", id, "delete", "")
	c.JSON(http.StatusOK, gin.H{"success": true})
}
