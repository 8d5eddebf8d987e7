package handlers

import (
	"errors"
	"net/http"

	"zyberian-site/internal/database"
	"zyberian-site/internal/models"

	"github.com/gin-gonic/gin"
)

// ListActiveJobs is the public careers listing.
func (h *Handler) ListActiveJobs(c *gin.Context) {
	jobs, err := h.store.GetActiveJobs(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Failed to fetch jobs")
		return
	}
	c.JSON(http.StatusOK, orEmpty(jobs))
}

func (h *Handler) ListJobs(c *gin.Context) {
	jobs, err := h.store.GetJobs(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Failed to fetch jobs")
		return
	}
	c.JSON(http.StatusOK, orEmpty(jobs))
}

func (h *Handler) CreateJob(c *gin.Context) {
	var in models.InsertJob
	if err := bindJSON(c, &in); err != nil {
		h.fail(c, err, "Invalid job data")
		return
	}

	job, err := h.store.CreateJob(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err, "Failed to create job")
		return
	}

	h.audit(c, "job", job.ID, "create", job.Title)
	c.JSON(http.StatusCreated, job)
}

func (h *Handler) UpdateJob(c *gin.Context) {
	var upd models.JobUpdate
	if err := bindJSON(c, &upd); err != nil {
		h.fail(c, err, "Invalid job data")
		return
	}

	job, err := h.store.UpdateJob(c.Request.Context(), c.Param("id"), upd)
	if errors.Is(err, database.ErrNotFound) {
		notFound(c, "Job not found")
		return
	}
	if err != nil {
		h.fail(c, err, "Failed to update job")
		return
	}

	h.audit(c, "job", job.ID, "update", job.Title)
	c.JSON(http.StatusOK, job)
}

func (h *Handler) DeleteJob(c *gin.Context) {
	id := c.Param("id")
	ok, err := h.store.DeleteJob(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Failed to delete job")
		return
	}
	if !ok {
		notFound(c, "Job not found")
		return
	}

	h.audit(c, "job", id, "delete", "")
	c.JSON(http.StatusOK, gin.H{"success": true})
}
