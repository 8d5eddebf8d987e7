package handlers

import (
	"context"
	"net/http"

	"zyberian-site/internal/logger"
	"zyberian-site/internal/models"

	"github.com/gin-gonic/gin"
)

const contactReceived = "Your message has been sent successfully. We'll get back to you soon!"

// SubmitContact persists the form first; the notification email is best
// effort and never changes the response.
func (h *Handler) SubmitContact(c *gin.Context) {
	var in models.InsertContactSubmission
	if err := bindJSON(c, &in); err != nil {
		h.fail(c, err, "Invalid form data")
		return
	}

	ctx := c.Request.Context()
	sub, err := h.store.CreateContactSubmission(ctx, in)
	if err != nil {
		h.fail(c, err, "Failed to submit contact form")
		return
	}

	log := logger.FromContext(ctx)
	if err := h.notifier.NotifyContact(context.WithoutCancel(ctx), sub); err != nil {
		log.Warn().Err(err).Str("submission_id", sub.ID).Msg("contact notification failed")
	} else {
		log.Info().Str("submission_id", sub.ID).Msg("contact submission received")
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": contactReceived})
}

func (h *Handler) ListContactSubmissions(c *gin.Context) {
	subs, err := h.store.GetContactSubmissions(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Failed to fetch submissions")
		return
	}
	c.JSON(http.StatusOK, orEmpty(subs))
}

func (h *Handler) DeleteContactSubmission(c *gin.Context) {
	id := c.Param("id")
	ok, err := h.store.DeleteContactSubmission(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Failed to delete submission")
		return
	}
	if !ok {
		notFound(c, "Submission not found")
		return
	}

	h.audit(c, "contact", id, "delete", "")
	c.JSON(http.StatusOK, gin.H{"success": true})
}
