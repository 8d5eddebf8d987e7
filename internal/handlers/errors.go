package handlers

import (
	"errors"
	"net/http"

	"zyberian-site/internal/database"
	"zyberian-site/internal/logger"
	"zyberian-site/internal/resumes"

	"github.com/gin-gonic/gin"
)

var (
	ErrValidation             = errors.New("validation failed")
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrNotFound               = errors.New("not found")
)

var errorStatusMap = map[error]int{
	ErrValidation:             http.StatusBadRequest,
	ErrAuthenticationRequired: http.StatusUnauthorized,
	ErrInvalidCredentials:     http.StatusUnauthorized,
	ErrNotFound:               http.StatusNotFound,

	database.ErrNotFound:      http.StatusNotFound,
	database.ErrUsernameTaken: http.StatusBadRequest,

	resumes.ErrTooLarge:        http.StatusBadRequest,
	resumes.ErrUnsupportedType: http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// fail writes the error response. Validation errors carry field details,
// internal errors are logged and answered with msg only.
func (h *Handler) fail(c *gin.Context, err error, msg string) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg, "details": ve.Fields})
		return
	}

	status := statusFromError(err)
	switch status {
	case http.StatusInternalServerError:
		logger.FromContext(c.Request.Context()).Err(err).Str("path", c.FullPath()).Msg(msg)
	case http.StatusUnauthorized:
		msg = "Invalid credentials"
		if errors.Is(err, ErrAuthenticationRequired) {
			msg = "Authentication required"
		}
	}
	c.JSON(status, gin.H{"error": msg})
}

func notFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"success": false, "error": msg})
}
