package handlers

import (
	"net/http"

	"zyberian-site/internal/logger"
	"zyberian-site/internal/middleware"
	"zyberian-site/internal/models"

	"github.com/gin-gonic/gin"
)

const auditPageSize = 200

// audit пишет запись в журнал; ошибка только логируется.
func (h *Handler) audit(c *gin.Context, entity, entityID, action, details string) {
	ctx := c.Request.Context()
	err := h.store.CreateAuditLog(ctx, models.AuditLog{
		UserID:   middleware.CurrentUserID(c),
		Entity:   entity,
		EntityID: entityID,
		Action:   action,
		Details:  details,
	})
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("entity", entity).
			Str("action", action).
			Msg("failed to write audit log")
	}
}

func (h *Handler) ListAuditLogs(c *gin.Context) {
	logs, err := h.store.GetAuditLogs(c.Request.Context(), auditPageSize)
	if err != nil {
		h.fail(c, err, "Failed to fetch audit log")
		return
	}
	c.JSON(http.StatusOK, orEmpty(logs))
}
