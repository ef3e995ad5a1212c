// Package handlers contains the Gin HTTP handlers, one per resource.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"entregas/internal/infrastructure/database"
	"entregas/internal/shared/logger"
)

type HealthHandler struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewHealthHandler(db *gorm.DB, logger logger.Interface) *HealthHandler {
	return &HealthHandler{
		db:     db,
		logger: logger,
	}
}

// Index is the root banner endpoint; it carries the same liveness
// semantics as Health.
func (h *HealthHandler) Index(c *gin.Context) {
	if err := database.Ping(c.Request.Context(), h.db); err != nil {
		h.logger.Errorw("store unreachable", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": "API de Gestión de Entregas"})
}

// Health is the liveness probe; it must reach the store.
func (h *HealthHandler) Health(c *gin.Context) {
	if err := database.Ping(c.Request.Context(), h.db); err != nil {
		h.logger.Errorw("store unreachable", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": "Todo Bien, API funcionando"})
}
