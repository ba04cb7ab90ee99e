package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandler проверяет доступность хранилища
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler создает новый обработчик health-check
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health пингует базу данных
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		log.Printf("[HealthHandler] База данных недоступна: %v", err)
		respondError(c, http.StatusServiceUnavailable)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "status": "ok"})
}
