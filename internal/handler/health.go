package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/readinglist/internal/model"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db        *gorm.DB
	startTime time.Time
	version   string
}

func NewHealthHandler(db *gorm.DB, startTime time.Time, version string) *HealthHandler {
	return &HealthHandler{
		db:        db,
		startTime: startTime,
		version:   version,
	}
}

func (h *HealthHandler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/health", h.Health)
	r.GET("/ready", h.Ready)
}

// Health godoc
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.version,
		"uptime":  int64(time.Since(h.startTime).Seconds()),
	})
}

// Ready godoc
// @Summary      Readiness probe
// @Description  Reports whether the database answers and the books table exists
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      503  {object}  map[string]any
// @Router       /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": "error",
			"error":  "failed to get underlying DB",
		})
		return
	}

	if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"db": gin.H{
				"status": "down",
				"error":  err.Error(),
			},
		})
		return
	}

	if !h.db.WithContext(c.Request.Context()).Migrator().HasTable(&model.Book{}) {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"db": gin.H{
				"status": "up",
				"books":  "missing",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ready",
		"version": h.version,
		"uptime":  int64(time.Since(h.startTime).Seconds()),
		"db": gin.H{
			"status": "up",
			"books":  "ok",
		},
	})
}
