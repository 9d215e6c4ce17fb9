package healthcheck

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/assistant-api/platform/web/handler"
	"time"
)

type Status struct {
	Message string `json:"message,omitempty" example:"AI Personal Assistant Backend is running!"`
	Status  string `json:"status" example:"healthy"`
	// Timestamp is only set by the health endpoint
	Timestamp string `json:"timestamp,omitempty" example:"2006-01-02T15:04:05.999999999Z07:00"`
}

// Root godoc
// @Summary Service banner
// @Tags Health
// @Produce json
// @Success 200 {object} healthcheck.Status
// @Router / [get]
func Root(_ *gin.Context) handler.Result {
	return handler.OK(Status{
		Message: "AI Personal Assistant Backend is running!",
		Status:  "healthy",
	})
}

// Get godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} healthcheck.Status
// @Router /api/health [get]
func Get(_ *gin.Context) handler.Result {
	return handler.OK(Status{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339Nano),
	})
}
