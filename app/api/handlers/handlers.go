package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/assistant-api/app/api/handlers/v1/ai"
	"github.com/ribgsilva/assistant-api/app/api/handlers/v1/analytics"
	"github.com/ribgsilva/assistant-api/app/api/handlers/v1/backup"
	"github.com/ribgsilva/assistant-api/app/api/handlers/v1/healthcheck"
	"github.com/ribgsilva/assistant-api/app/api/handlers/v1/profile"
	"github.com/ribgsilva/assistant-api/business/v1/assistant"
	"github.com/ribgsilva/assistant-api/platform/web/handler"
	"github.com/ribgsilva/assistant-api/platform/web/mid"
)

func MapDefaults(r *gin.Engine) {
	r.GET("/", handler.Wrapper(healthcheck.Root))
	r.GET("/api/health", handler.Wrapper(healthcheck.Get))
}

func MapApi(r *gin.Engine, p assistant.Provider) {
	api := r.Group("/api", mid.User())

	api.POST("/backup/notes", handler.Wrapper(backup.PostNotes))
	api.POST("/backup/tasks", handler.Wrapper(backup.PostTasks))
	api.GET("/analytics", handler.Wrapper(analytics.Get))
	api.GET("/user/profile", handler.Wrapper(profile.Get))

	h := ai.Handlers{Provider: p}
	api.POST("/ai/enhance-note", handler.Wrapper(h.EnhanceNote))
	api.POST("/ai/task-suggestions", handler.Wrapper(h.TaskSuggestions))
	api.POST("/ai/daily-summary", handler.Wrapper(h.DailySummary))
}
