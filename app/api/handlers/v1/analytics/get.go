package analytics

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/assistant-api/business/v1/analytics"
	"github.com/ribgsilva/assistant-api/platform/web/handler"
	"github.com/ribgsilva/assistant-api/platform/web/mid"
)

// Get godoc
// @Summary Dashboard analytics
// @Description Note and task counts with the productivity score
// @Tags Analytics
// @Produce json
// @Success 200 {object} analytics.Metrics
// @Failure 500 {object} handler.Error
// @Router /api/analytics [get]
func Get(ctx *gin.Context) handler.Result {
	m, err := analytics.Get(ctx, mid.UserID(ctx))
	if err != nil {
		return handler.Internal(err)
	}
	return handler.OK(m)
}
