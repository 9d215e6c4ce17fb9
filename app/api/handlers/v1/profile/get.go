package profile

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/assistant-api/business/v1/profile"
	"github.com/ribgsilva/assistant-api/platform/web/handler"
	"github.com/ribgsilva/assistant-api/platform/web/mid"
)

// Get godoc
// @Summary User profile
// @Tags User
// @Produce json
// @Success 200 {object} profile.Profile
// @Failure 500 {object} handler.Error
// @Router /api/user/profile [get]
func Get(ctx *gin.Context) handler.Result {
	p, err := profile.Get(ctx, mid.UserID(ctx))
	if err != nil {
		return handler.Internal(err)
	}
	return handler.OK(p)
}
