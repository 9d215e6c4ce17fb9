package backup

import (
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/assistant-api/business/v1/backup"
	"github.com/ribgsilva/assistant-api/platform/web/handler"
	"github.com/ribgsilva/assistant-api/platform/web/mid"
)

// PostNotes godoc
// @Summary Backup notes
// @Description Replaces every stored note with the given ones
// @Tags Backup
// @Accept json
// @Produce json
// @Param notes body []backup.NewNote true "Notes"
// @Success 200 {object} backup.Result
// @Failure 500 {object} handler.Error
// @Router /api/backup/notes [post]
func PostNotes(ctx *gin.Context) handler.Result {
	var notes []backup.NewNote
	if err := ctx.ShouldBindJSON(&notes); err != nil {
		return handler.Internal(err)
	}

	res, err := backup.Notes(ctx, mid.UserID(ctx), notes)
	if err != nil {
		return handler.Internal(err)
	}
	return handler.OK(res)
}

// PostTasks godoc
// @Summary Backup tasks
// @Description Replaces every stored task with the given ones
// @Tags Backup
// @Accept json
// @Produce json
// @Param tasks body []backup.NewTask true "Tasks"
// @Success 200 {object} backup.Result
// @Failure 500 {object} handler.Error
// @Router /api/backup/tasks [post]
func PostTasks(ctx *gin.Context) handler.Result {
	var tasks []backup.NewTask
	if err := ctx.ShouldBindJSON(&tasks); err != nil {
		return handler.Internal(err)
	}

	res, err := backup.Tasks(ctx, mid.UserID(ctx), tasks)
	if err != nil {
		return handler.Internal(err)
	}
	return handler.OK(res)
}
