package ai

import (
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/assistant-api/business/v1/assistant"
	"github.com/ribgsilva/assistant-api/platform/web/handler"
	"github.com/ribgsilva/assistant-api/platform/web/mid"
)

// Handlers serves the ai endpoints out of a provider
type Handlers struct {
	Provider assistant.Provider
}

// EnhanceNote godoc
// @Summary Enhance a note
// @Tags AI
// @Produce json
// @Param note_content query string true "Note content"
// @Success 200 {object} assistant.Enhancement
// @Failure 500 {object} handler.Error
// @Router /api/ai/enhance-note [post]
func (h Handlers) EnhanceNote(ctx *gin.Context) handler.Result {
	content, ok := ctx.GetQuery("note_content")
	if !ok {
		return handler.Internal(missing("note_content"))
	}

	e, err := h.Provider.Enhance(ctx, content)
	if err != nil {
		return handler.Internal(err)
	}
	return handler.OK(e)
}

// TaskSuggestions godoc
// @Summary Suggest tasks
// @Tags AI
// @Produce json
// @Param context query string true "What the user is working on"
// @Success 200 {object} assistant.TaskSuggestions
// @Failure 500 {object} handler.Error
// @Router /api/ai/task-suggestions [post]
func (h Handlers) TaskSuggestions(ctx *gin.Context) handler.Result {
	c, ok := ctx.GetQuery("context")
	if !ok {
		return handler.Internal(missing("context"))
	}

	s, err := h.Provider.SuggestTasks(ctx, c)
	if err != nil {
		return handler.Internal(err)
	}
	return handler.OK(s)
}

// DailySummary godoc
// @Summary Daily summary
// @Tags AI
// @Produce json
// @Success 200 {object} assistant.DailySummary
// @Failure 500 {object} handler.Error
// @Router /api/ai/daily-summary [post]
func (h Handlers) DailySummary(ctx *gin.Context) handler.Result {
	s, err := assistant.Summary(ctx, h.Provider, mid.UserID(ctx))
	if err != nil {
		return handler.Internal(err)
	}
	return handler.OK(s)
}

func missing(param string) error {
	return fmt.Errorf("missing query parameter %q", param)
}
