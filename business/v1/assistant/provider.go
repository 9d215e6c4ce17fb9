package assistant

import (
	"context"
	"fmt"
)

// Provider is the text capability behind the ai endpoints
type Provider interface {
	Enhance(ctx context.Context, content string) (Enhancement, error)
	SuggestTasks(ctx context.Context, userContext string) (TaskSuggestions, error)
	Summarize(ctx context.Context, m DailyMetrics) (string, error)
}

// Placeholder answers with canned text and never leaves the process
type Placeholder struct{}

var _ Provider = Placeholder{}

func (Placeholder) Enhance(_ context.Context, content string) (Enhancement, error) {
	return Enhancement{
		Original: content,
		Enhanced: fmt.Sprintf("Enhanced: %s - Consider organizing this into actionable items.", content),
		Suggestions: []string{
			"Add deadline if time-sensitive",
			"Break down into smaller tasks",
			"Add priority level",
		},
	}, nil
}

func (Placeholder) SuggestTasks(_ context.Context, userContext string) (TaskSuggestions, error) {
	return TaskSuggestions{
		Context: userContext,
		Suggestions: []string{
			"Review and prioritize your current tasks",
			"Set specific time blocks for deep work",
			"Take breaks every 45-60 minutes",
			"Plan tomorrow's priorities before ending today",
		},
		Motivation: "You're doing great! Every small step counts towards your goals.",
	}, nil
}

const summaryTemplate = `Today's Summary:
📝 %d notes captured
✅ %d tasks completed out of %d
🎯 Keep up the great work!

Tomorrow's focus: Complete remaining tasks and add new goals.`

func (Placeholder) Summarize(_ context.Context, m DailyMetrics) (string, error) {
	return fmt.Sprintf(summaryTemplate, m.Notes, m.Completed, m.Tasks), nil
}
