package assistant

import (
	"context"
	"fmt"
	"github.com/ribgsilva/assistant-api/business/v1/analytics"
	"github.com/ribgsilva/assistant-api/sys"
)

const noActivity = "No activities to summarize yet. Start by adding some notes and tasks!"

// Summary builds the daily summary of the user out of the live store counts
func Summary(ctx context.Context, p Provider, user string) (DailySummary, error) {
	r, ok, err := sys.R.Store.Find(ctx, user)
	if err != nil {
		return DailySummary{}, fmt.Errorf("daily summary: %w", err)
	}
	if !ok {
		return DailySummary{Summary: noActivity}, nil
	}

	m := DailyMetrics{
		Notes:     len(r.Notes),
		Tasks:     len(r.Tasks),
		Completed: analytics.Completed(r.Tasks),
	}
	s, err := p.Summarize(ctx, m)
	if err != nil {
		return DailySummary{}, fmt.Errorf("daily summary: %w", err)
	}
	return DailySummary{Summary: s, Metrics: &m}, nil
}
