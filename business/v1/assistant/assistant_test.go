package assistant

import (
	"context"
	"errors"
	"github.com/ribgsilva/assistant-api/persistence/v1/userdata"
	"github.com/ribgsilva/assistant-api/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestEnhance(t *testing.T) {
	for _, content := range []string{"call mom", "", "multi\nline"} {
		e, err := Placeholder{}.Enhance(context.Background(), content)
		require.NoError(t, err)
		assert.Equal(t, content, e.Original)
		assert.Contains(t, e.Enhanced, content)
		assert.Equal(t, "Enhanced: "+content+" - Consider organizing this into actionable items.", e.Enhanced)
		assert.Len(t, e.Suggestions, 3)
	}
}

func TestSuggestTasks(t *testing.T) {
	a, err := Placeholder{}.SuggestTasks(context.Background(), "work")
	require.NoError(t, err)
	b, err := Placeholder{}.SuggestTasks(context.Background(), "home")
	require.NoError(t, err)

	assert.Equal(t, "work", a.Context)
	assert.Len(t, a.Suggestions, 4)
	assert.Equal(t, a.Suggestions, b.Suggestions)
	assert.Equal(t, a.Motivation, b.Motivation)
}

func TestSummaryWithoutRecord(t *testing.T) {
	sys.R.Store = userdata.New()

	s, err := Summary(context.Background(), Placeholder{}, "u")
	require.NoError(t, err)
	assert.Equal(t, noActivity, s.Summary)
	assert.Nil(t, s.Metrics)
}

func TestSummary(t *testing.T) {
	sys.R.Store = userdata.New()
	ctx := context.Background()

	_, err := sys.R.Store.ReplaceNotes(ctx, "u", []userdata.Note{{Id: "n1"}, {Id: "n2"}})
	require.NoError(t, err)
	_, err = sys.R.Store.ReplaceTasks(ctx, "u", []userdata.Task{{Id: "t1", Completed: true}, {Id: "t2"}, {Id: "t3"}})
	require.NoError(t, err)

	s, err := Summary(ctx, Placeholder{}, "u")
	require.NoError(t, err)
	require.NotNil(t, s.Metrics)
	assert.Equal(t, DailyMetrics{Notes: 2, Tasks: 3, Completed: 1}, *s.Metrics)
	assert.Contains(t, s.Summary, "📝 2 notes captured")
	assert.Contains(t, s.Summary, "✅ 1 tasks completed out of 3")
}

type failing struct{ Placeholder }

func (failing) Summarize(context.Context, DailyMetrics) (string, error) {
	return "", errors.New("provider down")
}

func TestSummaryProviderError(t *testing.T) {
	sys.R.Store = userdata.New()
	ctx := context.Background()
	_, err := sys.R.Store.ReplaceNotes(ctx, "u", nil)
	require.NoError(t, err)

	_, err = Summary(ctx, failing{}, "u")
	assert.EqualError(t, err, "daily summary: provider down")
}
