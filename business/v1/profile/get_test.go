package profile

import (
	"context"
	"github.com/ribgsilva/assistant-api/persistence/v1/userdata"
	"github.com/ribgsilva/assistant-api/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestGet(t *testing.T) {
	sys.R.Store = userdata.New()
	ctx := context.Background()

	p, err := Get(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, Profile{
		UserId:      "u",
		Name:        "Assistant User",
		Preferences: Preferences{Theme: "dark", AISuggestions: true, DailyReminders: true},
		Stats:       Stats{DaysActive: 1},
	}, p)

	_, err = sys.R.Store.ReplaceNotes(ctx, "u", []userdata.Note{{Id: "n1"}})
	require.NoError(t, err)
	_, err = sys.R.Store.ReplaceTasks(ctx, "u", []userdata.Task{{Id: "t1"}, {Id: "t2"}})
	require.NoError(t, err)

	p, err = Get(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, Stats{DaysActive: 1, TotalNotes: 1, TotalTasks: 2}, p.Stats)
}
