package analytics

import (
	"context"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/assistant-api/persistence/v1/userdata"
	"github.com/ribgsilva/assistant-api/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"testing"
	"time"
)

func TestProductivityScore(t *testing.T) {
	tests := []struct {
		completed, total int
		want             float64
	}{
		{0, 0, 0},
		{0, 3, 0},
		{1, 2, 50},
		{1, 3, 33.3},
		{2, 3, 66.7},
		{3, 3, 100},
		{1, 7, 14.3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ProductivityScore(tt.completed, tt.total), "%d/%d", tt.completed, tt.total)
	}
}

func TestGetWithoutRecord(t *testing.T) {
	sys.R.Store = userdata.New()

	m, err := Get(context.Background(), "u")
	require.NoError(t, err)
	assert.Equal(t, Metrics{}, m)
}

func TestGet(t *testing.T) {
	sys.R.Store = userdata.New()
	ctx := context.Background()

	_, err := sys.R.Store.ReplaceTasks(ctx, "u", []userdata.Task{{Id: "t1"}, {Id: "t2", Completed: true}})
	require.NoError(t, err)

	m, err := Get(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, Metrics{TotalTasks: 2, CompletedTasks: 1, ActiveTasks: 1, ProductivityScore: 50}, m)
}

func cached(t *testing.T) *miniredis.Miniredis {
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() {
		_ = rdb.Close()
		sys.R.Cache = nil
	})

	sys.R.Log = zap.NewNop().Sugar()
	sys.R.Cache = rdb
	sys.Configs.Cache.OperationTimeout = time.Second
	sys.Configs.Cache.CacheTTL = time.Minute
	return s
}

func TestGetCached(t *testing.T) {
	s := cached(t)
	sys.R.Store = userdata.New()
	ctx := context.Background()

	_, err := sys.R.Store.ReplaceNotes(ctx, "u", []userdata.Note{{Id: "n1"}})
	require.NoError(t, err)

	m, err := Get(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, 1, m.TotalNotes)
	assert.True(t, s.Exists("analytics.u."+sys.R.Store.Id()+".1"))

	// a new backup bumps the version so the old entry is never read again
	_, err = sys.R.Store.ReplaceNotes(ctx, "u", nil)
	require.NoError(t, err)

	m, err = Get(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, 0, m.TotalNotes)
	assert.True(t, s.Exists("analytics.u."+sys.R.Store.Id()+".2"))
}

func TestGetCachedAcrossStores(t *testing.T) {
	cached(t)
	ctx := context.Background()

	// first process
	sys.R.Store = userdata.New()
	_, err := sys.R.Store.ReplaceTasks(ctx, "u", []userdata.Task{{Id: "t1", Completed: true}, {Id: "t2", Completed: true}})
	require.NoError(t, err)
	m, err := Get(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, Metrics{TotalTasks: 2, CompletedTasks: 2, ProductivityScore: 100}, m)

	// restarted process sharing the same redis, its store is back at version 1
	sys.R.Store = userdata.New()
	_, err = sys.R.Store.ReplaceTasks(ctx, "u", []userdata.Task{{Id: "t3"}})
	require.NoError(t, err)
	m, err = Get(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, Metrics{TotalTasks: 1, ActiveTasks: 1}, m)
}
