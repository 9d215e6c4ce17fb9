package analytics

import (
	"context"
	"fmt"
	"github.com/ribgsilva/assistant-api/persistence/v1/metrics"
	"github.com/ribgsilva/assistant-api/persistence/v1/userdata"
	"github.com/ribgsilva/assistant-api/sys"
	"math"
)

// Get computes the dashboard metrics of a user. A user without any backup gets zeroed metrics.
func Get(ctx context.Context, user string) (Metrics, error) {
	r, ok, err := sys.R.Store.Find(ctx, user)
	if err != nil {
		return Metrics{}, fmt.Errorf("analytics: %w", err)
	}
	if !ok {
		return Metrics{}, nil
	}

	if cached, ok := metrics.Find(ctx, user, r.StoreId, r.Version); ok {
		return Metrics(cached), nil
	}

	m := Compute(r)
	if err := metrics.Insert(ctx, user, r.StoreId, r.Version, metrics.Analytics(m)); err != nil {
		sys.R.Log.Error("failure to cache analytics: ", err)
	}
	return m, nil
}

// Compute derives the metrics out of a record
func Compute(r userdata.Record) Metrics {
	completed := Completed(r.Tasks)
	return Metrics{
		TotalNotes:        len(r.Notes),
		TotalTasks:        len(r.Tasks),
		CompletedTasks:    completed,
		ActiveTasks:       len(r.Tasks) - completed,
		ProductivityScore: ProductivityScore(completed, len(r.Tasks)),
	}
}

// Completed counts the finished tasks
func Completed(tasks []userdata.Task) int {
	c := 0
	for _, t := range tasks {
		if t.Completed {
			c++
		}
	}
	return c
}

// ProductivityScore is the completed percentage rounded to one decimal, 0 without tasks
func ProductivityScore(completed, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(completed)/float64(total)*1000) / 10
}
