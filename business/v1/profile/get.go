package profile

import (
	"context"
	"fmt"
	"github.com/ribgsilva/assistant-api/sys"
)

// Get returns the fixed profile of the user along with its live counts
func Get(ctx context.Context, user string) (Profile, error) {
	r, _, err := sys.R.Store.Find(ctx, user)
	if err != nil {
		return Profile{}, fmt.Errorf("profile: %w", err)
	}

	return Profile{
		UserId: user,
		Name:   "Assistant User",
		Preferences: Preferences{
			Theme:          "dark",
			AISuggestions:  true,
			DailyReminders: true,
		},
		Stats: Stats{
			DaysActive: 1,
			TotalNotes: len(r.Notes),
			TotalTasks: len(r.Tasks),
		},
	}, nil
}
