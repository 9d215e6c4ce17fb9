package backup

import (
	"context"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/ribgsilva/assistant-api/persistence/v1/userdata"
	"github.com/ribgsilva/assistant-api/sys"
)

var validate = validator.New()

// Notes replaces every note of the user with the given ones
func Notes(ctx context.Context, user string, notes []NewNote) (Result, error) {
	stored := make([]userdata.Note, len(notes))
	for i, n := range notes {
		if err := validate.Struct(n); err != nil {
			return Result{}, fmt.Errorf("backup notes: item %d: %w", i, err)
		}
		stored[i] = userdata.Note{
			Id:         *n.Id,
			Content:    *n.Content,
			CreatedAt:  *n.CreatedAt,
			AIEnhanced: n.AIEnhanced,
		}
	}

	if _, err := sys.R.Store.ReplaceNotes(ctx, user, stored); err != nil {
		return Result{}, fmt.Errorf("backup notes: %w", err)
	}
	return Result{Message: "Notes backed up successfully", Count: len(notes)}, nil
}

// Tasks replaces every task of the user with the given ones
func Tasks(ctx context.Context, user string, tasks []NewTask) (Result, error) {
	stored := make([]userdata.Task, len(tasks))
	for i, t := range tasks {
		if err := validate.Struct(t); err != nil {
			return Result{}, fmt.Errorf("backup tasks: item %d: %w", i, err)
		}
		priority := t.Priority
		if priority == "" {
			priority = PriorityMedium
		}
		stored[i] = userdata.Task{
			Id:        *t.Id,
			Content:   *t.Content,
			Completed: t.Completed,
			CreatedAt: *t.CreatedAt,
			Priority:  priority,
		}
	}

	if _, err := sys.R.Store.ReplaceTasks(ctx, user, stored); err != nil {
		return Result{}, fmt.Errorf("backup tasks: %w", err)
	}
	return Result{Message: "Tasks backed up successfully", Count: len(tasks)}, nil
}
