package backup

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// NewNote is a note sent by the client. Id, content and created_at must be present, empty strings are fine.
type NewNote struct {
	Id         *string `json:"id" validate:"required" example:"n1"`
	Content    *string `json:"content" validate:"required" example:"buy milk"`
	CreatedAt  *string `json:"created_at" validate:"required" example:"2006-01-02T15:04:05Z"`
	AIEnhanced bool    `json:"ai_enhanced" example:"false"`
}

// NewTask is a task sent by the client. Id, content and created_at must be present, empty strings are fine.
type NewTask struct {
	Id        *string `json:"id" validate:"required" example:"t1"`
	Content   *string `json:"content" validate:"required" example:"write report"`
	Completed bool    `json:"completed" example:"false"`
	CreatedAt *string `json:"created_at" validate:"required" example:"2006-01-02T15:04:05Z"`
	Priority  string  `json:"priority" example:"medium" enums:"low,medium,high"`
}

type Result struct {
	Message string `json:"message" example:"Notes backed up successfully"`
	Count   int    `json:"count" example:"2"`
}

// Event is a backup request received through messaging
type Event struct {
	Type string `json:"type"`
	User string `json:"user"`
	Data any    `json:"data"`
}

const (
	EventNotes = "backup.notes"
	EventTasks = "backup.tasks"
)
