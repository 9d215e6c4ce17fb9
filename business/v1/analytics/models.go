package analytics

type Metrics struct {
	TotalNotes        int     `json:"total_notes" example:"3"`
	TotalTasks        int     `json:"total_tasks" example:"2"`
	CompletedTasks    int     `json:"completed_tasks" example:"1"`
	ActiveTasks       int     `json:"active_tasks" example:"1"`
	ProductivityScore float64 `json:"productivity_score" example:"50"`
}
