package metrics

// user, store id, record version
const analyticsKey = "analytics.%s.%s.%d"

type Analytics struct {
	TotalNotes        int     `json:"total_notes"`
	TotalTasks        int     `json:"total_tasks"`
	CompletedTasks    int     `json:"completed_tasks"`
	ActiveTasks       int     `json:"active_tasks"`
	ProductivityScore float64 `json:"productivity_score"`
}
