package assistant

type Enhancement struct {
	Original    string   `json:"original" example:"call mom"`
	Enhanced    string   `json:"enhanced" example:"Enhanced: call mom - Consider organizing this into actionable items."`
	Suggestions []string `json:"suggestions"`
}

type TaskSuggestions struct {
	Context     string   `json:"context" example:"work"`
	Suggestions []string `json:"suggestions"`
	Motivation  string   `json:"motivation" example:"You're doing great! Every small step counts towards your goals."`
}

type DailyMetrics struct {
	Notes     int `json:"notes" example:"2"`
	Tasks     int `json:"tasks" example:"4"`
	Completed int `json:"completed" example:"1"`
}

type DailySummary struct {
	Summary string `json:"summary"`
	// Metrics is omitted while the user has nothing stored
	Metrics *DailyMetrics `json:"metrics,omitempty"`
}
