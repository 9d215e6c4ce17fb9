package profile

type Profile struct {
	UserId      string      `json:"user_id" example:"default_user"`
	Name        string      `json:"name" example:"Assistant User"`
	Preferences Preferences `json:"preferences"`
	Stats       Stats       `json:"stats"`
}

type Preferences struct {
	Theme          string `json:"theme" example:"dark"`
	AISuggestions  bool   `json:"ai_suggestions" example:"true"`
	DailyReminders bool   `json:"daily_reminders" example:"true"`
}

type Stats struct {
	DaysActive int `json:"days_active" example:"1"`
	TotalNotes int `json:"total_notes" example:"3"`
	TotalTasks int `json:"total_tasks" example:"2"`
}
