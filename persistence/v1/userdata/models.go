package userdata

// Note is a stored free text record
type Note struct {
	Id         string
	Content    string
	CreatedAt  string
	AIEnhanced bool
}

// Task is a stored actionable record
type Task struct {
	Id        string
	Content   string
	Completed bool
	CreatedAt string
	Priority  string
}

// Record is everything kept for one user. Version grows on every replace and is
// only meaningful together with StoreId, every Store starts counting from zero.
type Record struct {
	Notes   []Note
	Tasks   []Task
	StoreId string
	Version uint64
}
