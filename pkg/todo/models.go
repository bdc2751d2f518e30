package todo

// Todo represents a todo row
type Todo struct {
	ID    int32  `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// TodoPatch is a partial-update payload. A nil field means "leave
// unchanged"; a present field overwrites, even with a zero value.
type TodoPatch struct {
	Title *string `json:"title"`
	Done  *bool   `json:"done"`
}
