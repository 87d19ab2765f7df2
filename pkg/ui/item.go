package ui

import (
	"fmt"

	"github.com/vanderheijden86/taskpad/pkg/model"
)

// TaskItem wraps model.Task to implement list.Item. Filtering happens in
// the manager's pipeline, not in the list widget, so FilterValue is only
// the title.
type TaskItem struct {
	Task model.Task
}

func (i TaskItem) Title() string {
	return i.Task.Title
}

func (i TaskItem) Description() string {
	state := "active"
	if i.Task.Completed {
		state = "completed"
	}
	return fmt.Sprintf("%s • %s", state, i.Task.Priority)
}

func (i TaskItem) FilterValue() string {
	return i.Task.Title
}
