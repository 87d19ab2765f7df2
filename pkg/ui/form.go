package ui

import (
	"github.com/charmbracelet/huh"

	"github.com/vanderheijden86/taskpad/pkg/model"
)

// addForm collects the fields for a new task. Title validation is left to
// the manager so an empty title surfaces through the normal error path.
type addForm struct {
	form     *huh.Form
	title    string
	dueDate  string
	priority model.Priority
}

func newAddForm() *addForm {
	f := &addForm{priority: model.PriorityMedium}
	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task").
				Placeholder("What needs doing?").
				Value(&f.title),
			huh.NewInput().
				Title("Due date").
				Placeholder("optional, e.g. 2026-09-15").
				Value(&f.dueDate),
			huh.NewSelect[model.Priority]().
				Title("Priority").
				Options(
					huh.NewOption("Low", model.PriorityLow),
					huh.NewOption("Medium", model.PriorityMedium),
					huh.NewOption("High", model.PriorityHigh),
				).
				Value(&f.priority),
		),
	).WithTheme(huh.ThemeDracula()).WithShowHelp(false)
	return f
}
