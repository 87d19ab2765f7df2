package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/taskpad/pkg/model"
)

func renderRow(t *testing.T, width int, task model.Task) string {
	t.Helper()
	d := TaskDelegate{Theme: TestTheme()}
	l := list.New([]list.Item{TaskItem{Task: task}}, d, width, 10)
	var sb strings.Builder
	d.Render(&sb, l, 0, TaskItem{Task: task})
	return sb.String()
}

func TestDelegateRenderRowParts(t *testing.T) {
	task := model.Task{
		ID:          1,
		Title:       "Buy milk",
		Priority:    model.PriorityHigh,
		DateCreated: time.Now().Add(-2 * time.Hour).UnixMilli(),
	}

	row := renderRow(t, 100, task)
	for _, want := range []string{"[ ]", "HI", "Buy milk", "2h ago"} {
		if !strings.Contains(row, want) {
			t.Errorf("row missing %q: %q", want, row)
		}
	}

	task.Completed = true
	if row := renderRow(t, 100, task); !strings.Contains(row, "[x]") {
		t.Errorf("expected completed checkbox, got %q", row)
	}
}

func TestDelegateRenderNeverOverflows(t *testing.T) {
	old := time.Date(2015, 6, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	tasks := []model.Task{
		{
			ID:          1,
			Title:       "a very long task title that will not fit in a narrow terminal row at all",
			Priority:    model.PriorityMedium,
			DueDate:     "2026-09-15",
			DateCreated: old,
		},
		{
			ID:          2,
			Title:       "日本語のタスクのとても長いタイトルです",
			Priority:    model.PriorityHigh,
			DueDate:     "2026-12-31",
			DateCreated: old,
		},
	}

	for _, width := range []int{30, 62, 90, 120} {
		for _, task := range tasks {
			row := renderRow(t, width, task)
			if got := lipgloss.Width(row); got > width-1 {
				t.Errorf("width %d: row is %d cells wide: %q", width, got, row)
			}
		}
	}
}
