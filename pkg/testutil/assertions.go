package testutil

import (
	"testing"

	"github.com/vanderheijden86/taskpad/pkg/model"
)

// AssertTaskCount verifies the expected number of tasks.
func AssertTaskCount(t *testing.T, tasks []model.Task, expected int) {
	t.Helper()
	if len(tasks) != expected {
		t.Errorf("expected %d tasks, got %d", expected, len(tasks))
	}
}

// AssertNoDuplicateIDs verifies all task ids are unique.
func AssertNoDuplicateIDs(t *testing.T, tasks []model.Task) {
	t.Helper()
	seen := make(map[int64]bool)
	for _, task := range tasks {
		if seen[task.ID] {
			t.Errorf("duplicate task id: %d", task.ID)
		}
		seen[task.ID] = true
	}
}

// AssertAllValid verifies all tasks pass validation.
func AssertAllValid(t *testing.T, tasks []model.Task) {
	t.Helper()
	for i, task := range tasks {
		if err := task.Validate(); err != nil {
			t.Errorf("task %d (%d) invalid: %v", i, task.ID, err)
		}
	}
}

// AssertTitles verifies the tasks appear with exactly these titles, in order.
func AssertTitles(t *testing.T, tasks []model.Task, want ...string) {
	t.Helper()
	if len(tasks) != len(want) {
		t.Fatalf("expected %d tasks, got %d", len(want), len(tasks))
	}
	for i, task := range tasks {
		if task.Title != want[i] {
			t.Errorf("task %d: expected title %q, got %q", i, want[i], task.Title)
		}
	}
}
