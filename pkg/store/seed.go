package store

import (
	"time"

	"github.com/vanderheijden86/taskpad/pkg/model"
)

// EnsureSeeded writes a starter snapshot with two sample tasks if no
// snapshot has been persisted yet. An existing snapshot is never touched,
// so calling this on every startup is safe.
func EnsureSeeded(s Store, now func() time.Time) error {
	if now == nil {
		now = time.Now
	}

	var snap model.Snapshot
	found, err := s.Load(KeyTasks, &snap)
	if err != nil {
		return err
	}
	if found {
		return nil
	}

	base := now().UnixMilli()
	seeded := model.Snapshot{
		Tasks: []model.Task{
			{
				ID:          base,
				Title:       "Welcome to taskpad! Press enter to complete me",
				Priority:    model.PriorityMedium,
				DateCreated: base,
			},
			{
				ID:          base + 1,
				Title:       "Add a task of your own with 'a'",
				Priority:    model.PriorityLow,
				DateCreated: base + 1,
			},
		},
		Filters: model.DefaultFilters(),
		SortBy:  model.SortCustom,
	}
	return s.Save(KeyTasks, seeded)
}
