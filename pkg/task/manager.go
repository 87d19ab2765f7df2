// Package task owns the authoritative task collection and its view state.
// All writes funnel through the Manager so the snapshot is persisted on
// every mutation; nothing else touches the store's tasks key.
package task

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/vanderheijden86/taskpad/pkg/model"
	"github.com/vanderheijden86/taskpad/pkg/store"
)

// ErrEmptyTitle is the one recoverable validation error: adding a task
// whose trimmed title is empty. The UI shows it and moves on.
var ErrEmptyTitle = errors.New("task title cannot be empty")

// Manager holds the in-memory task list plus filter, sort, and search
// state. Filters and sort mode persist with the snapshot; the search query
// is transient and resets on reload.
type Manager struct {
	store store.Store
	now   func() time.Time

	tasks   []model.Task
	filters model.FilterState
	sortBy  model.SortMode
	search  string
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock overrides the clock used for task ids and creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// NewManager loads the persisted snapshot from the store. A missing
// snapshot yields an empty list with default filters and custom sort.
func NewManager(st store.Store, opts ...Option) (*Manager, error) {
	m := &Manager{
		store:   st,
		now:     time.Now,
		filters: model.DefaultFilters(),
		sortBy:  model.SortCustom,
	}
	for _, opt := range opts {
		opt(m)
	}
	if err := m.Reload(); err != nil {
		return nil, err
	}
	return m, nil
}

// Reload re-reads the snapshot from the store, replacing tasks, filters,
// and sort mode. The search query is left alone: it was never persisted.
func (m *Manager) Reload() error {
	var snap model.Snapshot
	found, err := m.store.Load(store.KeyTasks, &snap)
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}
	if !found {
		m.tasks = nil
		m.filters = model.DefaultFilters()
		m.sortBy = model.SortCustom
		return nil
	}
	m.tasks = snap.Tasks
	m.filters = snap.Filters
	m.sortBy = snap.SortBy
	return nil
}

// AddTask appends a new task and persists. Fails only when the trimmed
// title is empty. The id doubles as the creation timestamp (UnixMilli).
func (m *Manager) AddTask(title, dueDate string, priority model.Priority) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}

	now := m.now().UnixMilli()
	m.tasks = append(m.tasks, model.Task{
		ID:          now,
		Title:       title,
		Priority:    priority,
		DueDate:     dueDate,
		DateCreated: now,
	})
	return m.persist()
}

// RemoveTask deletes the task with the given id. Unknown ids are a no-op,
// not an error; the snapshot persists either way.
func (m *Manager) RemoveTask(id int64) error {
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			break
		}
	}
	return m.persist()
}

// ToggleTask flips the completed flag on the matching task. The snapshot
// persists even when no task matched; callers relying on one persist per
// call get exactly that.
func (m *Manager) ToggleTask(id int64) error {
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			m.tasks[i].Completed = !m.tasks[i].Completed
			break
		}
	}
	return m.persist()
}

// SetSearchQuery updates the transient search string. Not persisted.
func (m *Manager) SetSearchQuery(query string) {
	m.search = query
}

// SearchQuery returns the current search string.
func (m *Manager) SearchQuery() string {
	return m.search
}

// SetSortBy updates the sort mode and persists it.
func (m *Manager) SetSortBy(mode model.SortMode) error {
	m.sortBy = mode
	return m.persist()
}

// SortBy returns the current sort mode.
func (m *Manager) SortBy() model.SortMode {
	return m.sortBy
}

// SetStatusFilter sets the status filter (exclusive-select) and persists.
func (m *Manager) SetStatusFilter(status model.StatusFilter) error {
	m.filters.Status = status
	return m.persist()
}

// TogglePriorityFilter toggles the priority filter: selecting the active
// value clears it, anything else replaces it. Persists.
func (m *Manager) TogglePriorityFilter(p model.Priority) error {
	if m.filters.Priority != nil && *m.filters.Priority == p {
		m.filters.Priority = nil
	} else {
		m.filters.Priority = &p
	}
	return m.persist()
}

// Filters returns the current filter state.
func (m *Manager) Filters() model.FilterState {
	return m.filters
}

// Tasks returns a copy of the full collection in stored order.
func (m *Manager) Tasks() []model.Task {
	out := make([]model.Task, len(m.tasks))
	copy(out, m.tasks)
	return out
}

// Len returns the number of tasks in the collection.
func (m *Manager) Len() int {
	return len(m.tasks)
}

// Filtered derives the display list without touching stored state. The
// pipeline applies in fixed order: search, status, priority, then sort.
// Custom sort keeps the order the filters left behind.
func (m *Manager) Filtered() []model.Task {
	query := strings.ToLower(m.search)

	out := make([]model.Task, 0, len(m.tasks))
	for _, t := range m.tasks {
		if query != "" && !strings.Contains(strings.ToLower(t.Title), query) {
			continue
		}
		switch m.filters.Status {
		case model.StatusActive:
			if t.Completed {
				continue
			}
		case model.StatusCompleted:
			if !t.Completed {
				continue
			}
		}
		if p := m.filters.Priority; p != nil && t.Priority != *p {
			continue
		}
		out = append(out, t)
	}

	switch m.sortBy {
	case model.SortDateCreated:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].DateCreated > out[j].DateCreated
		})
	case model.SortPriority:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Priority.Rank() < out[j].Priority.Rank()
		})
	}
	return out
}

// persist writes the full snapshot. Every mutating method ends here.
func (m *Manager) persist() error {
	tasks := m.tasks
	if tasks == nil {
		tasks = []model.Task{}
	}
	snap := model.Snapshot{Tasks: tasks, Filters: m.filters, SortBy: m.sortBy}
	if err := m.store.Save(store.KeyTasks, snap); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}
