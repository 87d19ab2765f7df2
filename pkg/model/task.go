// Package model defines the task data model shared by the store, the
// manager, and the UI. Types here are plain serializable structs; all
// behavior that mutates state lives in pkg/task.
package model

import (
	"fmt"
	"strings"
	"time"
)

// Priority is the task priority level.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Rank returns the sort rank for the priority: high sorts first.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// StatusFilter selects tasks by completion state. Exclusive-select: setting
// a new value always replaces the old one.
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusActive    StatusFilter = "active"
	StatusCompleted StatusFilter = "completed"
)

// Valid reports whether s is a known status filter.
func (s StatusFilter) Valid() bool {
	switch s {
	case StatusAll, StatusActive, StatusCompleted:
		return true
	}
	return false
}

// SortMode determines the ordering of the derived task list.
type SortMode string

const (
	SortCustom      SortMode = "custom"      // insertion order
	SortDateCreated SortMode = "dateCreated" // newest first
	SortPriority    SortMode = "priority"    // high before low
)

// String returns a human-readable label for the sort mode.
func (s SortMode) String() string {
	switch s {
	case SortDateCreated:
		return "Created ↓"
	case SortPriority:
		return "Priority"
	default:
		return "Custom"
	}
}

// Next cycles to the following sort mode. Used by the UI sort key.
func (s SortMode) Next() SortMode {
	switch s {
	case SortCustom:
		return SortDateCreated
	case SortDateCreated:
		return SortPriority
	default:
		return SortCustom
	}
}

// Task is a single todo item. IDs are the UnixMilli timestamp at creation,
// unique within a collection in practice.
type Task struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Completed   bool     `json:"completed"`
	Priority    Priority `json:"priority"`
	DueDate     string   `json:"dueDate"`
	DateCreated int64    `json:"dateCreated"`
}

// CreatedAt returns the creation time as a time.Time.
func (t Task) CreatedAt() time.Time {
	return time.UnixMilli(t.DateCreated)
}

// Validate checks the invariants enforced at the creation boundary.
func (t Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("task %d: title is empty", t.ID)
	}
	if !t.Priority.Valid() {
		return fmt.Errorf("task %d: unknown priority %q", t.ID, t.Priority)
	}
	return nil
}

// FilterState is the persisted filter selection. Priority is nil when no
// priority filter is active (serialized as JSON null).
type FilterState struct {
	Status   StatusFilter `json:"status"`
	Priority *Priority    `json:"priority"`
}

// DefaultFilters returns the initial filter state: all tasks, no priority.
func DefaultFilters() FilterState {
	return FilterState{Status: StatusAll}
}

// Snapshot is the bundle persisted as one unit under the tasks key.
// The transient search query is deliberately not part of it.
type Snapshot struct {
	Tasks   []Task      `json:"tasks"`
	Filters FilterState `json:"filters"`
	SortBy  SortMode    `json:"sortBy"`
}

// DefaultSnapshot returns an empty snapshot with default view state.
func DefaultSnapshot() Snapshot {
	return Snapshot{Filters: DefaultFilters(), SortBy: SortCustom}
}
