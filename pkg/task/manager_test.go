package task

import (
	"errors"
	"testing"
	"time"

	"github.com/vanderheijden86/taskpad/pkg/model"
	"github.com/vanderheijden86/taskpad/pkg/store"
	"github.com/vanderheijden86/taskpad/pkg/testutil"
)

// testClock returns a clock that advances 1ms per call so ids are unique.
func testClock() func() time.Time {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	return func() time.Time {
		t := base.Add(time.Duration(n) * time.Millisecond)
		n++
		return t
	}
}

func newTestManager(t *testing.T) (*Manager, *store.FileStore) {
	t.Helper()
	st, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	m, err := NewManager(st, WithClock(testClock()))
	if err != nil {
		t.Fatalf("creating manager: %v", err)
	}
	return m, st
}

// countingStore counts Save calls so tests can pin persist-per-call
// behavior.
type countingStore struct {
	store.Store
	saves int
}

func (c *countingStore) Save(key string, value any) error {
	c.saves++
	return c.Store.Save(key, value)
}

func TestAddTaskEmptyTitle(t *testing.T) {
	m, _ := newTestManager(t)

	for _, title := range []string{"", "   ", "\t\n"} {
		err := m.AddTask(title, "", model.PriorityMedium)
		if !errors.Is(err, ErrEmptyTitle) {
			t.Errorf("AddTask(%q): expected ErrEmptyTitle, got %v", title, err)
		}
		if err != nil && err.Error() == "" {
			t.Errorf("AddTask(%q): expected non-empty error message", title)
		}
	}

	testutil.AssertTaskCount(t, m.Tasks(), 0)
}

func TestAddTask(t *testing.T) {
	m, _ := newTestManager(t)

	if err := m.AddTask("Buy milk", "", model.PriorityMedium); err != nil {
		t.Fatalf("AddTask: %v", err)
	}

	tasks := m.Tasks()
	testutil.AssertTaskCount(t, tasks, 1)
	testutil.AssertAllValid(t, tasks)
	got := tasks[0]
	if got.Completed {
		t.Error("new task should not be completed")
	}
	if got.Title != "Buy milk" || got.Priority != model.PriorityMedium {
		t.Errorf("unexpected task: %+v", got)
	}
	if got.ID != got.DateCreated {
		t.Errorf("id should equal creation timestamp: id=%d created=%d", got.ID, got.DateCreated)
	}
}

func TestAddTaskTrimsTitle(t *testing.T) {
	m, _ := newTestManager(t)

	if err := m.AddTask("  Buy milk  ", "", model.PriorityLow); err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if got := m.Tasks()[0].Title; got != "Buy milk" {
		t.Errorf("expected trimmed title, got %q", got)
	}
}

func TestToggleTaskFlipsExactlyOnce(t *testing.T) {
	m, _ := newTestManager(t)

	if err := m.AddTask("Buy milk", "", model.PriorityMedium); err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	id := m.Tasks()[0].ID

	if err := m.ToggleTask(id); err != nil {
		t.Fatalf("ToggleTask: %v", err)
	}
	if !m.Tasks()[0].Completed {
		t.Error("expected completed=true after one toggle")
	}

	if err := m.ToggleTask(id); err != nil {
		t.Fatalf("ToggleTask: %v", err)
	}
	if m.Tasks()[0].Completed {
		t.Error("expected completed=false after two toggles")
	}
}

func TestToggleTaskMissingIDPersistsAnyway(t *testing.T) {
	fs, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	cs := &countingStore{Store: fs}
	m, err := NewManager(cs, WithClock(testClock()))
	if err != nil {
		t.Fatalf("creating manager: %v", err)
	}

	before := cs.saves
	if err := m.ToggleTask(12345); err != nil {
		t.Fatalf("ToggleTask: %v", err)
	}
	// One snapshot write per call, matched id or not.
	if got := cs.saves - before; got != 1 {
		t.Errorf("expected 1 save for toggle on missing id, got %d", got)
	}
}

func TestRemoveTaskMissingIDIsNoop(t *testing.T) {
	m, _ := newTestManager(t)

	if err := m.AddTask("Buy milk", "", model.PriorityMedium); err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if err := m.RemoveTask(99999); err != nil {
		t.Fatalf("RemoveTask: %v", err)
	}
	testutil.AssertTaskCount(t, m.Tasks(), 1)
}

func TestRemoveTask(t *testing.T) {
	m, _ := newTestManager(t)

	if err := m.AddTask("first", "", model.PriorityLow); err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if err := m.AddTask("second", "", model.PriorityLow); err != nil {
		t.Fatalf("AddTask: %v", err)
	}

	if err := m.RemoveTask(m.Tasks()[0].ID); err != nil {
		t.Fatalf("RemoveTask: %v", err)
	}
	testutil.AssertTitles(t, m.Tasks(), "second")
}

func TestSortModes(t *testing.T) {
	m, _ := newTestManager(t)

	// A: high priority, created first. B: low priority, created later.
	if err := m.AddTask("A", "", model.PriorityHigh); err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if err := m.AddTask("B", "", model.PriorityLow); err != nil {
		t.Fatalf("AddTask: %v", err)
	}

	tests := []struct {
		mode model.SortMode
		want []string
	}{
		{model.SortDateCreated, []string{"B", "A"}},
		{model.SortPriority, []string{"A", "B"}},
		{model.SortCustom, []string{"A", "B"}},
	}
	for _, tt := range tests {
		if err := m.SetSortBy(tt.mode); err != nil {
			t.Fatalf("SetSortBy(%s): %v", tt.mode, err)
		}
		testutil.AssertTitles(t, m.Filtered(), tt.want...)
	}
}

func TestSortIsDerivedOnly(t *testing.T) {
	m, _ := newTestManager(t)

	if err := m.AddTask("A", "", model.PriorityLow); err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if err := m.AddTask("B", "", model.PriorityHigh); err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if err := m.SetSortBy(model.SortPriority); err != nil {
		t.Fatalf("SetSortBy: %v", err)
	}

	testutil.AssertTitles(t, m.Filtered(), "B", "A")
	// Stored order is untouched by display sorting.
	testutil.AssertTitles(t, m.Tasks(), "A", "B")
}

func TestFilterComposition(t *testing.T) {
	m, _ := newTestManager(t)

	add := func(title string, prio model.Priority, completed bool) {
		t.Helper()
		if err := m.AddTask(title, "", prio); err != nil {
			t.Fatalf("AddTask(%q): %v", title, err)
		}
		if completed {
			tasks := m.Tasks()
			if err := m.ToggleTask(tasks[len(tasks)-1].ID); err != nil {
				t.Fatalf("ToggleTask: %v", err)
			}
		}
	}

	add("Buy milk", model.PriorityHigh, false)    // matches all three
	add("Buy milk too", model.PriorityLow, false) // wrong priority
	add("Drink milk", model.PriorityHigh, true)   // completed
	add("Walk dog", model.PriorityHigh, false)    // no "milk"

	if err := m.SetStatusFilter(model.StatusActive); err != nil {
		t.Fatalf("SetStatusFilter: %v", err)
	}
	if err := m.TogglePriorityFilter(model.PriorityHigh); err != nil {
		t.Fatalf("TogglePriorityFilter: %v", err)
	}
	m.SetSearchQuery("milk")

	// AND semantics: only the task satisfying all three predicates.
	testutil.AssertTitles(t, m.Filtered(), "Buy milk")
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	m, _ := newTestManager(t)

	if err := m.AddTask("Buy MILK", "", model.PriorityMedium); err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	m.SetSearchQuery("milk")
	testutil.AssertTaskCount(t, m.Filtered(), 1)

	m.SetSearchQuery("MiLk")
	testutil.AssertTaskCount(t, m.Filtered(), 1)

	m.SetSearchQuery("bread")
	testutil.AssertTaskCount(t, m.Filtered(), 0)
}

func TestPriorityFilterToggleClears(t *testing.T) {
	m, _ := newTestManager(t)

	if err := m.TogglePriorityFilter(model.PriorityHigh); err != nil {
		t.Fatalf("TogglePriorityFilter: %v", err)
	}
	if f := m.Filters().Priority; f == nil || *f != model.PriorityHigh {
		t.Fatalf("expected priority filter high, got %v", f)
	}

	// Re-selecting the active value clears it.
	if err := m.TogglePriorityFilter(model.PriorityHigh); err != nil {
		t.Fatalf("TogglePriorityFilter: %v", err)
	}
	if f := m.Filters().Priority; f != nil {
		t.Errorf("expected priority filter cleared, got %v", *f)
	}

	// Selecting a different value replaces rather than clears.
	if err := m.TogglePriorityFilter(model.PriorityLow); err != nil {
		t.Fatalf("TogglePriorityFilter: %v", err)
	}
	if err := m.TogglePriorityFilter(model.PriorityHigh); err != nil {
		t.Fatalf("TogglePriorityFilter: %v", err)
	}
	if f := m.Filters().Priority; f == nil || *f != model.PriorityHigh {
		t.Fatalf("expected priority filter high, got %v", f)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	st, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}

	m1, err := NewManager(st, WithClock(testClock()))
	if err != nil {
		t.Fatalf("creating manager: %v", err)
	}
	if err := m1.AddTask("Buy milk", "2026-09-15", model.PriorityHigh); err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if err := m1.AddTask("Walk dog", "", model.PriorityLow); err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if err := m1.ToggleTask(m1.Tasks()[0].ID); err != nil {
		t.Fatalf("ToggleTask: %v", err)
	}
	if err := m1.SetSortBy(model.SortPriority); err != nil {
		t.Fatalf("SetSortBy: %v", err)
	}
	if err := m1.SetStatusFilter(model.StatusActive); err != nil {
		t.Fatalf("SetStatusFilter: %v", err)
	}
	m1.SetSearchQuery("milk")

	// Fresh manager over the same store.
	m2, err := NewManager(st)
	if err != nil {
		t.Fatalf("creating second manager: %v", err)
	}

	t1, t2 := m1.Tasks(), m2.Tasks()
	if len(t1) != len(t2) {
		t.Fatalf("expected %d tasks after reload, got %d", len(t1), len(t2))
	}
	for i := range t1 {
		if t1[i] != t2[i] {
			t.Errorf("task %d differs after reload: %+v vs %+v", i, t1[i], t2[i])
		}
	}
	if m2.SortBy() != model.SortPriority {
		t.Errorf("expected sort mode to survive reload, got %s", m2.SortBy())
	}
	if m2.Filters().Status != model.StatusActive {
		t.Errorf("expected status filter to survive reload, got %s", m2.Filters().Status)
	}
	// The search query is transient and never persisted.
	if m2.SearchQuery() != "" {
		t.Errorf("expected empty search query after reload, got %q", m2.SearchQuery())
	}
}

func TestNewManagerEmptyStore(t *testing.T) {
	m, _ := newTestManager(t)

	testutil.AssertTaskCount(t, m.Tasks(), 0)
	if m.SortBy() != model.SortCustom {
		t.Errorf("expected default sort custom, got %s", m.SortBy())
	}
	f := m.Filters()
	if f.Status != model.StatusAll || f.Priority != nil {
		t.Errorf("expected default filters, got %+v", f)
	}
}
