// Package ui implements the taskpad TUI. The model never mutates tasks
// itself: every change goes through the task.Manager, and the visible list
// is re-derived in full after each mutating call.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/taskpad/pkg/debug"
	"github.com/vanderheijden86/taskpad/pkg/model"
	"github.com/vanderheijden86/taskpad/pkg/store"
	"github.com/vanderheijden86/taskpad/pkg/task"
	"github.com/vanderheijden86/taskpad/pkg/watcher"
)

// statusDismissAfter is how long validation errors stay visible.
const statusDismissAfter = 3 * time.Second

// focus represents which UI element has keyboard focus
type focus int

const (
	focusList focus = iota
	focusSearch
	focusAdd
	focusHelp
)

// statusExpireMsg clears the status line. Fire-and-forget: a second status
// while one is pending simply races the earlier dismiss timer.
type statusExpireMsg struct{}

// FileChangedMsg is sent when the snapshot file changes on disk.
type FileChangedMsg struct{}

// statusExpireCmd returns a command that dismisses the status line after
// the fixed display duration.
func statusExpireCmd() tea.Cmd {
	return tea.Tick(statusDismissAfter, func(time.Time) tea.Msg {
		return statusExpireMsg{}
	})
}

// WatchFileCmd returns a command that waits for the next file change and
// sends FileChangedMsg.
func WatchFileCmd(w *watcher.Watcher) tea.Cmd {
	return func() tea.Msg {
		<-w.Changed()
		return FileChangedMsg{}
	}
}

// Model is the top-level bubbletea model.
type Model struct {
	manager *task.Manager
	store   store.Store
	watcher *watcher.Watcher

	theme     Theme
	themeMode string

	list   list.Model
	search textinput.Model
	add    *addForm

	focused       focus
	width, height int

	statusMsg     string
	statusIsError bool
}

// NewModel builds the UI around an already-constructed manager and store.
// themeMode is the persisted theme preference, applied before first render.
// snapshotPath, when non-empty, enables live reload of external changes.
func NewModel(mgr *task.Manager, st store.Store, themeMode, snapshotPath string) Model {
	renderer := lipgloss.DefaultRenderer()
	ApplyThemeMode(renderer, themeMode)
	theme := DefaultTheme(renderer)

	l := list.New(nil, TaskDelegate{Theme: theme}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false) // filtering is the manager's job

	search := textinput.New()
	search.Placeholder = "search tasks"
	search.Prompt = "/ "
	search.CharLimit = 120

	m := Model{
		manager:   mgr,
		store:     st,
		theme:     theme,
		themeMode: themeMode,
		list:      l,
		search:    search,
	}
	m.refreshList()

	if snapshotPath != "" {
		if w, err := watcher.New(snapshotPath); err != nil {
			debug.Log("snapshot watcher unavailable: %v", err)
		} else if err := w.Start(); err != nil {
			debug.Log("snapshot watcher unavailable: %v", err)
		} else {
			m.watcher = w
		}
	}

	return m
}

// Stop releases background resources. Called once on exit.
func (m Model) Stop() {
	if m.watcher != nil {
		m.watcher.Stop()
	}
}

func (m Model) Init() tea.Cmd {
	if m.watcher != nil {
		return WatchFileCmd(m.watcher)
	}
	return nil
}

// refreshList re-derives the visible list from the manager. Full
// recomputation on every mutation; the collection is tiny.
func (m *Model) refreshList() {
	tasks := m.manager.Filtered()
	items := make([]list.Item, len(tasks))
	for i, t := range tasks {
		items[i] = TaskItem{Task: t}
	}
	m.list.SetItems(items)
	if m.list.Index() >= len(items) && len(items) > 0 {
		m.list.Select(len(items) - 1)
	}
}

// selectedTask returns the task under the cursor, if any.
func (m Model) selectedTask() (model.Task, bool) {
	item, ok := m.list.SelectedItem().(TaskItem)
	if !ok {
		return model.Task{}, false
	}
	return item.Task, true
}

// setStatus sets the status line and arms the dismiss timer.
func (m *Model) setStatus(msg string, isError bool) tea.Cmd {
	m.statusMsg = msg
	m.statusIsError = isError
	return statusExpireCmd()
}

// fail reports a mutation error in the status line.
func (m *Model) fail(err error) tea.Cmd {
	return m.setStatus(err.Error(), true)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case statusExpireMsg:
		m.statusMsg = ""
		m.statusIsError = false
		return m, nil

	case FileChangedMsg:
		debug.Log("snapshot changed on disk, reloading")
		var rearm tea.Cmd
		if m.watcher != nil {
			rearm = WatchFileCmd(m.watcher)
		}
		start := time.Now()
		err := m.manager.Reload()
		debug.LogTiming("snapshot reload", time.Since(start))
		if err != nil {
			return m, tea.Batch(m.fail(err), rearm)
		}
		m.refreshList()
		return m, rearm
	}

	switch m.focused {
	case focusAdd:
		return m.updateAdd(msg)
	case focusSearch:
		return m.updateSearch(msg)
	case focusHelp:
		if _, ok := msg.(tea.KeyMsg); ok {
			m.focused = focusList
		}
		return m, nil
	default:
		return m.updateList(msg)
	}
}

func (m Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "?":
		m.focused = focusHelp
		return m, nil

	case "a":
		m.add = newAddForm()
		m.focused = focusAdd
		return m, m.add.form.Init()

	case "/":
		m.focused = focusSearch
		m.search.Focus()
		return m, textinput.Blink

	case "enter", " ":
		t, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		if err := m.manager.ToggleTask(t.ID); err != nil {
			return m, m.fail(err)
		}
		m.refreshList()
		return m, nil

	case "d", "x":
		t, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		if err := m.manager.RemoveTask(t.ID); err != nil {
			return m, m.fail(err)
		}
		m.refreshList()
		return m, nil

	case "s":
		if err := m.manager.SetSortBy(m.manager.SortBy().Next()); err != nil {
			return m, m.fail(err)
		}
		m.refreshList()
		return m, nil

	case "1", "2", "3":
		status := map[string]model.StatusFilter{
			"1": model.StatusAll,
			"2": model.StatusActive,
			"3": model.StatusCompleted,
		}[keyMsg.String()]
		if err := m.manager.SetStatusFilter(status); err != nil {
			return m, m.fail(err)
		}
		m.refreshList()
		return m, nil

	case "l", "m", "h":
		prio := map[string]model.Priority{
			"l": model.PriorityLow,
			"m": model.PriorityMedium,
			"h": model.PriorityHigh,
		}[keyMsg.String()]
		if err := m.manager.TogglePriorityFilter(prio); err != nil {
			return m, m.fail(err)
		}
		m.refreshList()
		return m, nil

	case "t":
		return m.toggleTheme()

	case "y":
		t, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		if err := clipboard.WriteAll(t.Title); err != nil {
			return m, m.fail(fmt.Errorf("copying to clipboard: %w", err))
		}
		return m, m.setStatus("copied title to clipboard", false)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.search.SetValue("")
			m.search.Blur()
			m.manager.SetSearchQuery("")
			m.focused = focusList
			m.refreshList()
			return m, nil
		case "enter":
			m.search.Blur()
			m.focused = focusList
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.manager.SetSearchQuery(m.search.Value())
	m.refreshList()
	return m, cmd
}

func (m Model) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.add.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.add.form = f
	}

	switch m.add.form.State {
	case huh.StateCompleted:
		err := m.manager.AddTask(m.add.title, m.add.dueDate, m.add.priority)
		m.focused = focusList
		m.add = nil
		if err != nil {
			return m, m.fail(err)
		}
		m.refreshList()
		return m, nil

	case huh.StateAborted:
		m.focused = focusList
		m.add = nil
		return m, nil
	}

	return m, cmd
}

// toggleTheme flips light/dark, persists the preference under its own key,
// and rebuilds the styles so the change is immediate.
func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	if m.themeMode == ThemeDark {
		m.themeMode = ThemeLight
	} else {
		m.themeMode = ThemeDark
	}

	ApplyThemeMode(m.theme.Renderer, m.themeMode)
	m.theme = DefaultTheme(m.theme.Renderer)
	m.list.SetDelegate(TaskDelegate{Theme: m.theme})

	if err := m.store.Save(store.KeyTheme, m.themeMode); err != nil {
		return m, m.fail(fmt.Errorf("saving theme: %w", err))
	}
	return m, nil
}

func (m Model) View() string {
	if m.focused == focusHelp {
		return m.helpView()
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")

	if m.focused == focusAdd && m.add != nil {
		b.WriteString(m.add.form.View())
		return b.String()
	}

	b.WriteString(m.list.View())
	b.WriteString("\n")
	b.WriteString(m.footerView())
	return b.String()
}

func (m Model) headerView() string {
	t := m.theme
	title := t.Header.Render(" taskpad ")

	filters := m.manager.Filters()
	parts := []string{
		fmt.Sprintf("%d/%d", len(m.manager.Filtered()), m.manager.Len()),
		string(filters.Status),
	}
	if filters.Priority != nil {
		parts = append(parts, "prio:"+string(*filters.Priority))
	}
	parts = append(parts, "sort:"+m.manager.SortBy().String())

	info := t.MutedText.Render(strings.Join(parts, " · "))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", info)
}

func (m Model) footerView() string {
	t := m.theme

	if m.statusMsg != "" {
		if m.statusIsError {
			return t.ErrorText.Render("✗ " + m.statusMsg)
		}
		return t.SuccessText.Render("✓ " + m.statusMsg)
	}

	if m.focused == focusSearch {
		return m.search.View()
	}
	if q := m.manager.SearchQuery(); q != "" {
		return t.MutedText.Render("search: " + q)
	}
	return t.MutedText.Render("a add · enter toggle · d delete · / search · s sort · 1/2/3 status · l/m/h prio · t theme · ? help")
}

func (m Model) helpView() string {
	t := m.theme
	rows := []string{
		t.Header.Render(" keys "),
		"",
		"  a        add task",
		"  enter    toggle completed",
		"  d, x     delete task",
		"  /        search (esc clears)",
		"  s        cycle sort mode",
		"  1/2/3    status filter: all/active/completed",
		"  l/m/h    toggle priority filter",
		"  t        toggle light/dark theme",
		"  y        copy task title",
		"  q        quit",
		"",
		t.MutedText.Render("press any key to close"),
	}
	return strings.Join(rows, "\n")
}
