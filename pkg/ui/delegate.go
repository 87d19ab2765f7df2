package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TaskDelegate renders task rows in the list.
// Layout: [sel] [check] [prio-badge] [title...] [due] [age]
type TaskDelegate struct {
	Theme Theme
}

func (d TaskDelegate) Height() int {
	return 1
}

func (d TaskDelegate) Spacing() int {
	return 0
}

func (d TaskDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

func (d TaskDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(TaskItem)
	if !ok {
		return
	}

	t := d.Theme
	width := m.Width()
	if width <= 0 {
		width = 80
	}
	// Reduce width by 1 to prevent terminal wrapping on the exact edge
	width--

	isSelected := index == m.Index()

	check := "[ ]"
	if i.Task.Completed {
		check = "[x]"
	}

	prioBadge := RenderPriorityBadge(string(i.Task.Priority))
	ageStr := FormatTimeRel(i.Task.CreatedAt())

	// Right-side columns, shown only at reasonable widths.
	var rightParts []string
	rightWidth := 0
	if width > 60 {
		part := t.MutedText.Render(fmt.Sprintf("%8s", ageStr))
		rightParts = append(rightParts, part)
		rightWidth += lipgloss.Width(part) + 1
	}
	if width > 80 && i.Task.DueDate != "" {
		due := truncateCells(i.Task.DueDate, 10, "…")
		part := t.SecondaryText.Render(fmt.Sprintf("due %-10s", due))
		rightParts = append(rightParts, part)
		rightWidth += lipgloss.Width(part) + 1
	}

	selector := "  "
	if isSelected {
		selector = t.PrimaryBold.Render("▌ ")
	}

	leftFixedWidth := 2 + 4 + lipgloss.Width(prioBadge) + 1

	titleWidth := width - leftFixedWidth - rightWidth - 1
	if titleWidth < 8 {
		titleWidth = 8
	}
	title := truncateCells(i.Task.Title, titleWidth, "…")

	titleStyle := t.Base
	if i.Task.Completed {
		titleStyle = t.Done
	}
	if isSelected {
		titleStyle = titleStyle.Bold(true)
	}

	var sb strings.Builder
	sb.WriteString(selector)
	sb.WriteString(t.SecondaryText.Render(check))
	sb.WriteString(" ")
	sb.WriteString(prioBadge)
	sb.WriteString(" ")
	sb.WriteString(titleStyle.Render(title))

	// Pad to push right columns to the edge. When the row is too tight
	// for them, the title keeps the space instead.
	pad := width - lipgloss.Width(sb.String()) - rightWidth
	if pad > 0 && len(rightParts) > 0 {
		sb.WriteString(strings.Repeat(" ", pad))
		sb.WriteString(strings.Join(rightParts, " "))
	}

	fmt.Fprint(w, sb.String())
}
