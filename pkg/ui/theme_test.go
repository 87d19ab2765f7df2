package ui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/lipgloss"
)

func withProfile(t *testing.T, p colorprofile.Profile) {
	t.Helper()
	saved := TermProfile
	TermProfile = p
	t.Cleanup(func() { TermProfile = saved })
}

func TestThemeFgDegradesOnLowColor(t *testing.T) {
	withProfile(t, colorprofile.ANSI)
	if got := ThemeFg("#FF5555"); got != lipgloss.ANSIColor(7) {
		t.Errorf("expected ANSI white on a 16-color terminal, got %v", got)
	}

	withProfile(t, colorprofile.TrueColor)
	if got := ThemeFg("#FF5555"); got != lipgloss.Color("#FF5555") {
		t.Errorf("expected hex passthrough, got %v", got)
	}
}

func TestPriorityBadgeLabels(t *testing.T) {
	labels := map[string]string{
		"high":   "HI",
		"medium": "MD",
		"low":    "LO",
		"bogus":  "??",
	}
	for prio, label := range labels {
		if got := RenderPriorityBadge(prio); !strings.Contains(got, label) {
			t.Errorf("badge for %s: expected %q in %q", prio, label, got)
		}
	}

	// The label survives the no-background fallback path.
	withProfile(t, colorprofile.Ascii)
	for prio, label := range labels {
		if got := RenderPriorityBadge(prio); !strings.Contains(got, label) {
			t.Errorf("low-color badge for %s: expected %q in %q", prio, label, got)
		}
	}
}

func TestApplyThemeMode(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)

	ApplyThemeMode(r, ThemeDark)
	if !r.HasDarkBackground() {
		t.Error("expected dark background after applying dark mode")
	}

	ApplyThemeMode(r, ThemeLight)
	if r.HasDarkBackground() {
		t.Error("expected light background after applying light mode")
	}
}
