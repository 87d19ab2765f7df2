package ui

import (
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/lipgloss"
)

// Theme preference values, persisted under the store's theme key.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// TermProfile holds the detected terminal color profile. Computed once at
// package init so style helpers can branch without re-detecting.
var TermProfile colorprofile.Profile

func init() {
	TermProfile = colorprofile.Detect(os.Stdout, os.Environ())
}

// ThemeFg returns the given hex color for ANSI256+ terminals and a safe
// ANSI white (color 7) for 16-color or lower terminals.
func ThemeFg(hex string) lipgloss.TerminalColor {
	if TermProfile < colorprofile.ANSI256 {
		return lipgloss.ANSIColor(7)
	}
	return lipgloss.Color(hex)
}

// Adaptive palette. Light variants tuned for contrast on white backgrounds.
var (
	ColorText      = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#F8F8F2"}
	ColorSubtext   = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#BFBFBF"}
	ColorMuted     = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#6272A4"}
	ColorPrimary   = lipgloss.AdaptiveColor{Light: "#6B47D9", Dark: "#BD93F9"}
	ColorSecondary = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#6272A4"}
	ColorSuccess   = lipgloss.AdaptiveColor{Light: "#007700", Dark: "#50FA7B"}
	ColorDanger    = lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF5555"}
	ColorHighlight = lipgloss.AdaptiveColor{Light: "#E0E0E0", Dark: "#44475A"}

	// Priority colors
	ColorPrioHigh   = lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF5555"}
	ColorPrioMedium = lipgloss.AdaptiveColor{Light: "#B06800", Dark: "#FFB86C"}
	ColorPrioLow    = lipgloss.AdaptiveColor{Light: "#007700", Dark: "#50FA7B"}

	// Priority background colors (for badges)
	ColorPrioHighBg   = lipgloss.AdaptiveColor{Light: "#F8D7DA", Dark: "#3D1A1A"}
	ColorPrioMediumBg = lipgloss.AdaptiveColor{Light: "#FFE8CC", Dark: "#3D2A1A"}
	ColorPrioLowBg    = lipgloss.AdaptiveColor{Light: "#D4EDDA", Dark: "#1A3D2A"}
)

// Theme bundles the renderer and the pre-computed styles used per frame.
type Theme struct {
	Renderer *lipgloss.Renderer

	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Subtext   lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor

	Base     lipgloss.Style
	Selected lipgloss.Style
	Header   lipgloss.Style
	Done     lipgloss.Style

	MutedText     lipgloss.Style
	SecondaryText lipgloss.Style
	PrimaryBold   lipgloss.Style
	ErrorText     lipgloss.Style
	SuccessText   lipgloss.Style
}

// DefaultTheme returns the standard Dracula-inspired theme (adaptive).
// Styles are created once at startup instead of per-frame.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	t := Theme{
		Renderer: r,

		Primary:   ColorPrimary,
		Secondary: ColorSecondary,
		Subtext:   ColorSubtext,
		Muted:     ColorMuted,
		Highlight: ColorHighlight,
	}

	t.Base = r.NewStyle().Foreground(ColorText)

	t.Selected = r.NewStyle().
		Background(t.Highlight).
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(t.Primary).
		PaddingLeft(1).
		Bold(true)

	t.Header = r.NewStyle().
		Background(t.Primary).
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#282A36"}).
		Bold(true).
		Padding(0, 1)

	t.Done = r.NewStyle().Foreground(t.Muted).Strikethrough(true)

	t.MutedText = r.NewStyle().Foreground(t.Muted)
	t.SecondaryText = r.NewStyle().Foreground(t.Secondary)
	t.PrimaryBold = r.NewStyle().Foreground(t.Primary).Bold(true)
	t.ErrorText = r.NewStyle().Foreground(ColorDanger).Bold(true)
	t.SuccessText = r.NewStyle().Foreground(ColorSuccess)

	return t
}

// ApplyThemeMode forces adaptive colors to resolve against the persisted
// theme preference rather than the detected terminal background.
func ApplyThemeMode(r *lipgloss.Renderer, mode string) {
	r.SetHasDarkBackground(mode == ThemeDark)
}

// RenderPriorityBadge returns a styled priority badge. 16-color and lower
// terminals get a plain foreground instead of a down-converted background
// that may clash with the terminal's palette.
func RenderPriorityBadge(prio string) string {
	var fg, bg lipgloss.AdaptiveColor
	var label string

	switch prio {
	case "high":
		fg, bg, label = ColorPrioHigh, ColorPrioHighBg, "HI"
	case "medium":
		fg, bg, label = ColorPrioMedium, ColorPrioMediumBg, "MD"
	case "low":
		fg, bg, label = ColorPrioLow, ColorPrioLowBg, "LO"
	default:
		fg, bg, label = ColorMuted, ColorHighlight, "??"
	}

	if TermProfile < colorprofile.ANSI256 {
		return lipgloss.NewStyle().
			Foreground(ThemeFg(fg.Dark)).
			Bold(true).
			Render(label)
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Bold(true).
		Render(label)
}

// TestTheme returns a theme suitable for use in tests.
func TestTheme() Theme {
	return DefaultTheme(lipgloss.NewRenderer(os.Stdout))
}
