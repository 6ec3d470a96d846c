package theme

import "github.com/charmbracelet/lipgloss"

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue    = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorGreen   = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow  = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed     = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorMagenta = lipgloss.AdaptiveColor{Dark: "#CC5DE8", Light: "#805AD5"}
	ColorGray    = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite   = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorBlack   = lipgloss.AdaptiveColor{Dark: "#111111", Light: "#111111"}
	ColorSubtle  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"}
	ColorBorder  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// Container colors, named after the color tokens the notification types
// map to.
var (
	ColorPrimaryContainer   = lipgloss.AdaptiveColor{Dark: "#3B5B7A", Light: "#D3E4FF"}
	ColorSecondaryContainer = lipgloss.AdaptiveColor{Dark: "#4A5568", Light: "#DAE2F9"}
	ColorTertiaryContainer  = lipgloss.AdaptiveColor{Dark: "#5B4A7A", Light: "#F2DAFF"}
	ColorErrorContainer     = lipgloss.AdaptiveColor{Dark: "#8C1D18", Light: "#FFDAD6"}
)

// HeaderStyle is used for top-level section headers and the application title.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorBlue).
	Padding(0, 1)

// StatusBarStyle is used for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorSubtle).
	Padding(0, 1)

// DetailPanelStyle wraps the detail view content area.
var DetailPanelStyle = lipgloss.NewStyle().
	Padding(1, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// SectionTitleStyle renders the "Notification types" caption.
var SectionTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Padding(0, 1)

// CardStyle is the base style for a notification card.
var CardStyle = lipgloss.NewStyle().
	PaddingLeft(2)

// SelectedCardStyle highlights the focused notification card.
var SelectedCardStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(ColorBlue)

// CardTitleStyle renders the notification title.
var CardTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite)

// CardBodyStyle renders the notification body.
var CardBodyStyle = lipgloss.NewStyle().
	Foreground(ColorWhite)

// CardTimeStyle renders the formatted timestamp under the body.
var CardTimeStyle = lipgloss.NewStyle().
	Foreground(ColorGray)

// HelpStyle is used for keyboard shortcut hints and help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// ChipStyle returns the style of a filter chip in its selected or idle state.
func ChipStyle(selected bool) lipgloss.Style {
	base := lipgloss.NewStyle().
		Padding(0, 1).
		MarginRight(1).
		Border(lipgloss.RoundedBorder())

	if selected {
		return base.
			Bold(true).
			Foreground(ColorWhite).
			BorderForeground(ColorBlue)
	}
	return base.
		Foreground(ColorGray).
		BorderForeground(ColorBorder)
}
