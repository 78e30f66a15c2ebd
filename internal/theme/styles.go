package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/prinbox/internal/domain"
)

// Main UI styles
var (
	HelpLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)
)

// Header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Table styles
var (
	ColumnHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle).
				Bold(true)

	SectionTitleStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true)

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Background(ColorSelected).
				Bold(true)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(25)
)

// Notification styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
)

// Spinner style
var SpinnerStyle = lipgloss.NewStyle().
	Foreground(ColorSpinner)

// PriorityStyle returns the style used for the status cell of a classification
func PriorityStyle(c domain.Classification) lipgloss.Style {
	switch {
	case c.Priority == domain.PriorityHigh:
		return lipgloss.NewStyle().Foreground(ColorHigh).Bold(true)
	case c.Priority == domain.PriorityMedium:
		return lipgloss.NewStyle().Foreground(ColorMedium)
	case c.Label == domain.StatusWatching:
		return lipgloss.NewStyle().Foreground(ColorWatching)
	default:
		return lipgloss.NewStyle().Foreground(ColorLow)
	}
}
