package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - section titles
)

// Priority tier colors
const (
	ColorHigh     Color = "196" // Red - action needed
	ColorLow      Color = "2"   // Green - own PRs
	ColorMedium   Color = "214" // Orange - waiting on others
	ColorWatching Color = "241" // Gray - watching
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorInfo      Color = "86"  // Cyan
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSelected  Color = "237" // Selected row background
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
	ColorWarning   Color = "214" // Orange
)

// Accent colors
const (
	ColorHelpGroup Color = "141" // Purple
	ColorSpinner   Color = "205" // Pink
)
