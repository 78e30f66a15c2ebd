package ui

import (
	"fmt"

	"github.com/renato0307/prinbox/internal/theme"
	"github.com/renato0307/prinbox/internal/version"
)

// renderHeader creates the header used across the application: app name with
// version, tagline, and an optional subtitle for dialogs.
func renderHeader(subtitle string) string {
	appNameLine := theme.AppNameStyle.Render("prinbox")
	if version.Version != "" {
		appNameLine += theme.VersionStyle.Render(fmt.Sprintf(" %s", version.Version))
	}

	result := appNameLine + "  " + theme.TaglineStyle.Render(version.Tagline)

	if subtitle != "" {
		result += "\n\n" + theme.SubtitleStyle.Render(subtitle)
	}

	result += "\n"
	return result
}
