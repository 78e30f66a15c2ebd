package version

import "fmt"

// Tagline is the application's tagline used in help text
const Tagline = "One inbox for the pull requests waiting on you, across every account"

// Build information injected at build time via ldflags
var (
	Version   = "dev"     // Semantic version or "dev"
	Commit    = "unknown" // Git commit hash
	Date      = "unknown" // Build date (RFC3339)
	GoVersion = "unknown" // Go version used
)

// Info returns formatted version information
func Info() string {
	return fmt.Sprintf("prinbox %s (commit: %s, built: %s, go: %s)",
		Version, Commit, Date, GoVersion)
}

// UserAgent returns the User-Agent sent with outbound API requests
func UserAgent() string {
	return "prinbox/" + Version
}
