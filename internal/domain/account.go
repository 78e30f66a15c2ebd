package domain

import "strings"

// DefaultAPIBase is used for accounts that do not configure their own API base URL
const DefaultAPIBase = "https://api.github.com"

// Scope controls whether account queries are restricted to specific repositories
type Scope string

const (
	ScopeAll      Scope = "all"
	ScopeSpecific Scope = "specific"
)

// NamedQuery is a configured search query with its display label
type NamedQuery struct {
	Label string // Section title, empty means "PRs"
	Query string // Platform search string, empty means "is:pr is:open"
}

// FilterConfig holds the per-account query configuration
type FilterConfig struct {
	Queries []NamedQuery // Ordered queries, empty means the default review-request query
	Repos   []string     // "owner/name" entries used when Scope is specific
	Scope   Scope        // all or specific
}

// Account is one authenticated identity on the hosting platform
type Account struct {
	APIBase     string       // REST API base URL
	Filters     FilterConfig // Query configuration
	ID          string       // Stable identifier from configuration
	Label       string       // Display label
	TokenEnvVar string       // Name of the environment variable holding the token
}

// DisplayLabel returns the label shown for the account: label, then id, then "Unknown"
func (a Account) DisplayLabel() string {
	if a.Label != "" {
		return a.Label
	}
	if a.ID != "" {
		return a.ID
	}
	return "Unknown"
}

// BaseURL returns the API base without a trailing slash
func (a Account) BaseURL() string {
	if a.APIBase == "" {
		return DefaultAPIBase
	}
	return strings.TrimRight(a.APIBase, "/")
}

// Query is a fully built search query for one refresh cycle
type Query struct {
	Label  string // Section label the results are grouped under
	Search string // Search string sent to the platform
}
