package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrConfig            = errors.New("invalid configuration")
	ErrCredentialMissing = errors.New("credential missing")
	ErrEnrichmentFailed  = errors.New("enrichment failed")
	ErrIdentityLookup    = errors.New("identity lookup failed")
	ErrInstanceRunning   = errors.New("another instance is already running")
	ErrQueryFailed       = errors.New("query failed")
)

// APIError is a non-2xx response from the hosting platform
type APIError struct {
	Errors     []string // Entries of the "errors" field, rendered as text
	Message    string   // The "message" field of the error body
	StatusCode int
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "API error %d", e.StatusCode)
	if e.Message != "" {
		fmt.Fprintf(&b, ": %s", e.Message)
	}
	if len(e.Errors) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(e.Errors, "; "))
	}
	return b.String()
}

// WarningKind classifies a recoverable failure surfaced to the user
type WarningKind string

const (
	WarningConfig            WarningKind = "config"
	WarningCredentialMissing WarningKind = "credential_missing"
	WarningEnrichmentFailure WarningKind = "enrichment_failure"
	WarningQueryFailure      WarningKind = "query_failure"
)

// Warning is a non-fatal problem encountered during a refresh cycle
type Warning struct {
	Account string      // Account display label, empty when not account-specific
	Kind    WarningKind // Failure class
	Message string      // User-facing description
	Query   string      // Query label, empty when not query-specific
}

func (w Warning) String() string {
	switch {
	case w.Account != "" && w.Query != "":
		return fmt.Sprintf("%s / %s: %s", w.Account, w.Query, w.Message)
	case w.Account != "":
		return fmt.Sprintf("%s: %s", w.Account, w.Message)
	default:
		return w.Message
	}
}
