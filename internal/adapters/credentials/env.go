package credentials

import (
	"os"
	"strings"

	"github.com/renato0307/prinbox/internal/ports"
)

// EnvSource implements ports.CredentialSource over process environment variables
type EnvSource struct {
	lookup func(string) (string, bool)
}

// Verify interface compliance at compile time
var _ ports.CredentialSource = (*EnvSource)(nil)

// NewEnvSource creates a new EnvSource
func NewEnvSource() *EnvSource {
	return &EnvSource{lookup: os.LookupEnv}
}

// Lookup returns the trimmed value of the environment variable name
func (s *EnvSource) Lookup(name string) (string, bool) {
	value, ok := s.lookup(name)
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}
