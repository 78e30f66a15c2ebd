package services

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/renato0307/prinbox/internal/domain"
	"github.com/renato0307/prinbox/internal/logging"
	"github.com/renato0307/prinbox/internal/ports"
)

// IdentityCache remembers the login behind each credential reference for the process lifetime.
// Only successful lookups are cached, so a failed lookup is retried on the next cycle.
type IdentityCache struct {
	group  singleflight.Group
	logins map[string]string
	mu     sync.RWMutex
	reader ports.IdentityReader
}

// NewIdentityCache creates a new IdentityCache
func NewIdentityCache(reader ports.IdentityReader) *IdentityCache {
	return &IdentityCache{
		logins: make(map[string]string),
		reader: reader,
	}
}

// Login returns the cached login for ref, looking it up with creds on a miss
func (c *IdentityCache) Login(ctx context.Context, ref string, creds ports.Credentials) (string, error) {
	c.mu.RLock()
	login, ok := c.logins[ref]
	c.mu.RUnlock()
	if ok {
		return login, nil
	}

	// Accounts sharing a credential reference may miss concurrently; only one lookup runs
	v, err, _ := c.group.Do(ref, func() (any, error) {
		login, err := c.reader.CurrentUser(ctx, creds)
		if err != nil {
			return "", err
		}

		c.mu.Lock()
		c.logins[ref] = login
		c.mu.Unlock()

		logging.Logger.Debug("Cached identity", "credential_ref", ref, "login", login)
		return login, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrIdentityLookup, err)
	}

	return v.(string), nil
}
