package services

import "sync"

// URLTable maps row keys to pull request web URLs for the process lifetime
type URLTable struct {
	mu   sync.RWMutex
	urls map[string]string
}

// NewURLTable creates an empty URLTable
func NewURLTable() *URLTable {
	return &URLTable{urls: make(map[string]string)}
}

// Put registers url under key, replacing any previous entry
func (t *URLTable) Put(key, url string) {
	if key == "" || url == "" {
		return
	}
	t.mu.Lock()
	t.urls[key] = url
	t.mu.Unlock()
}

// Lookup returns the URL registered under key
func (t *URLTable) Lookup(key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	url, ok := t.urls[key]
	return url, ok
}

// Len returns the number of registered URLs
func (t *URLTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.urls)
}
