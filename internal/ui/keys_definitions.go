package ui

import (
	"sort"
	"sync"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults []string
	Help     string
	Name     string
}

// AllKeyDefinitions contains all configurable key bindings
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Defaults: []string{"?", "h"}, Help: "show keyboard shortcuts"},
	{Name: "layout", Defaults: []string{"g"}, Help: "toggle grouped/flat layout"},
	{Name: "quit", Defaults: []string{"q"}, Help: "exit application"},
	{Name: "refresh", Defaults: []string{"r"}, Help: "refresh now"},

	// Navigation keys
	{Name: "bottom", Defaults: []string{"end", "G"}, Help: "select last pull request"},
	{Name: "down", Defaults: []string{"down", "j"}, Help: "select next pull request"},
	{Name: "page_down", Defaults: []string{"pgdown", "ctrl+d"}, Help: "page down"},
	{Name: "page_up", Defaults: []string{"pgup", "ctrl+u"}, Help: "page up"},
	{Name: "top", Defaults: []string{"home"}, Help: "select first pull request"},
	{Name: "up", Defaults: []string{"up", "k"}, Help: "select previous pull request"},

	// Pull request actions
	{Name: "open", Defaults: []string{"enter", "o"}, Help: "open pull request in browser"},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name.
// Returns nil if not found.
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order.
// The result is cached after the first call.
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}
