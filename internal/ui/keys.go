package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/prinbox/internal/config"
)

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Actions     ActionKeys
	Application ApplicationKeys
	Navigation  NavigationKeys
}

// ActionKeys defines key bindings acting on the selected pull request
type ActionKeys struct {
	Open key.Binding
}

// ApplicationKeys defines key bindings for application-level actions
type ApplicationKeys struct {
	ForceQuit key.Binding
	Help      key.Binding
	Layout    key.Binding
	Quit      key.Binding
	Refresh   key.Binding
}

// NavigationKeys defines key bindings for moving the selection
type NavigationKeys struct {
	Bottom   key.Binding
	Down     key.Binding
	PageDown key.Binding
	PageUp   key.Binding
	Top      key.Binding
	Up       key.Binding
}

// NewKeyMap creates a new KeyMap with all key bindings initialized.
// Pass nil for customKeys to use default bindings.
func NewKeyMap(customKeys config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		Actions: ActionKeys{
			Open: buildBinding("open", defaults, customKeys),
		},
		Application: ApplicationKeys{
			ForceQuit: buildBinding("force_quit", defaults, customKeys),
			Help:      buildBinding("help", defaults, customKeys),
			Layout:    buildBinding("layout", defaults, customKeys),
			Quit:      buildBinding("quit", defaults, customKeys),
			Refresh:   buildBinding("refresh", defaults, customKeys),
		},
		Navigation: NavigationKeys{
			Bottom:   buildBinding("bottom", defaults, customKeys),
			Down:     buildBinding("down", defaults, customKeys),
			PageDown: buildBinding("page_down", defaults, customKeys),
			PageUp:   buildBinding("page_up", defaults, customKeys),
			Top:      buildBinding("top", defaults, customKeys),
			Up:       buildBinding("up", defaults, customKeys),
		},
	}
}

// ShortHelp returns a curated list of key bindings for the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Actions.Open,
		k.Application.Refresh,
		k.Application.Layout,
		k.Application.Help,
		k.Application.Quit,
	}
}

// buildBinding creates a key.Binding from the key definition, using custom keys if provided
func buildBinding(name string, defaults map[string][]string, customKeys config.KeyBindingsConfig) key.Binding {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := defaults[name]
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = custom
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), def.Help),
	)
}
