package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/prinbox/internal/domain"
	"github.com/renato0307/prinbox/internal/theme"
)

// HelpScreen displays keyboard shortcuts and legends
type HelpScreen struct {
	Completed   bool
	content     string         // Pre-built help content
	height      int            // Terminal height
	initialized bool           // Track if viewport has been sized
	keys        *KeyMap        // Key bindings to display
	viewport    viewport.Model // Scrollable viewport
	width       int            // Terminal width
}

// renderShortcut renders a single shortcut line with key and description
func renderShortcut(key, description string) string {
	return theme.HelpKeyStyle.Render(key) + theme.HelpDescStyle.Render(description) + "\n"
}

// renderBinding renders a single shortcut line from a key binding
func renderBinding(binding key.Binding) string {
	help := binding.Help()
	return renderShortcut(help.Key, help.Desc)
}

// buildHelpContent builds the complete help text content using key bindings
func buildHelpContent(keys *KeyMap) string {
	var b strings.Builder

	b.WriteString(theme.HelpGroupStyle.Render("Navigation") + "\n")
	b.WriteString(renderBinding(keys.Navigation.Up))
	b.WriteString(renderBinding(keys.Navigation.Down))
	b.WriteString(renderBinding(keys.Navigation.PageUp))
	b.WriteString(renderBinding(keys.Navigation.PageDown))
	b.WriteString(renderBinding(keys.Navigation.Top))
	b.WriteString(renderBinding(keys.Navigation.Bottom))

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Pull Requests") + "\n")
	b.WriteString(renderBinding(keys.Actions.Open))

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Application") + "\n")
	b.WriteString(renderBinding(keys.Application.Refresh))
	b.WriteString(renderBinding(keys.Application.Layout))
	b.WriteString(renderBinding(keys.Application.Help))
	b.WriteString(renderBinding(keys.Application.Quit))
	b.WriteString(renderBinding(keys.Application.ForceQuit))

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Status (read-only)") + "\n")
	b.WriteString(renderShortcut("🔴", "high priority: your action is needed"))
	b.WriteString(renderShortcut("🟡", "medium priority: waiting on others"))
	b.WriteString(renderShortcut("🟢", "your pull request, nothing blocking"))
	b.WriteString(renderShortcut("⚪", "watching only"))

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Checks (read-only)") + "\n")
	b.WriteString(renderShortcut(domain.CheckStatusSuccess.Symbol(), "all checks passed"))
	b.WriteString(renderShortcut(domain.CheckStatusPending.Symbol(), "checks running"))
	b.WriteString(renderShortcut(domain.CheckStatusFailing.Symbol(), "a check failed"))
	b.WriteString(renderShortcut(domain.CheckStatusUnknown.Symbol(), "no check information"))

	return b.String()
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys),
		keys:     keys,
		viewport: viewport.New(0, 0),
	}
}

// Init implements tea.Model
func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys("up", "k")
	h.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

// Update implements tea.Model
func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width = msg.Width
		h.height = msg.Height

		// Dialog header: 4 lines, Footer: 2 lines
		viewportHeight := msg.Height - 6
		if viewportHeight < 5 {
			viewportHeight = 5
		}

		h.viewport.Width = msg.Width
		h.viewport.Height = viewportHeight
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "esc" || key.Matches(msg, h.keys.Application.Quit, h.keys.Application.Help) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements tea.Model
func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}

	footer := theme.HelpStyle.Render("Press esc, q, h, or ? to close • ↑↓/jk/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n\n" + footer
}
