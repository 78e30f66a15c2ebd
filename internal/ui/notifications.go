package ui

import (
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	maxNotificationLines = 2
	truncationMark       = "..."
)

// Severity of a notification
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// Notification is a transient message shown under the table
type Notification struct {
	Message  string
	Severity Severity
}

// prefix returns the label rendered before the message
func (n Notification) prefix() string {
	switch n.Severity {
	case SeverityError:
		return "Error: "
	case SeverityWarning:
		return "Warning: "
	default:
		return ""
	}
}

// clearNotificationMsg is sent after the clear delay. seq identifies the notification
// it was scheduled for, so a newer notification is not cleared early.
type clearNotificationMsg struct {
	seq int
}

// NotificationManager handles notification display and auto-clearing
type NotificationManager struct {
	clearDelay time.Duration
	current    *Notification
	seq        int
}

// NewNotificationManager creates a new NotificationManager with the specified auto-clear delay
func NewNotificationManager(clearDelay time.Duration) *NotificationManager {
	return &NotificationManager{clearDelay: clearDelay}
}

// Notify shows a notification and returns the command that clears it
func (nm *NotificationManager) Notify(severity Severity, message string) tea.Cmd {
	nm.seq++
	nm.current = &Notification{Message: message, Severity: severity}

	seq := nm.seq
	return tea.Tick(nm.clearDelay, func(time.Time) tea.Msg {
		return clearNotificationMsg{seq: seq}
	})
}

// handleClear clears the current notification if msg belongs to it
func (nm *NotificationManager) handleClear(msg clearNotificationMsg) {
	if msg.seq == nm.seq {
		nm.current = nil
	}
}

// Current returns the notification on screen, or nil
func (nm *NotificationManager) Current() *Notification {
	return nm.current
}

// formatNotification formats a notification for TUI display.
// It wraps the text to maxWidth and limits it to maxNotificationLines, truncating with "...".
func formatNotification(n Notification, maxWidth int) string {
	prefix := n.prefix()
	if n.Message == "" {
		return prefix
	}

	firstLineWidth := maxWidth - utf8.RuneCountInString(prefix)
	if firstLineWidth < 10 {
		firstLineWidth = 10
	}
	otherLineWidth := maxWidth
	if otherLineWidth < 10 {
		otherLineWidth = 10
	}

	words := strings.Fields(n.Message)
	if len(words) == 0 {
		return prefix + n.Message
	}

	var lines []string
	var currentLine strings.Builder
	currentLineWidth := firstLineWidth
	truncated := false

	for i, word := range words {
		wordLen := utf8.RuneCountInString(word)
		currentLen := utf8.RuneCountInString(currentLine.String())

		if currentLen > 0 && currentLen+1+wordLen > currentLineWidth {
			lines = append(lines, currentLine.String())
			currentLine.Reset()

			if len(lines) >= maxNotificationLines {
				truncated = i < len(words)
				break
			}
			currentLineWidth = otherLineWidth
		}

		if currentLine.Len() > 0 {
			currentLine.WriteString(" ")
		}
		currentLine.WriteString(word)
	}

	if currentLine.Len() > 0 && len(lines) < maxNotificationLines {
		lines = append(lines, currentLine.String())
	}

	if truncated {
		last := lines[len(lines)-1]
		width := otherLineWidth
		if len(lines) == 1 {
			width = firstLineWidth
		}
		if runes := []rune(last); len(runes)+len(truncationMark) > width && width > len(truncationMark) {
			last = string(runes[:width-len(truncationMark)])
		}
		lines[len(lines)-1] = last + truncationMark
	}

	return prefix + strings.Join(lines, "\n")
}
