package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/prinbox/internal/config"
	"github.com/renato0307/prinbox/internal/domain"
	"github.com/renato0307/prinbox/internal/logging"
	"github.com/renato0307/prinbox/internal/ports"
	"github.com/renato0307/prinbox/internal/theme"
)

type uiState int

const (
	stateList uiState = iota
	stateHelp
)

const (
	defaultWidth  = 120
	defaultHeight = 30

	// header + status bar + spacing above the table, spacing + notification + help below it
	chromeHeight = 7
)

// Refresher runs refresh cycles on demand
type Refresher interface {
	Refresh(ctx context.Context, trigger domain.Trigger) (*domain.Snapshot, bool)
}

// URLResolver maps row keys to pull request URLs
type URLResolver interface {
	Lookup(key string) (string, bool)
}

// ModelConfig holds everything needed to build a dashboard Model
type ModelConfig struct {
	AutoRefresh          bool                     // Model runs the startup cycle and interval ticks itself
	Context              context.Context          // Bounds refreshes started from the dashboard
	Initial              *domain.Snapshot         // Snapshot to show before the first update arrives
	Keys                 config.KeyBindingsConfig // Custom key bindings
	Layout               string                   // config.LayoutGrouped or config.LayoutFlat
	NotificationDuration time.Duration            // How long notifications stay on screen
	Opener               ports.URLOpener          // Nil shows the URL instead of opening a browser
	RefreshInterval      time.Duration            // Time between timer refreshes when AutoRefresh is set
	Refresher            Refresher
	StartupError         error                   // Shown once when the dashboard starts
	Updates              <-chan *domain.Snapshot // Snapshots published by the scheduler
	URLs                 URLResolver
}

// tableLine is one rendered line of the table area
type tableLine struct {
	row  int // Index into visible, -1 for titles, headers and spacing
	text string
}

// Model is the PR inbox dashboard
type Model struct {
	autoRefresh   bool
	ctx           context.Context
	fetching      bool // A refresh started or observed by the dashboard is running
	flat          bool
	height        int
	helpScreen    *Dialog
	interval      time.Duration
	keys          KeyMap
	now           func() time.Time
	notifications *NotificationManager
	offset        int // First table line shown
	opener        ports.URLOpener
	refresher     Refresher
	selected      int    // Index into visible
	selectedKey   string // Row key of the selection, kept across refreshes
	snapshot      *domain.Snapshot
	spinner       spinner.Model
	startupError  error
	state         uiState
	updates       <-chan *domain.Snapshot
	urls          URLResolver
	visible       []domain.ClassifiedRow // Rows in display order for the current layout
	width         int
}

// NewModel creates the dashboard model
func NewModel(cfg ModelConfig) *Model {
	ctx := cfg.Context
	if ctx == nil {
		ctx = context.Background()
	}

	notificationDuration := cfg.NotificationDuration
	if notificationDuration <= 0 {
		notificationDuration = 10 * time.Second
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = theme.SpinnerStyle

	m := &Model{
		autoRefresh:   cfg.AutoRefresh,
		ctx:           ctx,
		flat:          cfg.Layout == config.LayoutFlat,
		height:        defaultHeight,
		interval:      cfg.RefreshInterval,
		keys:          NewKeyMap(cfg.Keys),
		now:           time.Now,
		notifications: NewNotificationManager(notificationDuration),
		opener:        cfg.Opener,
		refresher:     cfg.Refresher,
		spinner:       s,
		startupError:  cfg.StartupError,
		state:         stateList,
		updates:       cfg.Updates,
		urls:          cfg.URLs,
		width:         defaultWidth,
	}
	if cfg.Initial != nil {
		m.snapshot = cfg.Initial
		m.rebuildRows()
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.updates != nil {
		cmds = append(cmds, waitForSnapshot(m.updates))
	}
	if m.startupError != nil {
		cmds = append(cmds, m.notifications.Notify(SeverityError, m.startupError.Error()))
	}
	if m.autoRefresh {
		cmds = append(cmds, m.startRefresh(domain.TriggerStartup, true))
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureVisible()
		if m.state == stateHelp {
			return m.updateHelp(msg)
		}
		return m, nil

	case refreshDoneMsg:
		var cmds []tea.Cmd
		if msg.ran {
			m.fetching = false
			cmds = append(cmds, m.applySnapshot(msg.snapshot))
		}
		if msg.fromTimer && m.autoRefresh {
			cmds = append(cmds, m.scheduleTick())
		}
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.fetching = false
		return m, tea.Batch(m.applySnapshot(msg.snapshot), waitForSnapshot(m.updates))

	case tickMsg:
		return m, m.startRefresh(domain.TriggerTimer, true)

	case openedMsg:
		if msg.err != nil {
			logging.Logger.Warn("Failed to open pull request", "url", msg.url, "error", msg.err)
			return m, m.notifications.Notify(SeverityError, fmt.Sprintf("failed to open browser: %v", msg.err))
		}
		return m, nil

	case clearNotificationMsg:
		m.notifications.handleClear(msg)
		return m, nil

	case spinner.TickMsg:
		if !m.fetching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	switch m.state {
	case stateHelp:
		return m.updateHelp(msg)
	default:
		return m.updateList(msg)
	}
}

func (m *Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Application.Quit, m.keys.Application.ForceQuit):
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Application.Help):
		m.helpScreen = NewDialog("Help", NewHelpScreen(&m.keys))
		m.state = stateHelp
		// Send initial WindowSizeMsg so the viewport can initialize
		initCmd := m.helpScreen.Init()
		_, sizeCmd := m.helpScreen.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		return m, tea.Batch(initCmd, sizeCmd)

	case key.Matches(keyMsg, m.keys.Application.Refresh):
		logging.Logger.Debug("Manual refresh requested")
		return m, m.startRefresh(domain.TriggerManual, false)

	case key.Matches(keyMsg, m.keys.Application.Layout):
		m.flat = !m.flat
		m.rebuildRows()
		return m, nil

	case key.Matches(keyMsg, m.keys.Actions.Open):
		return m, m.openSelected()

	case key.Matches(keyMsg, m.keys.Navigation.Up):
		m.moveSelection(-1)
	case key.Matches(keyMsg, m.keys.Navigation.Down):
		m.moveSelection(1)
	case key.Matches(keyMsg, m.keys.Navigation.PageUp):
		m.moveSelection(-m.tableHeight())
	case key.Matches(keyMsg, m.keys.Navigation.PageDown):
		m.moveSelection(m.tableHeight())
	case key.Matches(keyMsg, m.keys.Navigation.Top):
		m.moveSelection(-len(m.visible))
	case key.Matches(keyMsg, m.keys.Navigation.Bottom):
		m.moveSelection(len(m.visible))
	}
	return m, nil
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.helpScreen.Update(msg)
	m.helpScreen = updated.(*Dialog)

	if content, ok := m.helpScreen.Content().(*HelpScreen); ok && content.Completed {
		m.state = stateList
		m.helpScreen = nil
		return m, nil
	}
	return m, cmd
}

// startRefresh marks the dashboard as fetching and runs a cycle in the background
func (m *Model) startRefresh(trigger domain.Trigger, fromTimer bool) tea.Cmd {
	if m.refresher == nil {
		return nil
	}
	m.fetching = true

	ctx := m.ctx
	refresher := m.refresher
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		snap, ran := refresher.Refresh(ctx, trigger)
		return refreshDoneMsg{fromTimer: fromTimer, ran: ran, snapshot: snap}
	})
}

func (m *Model) scheduleTick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// waitForSnapshot blocks until the scheduler publishes. A closed channel ends the loop.
func waitForSnapshot(updates <-chan *domain.Snapshot) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		snap, ok := <-updates
		if !ok {
			return nil
		}
		return snapshotMsg{snapshot: snap}
	}
}

// applySnapshot replaces the displayed data and announces the update
func (m *Model) applySnapshot(snap *domain.Snapshot) tea.Cmd {
	if snap == nil {
		return nil
	}
	if m.snapshot != nil && m.snapshot.ID == snap.ID {
		return nil
	}

	m.snapshot = snap
	m.rebuildRows()

	message := fmt.Sprintf("Dashboard updated: %d PRs found", snap.Total)
	if len(snap.Warnings) == 0 {
		return m.notifications.Notify(SeverityInfo, message)
	}

	details := make([]string, len(snap.Warnings))
	for i, w := range snap.Warnings {
		details[i] = w.String()
	}
	return m.notifications.Notify(SeverityWarning, message+" | "+strings.Join(details, "; "))
}

// rebuildRows recomputes the visible rows and restores the selection by row key
func (m *Model) rebuildRows() {
	m.visible = nil
	if m.snapshot != nil {
		if m.flat {
			m.visible = m.snapshot.Flat()
		} else {
			for _, g := range m.snapshot.Groups {
				m.visible = append(m.visible, g.Rows...)
			}
		}
	}

	if len(m.visible) == 0 {
		m.selected = 0
		m.offset = 0
		return
	}

	found := false
	if m.selectedKey != "" {
		for i, row := range m.visible {
			if row.Key == m.selectedKey {
				m.selected = i
				found = true
				break
			}
		}
	}
	if !found {
		m.selected = min(m.selected, len(m.visible)-1)
	}
	m.selectedKey = m.visible[m.selected].Key
	m.ensureVisible()
}

func (m *Model) moveSelection(delta int) {
	if len(m.visible) == 0 {
		return
	}
	m.selected = max(0, min(len(m.visible)-1, m.selected+delta))
	m.selectedKey = m.visible[m.selected].Key
	m.ensureVisible()
}

// SelectedRow returns the row under the cursor
func (m *Model) SelectedRow() (domain.ClassifiedRow, bool) {
	if len(m.visible) == 0 {
		return domain.ClassifiedRow{}, false
	}
	return m.visible[m.selected], true
}

// openSelected opens the selected pull request, or shows its URL when no opener is set
func (m *Model) openSelected() tea.Cmd {
	row, ok := m.SelectedRow()
	if !ok {
		return m.notifications.Notify(SeverityWarning, "No PR selected")
	}

	url, found := "", false
	if m.urls != nil {
		url, found = m.urls.Lookup(row.Key)
	}
	if !found {
		logging.Logger.Warn("URL not found for selected row", "key", row.Key)
		return m.notifications.Notify(SeverityError, "URL not found for selected PR")
	}

	if m.opener == nil {
		return m.notifications.Notify(SeverityInfo, url)
	}

	logging.Logger.Info("Opening pull request", "url", url)
	opener := m.opener
	return tea.Batch(
		m.notifications.Notify(SeverityInfo, "Opening: "+url),
		func() tea.Msg {
			return openedMsg{err: opener.Open(url), url: url}
		},
	)
}

func (m *Model) tableHeight() int {
	return max(3, m.height-chromeHeight)
}

// tableLines renders every line of the table area for the current layout
func (m *Model) tableLines() []tableLine {
	widths := columnWidths(m.width)
	header := theme.ColumnHeaderStyle.Render(renderCells(Columns, widths))
	now := m.now()

	var lines []tableLine
	if m.flat {
		lines = append(lines, tableLine{row: -1, text: header})
		for i, row := range m.visible {
			lines = append(lines, tableLine{row: i, text: m.renderRow(row, i, widths, now)})
		}
		return lines
	}

	index := 0
	for _, g := range m.snapshot.Groups {
		if len(g.Rows) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, tableLine{row: -1})
		}
		title := fmt.Sprintf("📌 %s (%d)", g.Label, len(g.Rows))
		lines = append(lines,
			tableLine{row: -1, text: theme.SectionTitleStyle.Render(title)},
			tableLine{row: -1, text: header})
		for _, row := range g.Rows {
			lines = append(lines, tableLine{row: index, text: m.renderRow(row, index, widths, now)})
			index++
		}
	}
	return lines
}

func (m *Model) renderRow(row domain.ClassifiedRow, index int, widths []int, now time.Time) string {
	cells := RowCells(row, now)
	if index == m.selected {
		return theme.SelectedRowStyle.Render(renderCells(cells, widths))
	}
	status := theme.PriorityStyle(row.Classification).Render(fitCell(cells[0], widths[0]))
	rest := theme.NormalStyle.Render(renderCells(cells[1:], widths[1:]))
	return status + " " + rest
}

// ensureVisible scrolls so the selected row is inside the table area
func (m *Model) ensureVisible() {
	if len(m.visible) == 0 {
		m.offset = 0
		return
	}

	lines := m.tableLines()
	selectedLine := 0
	for i, l := range lines {
		if l.row == m.selected {
			selectedLine = i
			break
		}
	}

	h := m.tableHeight()
	if selectedLine < m.offset {
		m.offset = selectedLine
		// Keep the section title and column header of the first row in view
		if m.selected == 0 {
			m.offset = 0
		}
	}
	if selectedLine >= m.offset+h {
		m.offset = selectedLine - h + 1
	}
	m.offset = max(0, min(m.offset, len(lines)-h))
}

func (m *Model) statusLine() string {
	if m.fetching {
		return m.spinner.View() + " Fetching PRs..."
	}
	if m.snapshot == nil {
		return "Waiting for first refresh..."
	}
	return fmt.Sprintf("%d PRs | Last updated: %s", m.snapshot.Total, m.snapshot.CompletedAt.Local().Format("15:04:05"))
}

func (m *Model) shortHelp() string {
	parts := make([]string, 0, len(m.keys.ShortHelp()))
	for _, b := range m.keys.ShortHelp() {
		help := b.Help()
		parts = append(parts, theme.HelpShortcutStyle.Render(help.Key)+" "+theme.HelpLabelStyle.Render(help.Desc))
	}
	return strings.Join(parts, theme.MutedStyle.Render(" • "))
}

func (m *Model) tableView() string {
	switch {
	case m.snapshot == nil:
		return theme.MutedStyle.Render("Loading pull requests...")
	case m.snapshot.Accounts == 0:
		return theme.MutedStyle.Render("No accounts configured. Run 'prinbox init' to create a configuration.")
	case len(m.visible) == 0:
		return theme.MutedStyle.Render("No pull requests need your attention.")
	}

	lines := m.tableLines()
	end := min(len(lines), m.offset+m.tableHeight())
	start := min(m.offset, end)

	out := make([]string, 0, end-start)
	for _, l := range lines[start:end] {
		out = append(out, l.text)
	}
	return strings.Join(out, "\n")
}

func (m *Model) notificationView() string {
	n := m.notifications.Current()
	if n == nil {
		return " \n "
	}

	text := formatNotification(*n, m.width)
	if !strings.Contains(text, "\n") {
		text += "\n "
	}
	switch n.Severity {
	case SeverityError:
		return theme.ErrorStyle.Render(text)
	case SeverityWarning:
		return theme.WarningStyle.Render(text)
	default:
		return theme.InfoStyle.Render(text)
	}
}

func (m *Model) View() string {
	if m.state == stateHelp && m.helpScreen != nil {
		return m.helpScreen.View()
	}

	var b strings.Builder
	b.WriteString(renderHeader(""))
	b.WriteString(theme.StatusBarStyle.Render(m.statusLine()))
	b.WriteString("\n\n")
	b.WriteString(m.tableView())
	b.WriteString("\n\n")
	b.WriteString(m.notificationView())
	b.WriteString("\n")
	b.WriteString(m.shortHelp())
	return b.String()
}
