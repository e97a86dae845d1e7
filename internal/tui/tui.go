// Package tui provides a Bubble Tea terminal user interface for modrinth-downloader.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/modrinth-downloader/internal/config"
	"github.com/handiism/modrinth-downloader/internal/download"
	ioutils "github.com/handiism/modrinth-downloader/internal/io"
	"github.com/handiism/modrinth-downloader/internal/manifest"
	"github.com/handiism/modrinth-downloader/internal/model"
	"github.com/handiism/modrinth-downloader/internal/modrinth"
	"github.com/handiism/modrinth-downloader/internal/report"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1BD96A")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#1BD96A")).
			Padding(1, 2)

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

const maxLogs = 10

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateLoading
	StateRunning
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   download.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state        State
	pathInput    textinput.Model
	versionInput textinput.Model
	spinner      spinner.Model
	progress     progress.Model
	settings     *config.Settings
	logs         []LogEntry
	err          error

	// Manifest contents
	items    []model.RequestItem
	warnings []manifest.Warning

	// Run context
	ctx     context.Context
	cancel  context.CancelFunc
	manager *download.Manager
	events  chan download.ProgressEvent

	// Run progress
	doneItems  int32
	totalItems int32
	received   int64
	summary    download.Summary
	outcomes   []download.Outcome

	// Options
	dryRun  bool
	verbose bool

	width  int
	height int
}

// NewModel creates a new TUI model. A nil settings uses the defaults.
func NewModel(settings *config.Settings) Model {
	if settings == nil {
		settings = config.DefaultSettings()
	}

	path := textinput.New()
	path.Placeholder = "modlist.txt"
	path.Prompt = "Manifest: "
	path.Focus()
	path.CharLimit = 500
	path.Width = 50

	ver := textinput.New()
	ver.Placeholder = "1.21.1"
	ver.Prompt = "Version:  "
	ver.CharLimit = 32
	ver.Width = 20

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#1BD96A"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:        StateInput,
		pathInput:    path,
		versionInput: ver,
		spinner:      sp,
		progress:     prog,
		settings:     settings,
		logs:         make([]LogEntry, 0),
		ctx:          ctx,
		cancel:       cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ProgressMsg is sent for every event the manager reports.
	ProgressMsg struct {
		Event download.ProgressEvent
	}

	// LoadDoneMsg is sent when the manifest has been parsed.
	LoadDoneMsg struct {
		Items    []model.RequestItem
		Warnings []manifest.Warning
		Err      error
	}

	// RunDoneMsg is sent when every item has an outcome.
	RunDoneMsg struct {
		Summary  download.Summary
		Outcomes []download.Outcome
		Err      error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateRunning || m.state == StateLoading {
				m.cancel()
			}

		case "tab", "shift+tab":
			if m.state == StateInput {
				m.toggleFocus()
				return m, nil
			}

		case "enter":
			if m.state == StateInput {
				if m.pathInput.Value() == "" || m.versionInput.Value() == "" {
					m.err = errors.New("manifest path and version are required")
					return m, nil
				}
				m.err = nil
				m.state = StateLoading
				return m, tea.Batch(loadManifest(m.pathInput.Value()), m.spinner.Tick)
			}

		case "ctrl+d":
			if m.state == StateInput {
				m.dryRun = !m.dryRun
				return m, nil
			}

		case "ctrl+v":
			if m.state == StateInput {
				m.verbose = !m.verbose
				return m, nil
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				m.reset()
				return m, textinput.Blink
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case LoadDoneMsg:
		if m.ctx.Err() != nil {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
			break
		}
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
			break
		}
		m.items = msg.Items
		m.warnings = msg.Warnings
		for _, w := range msg.Warnings {
			m.appendLog(LogEntry{Message: "manifest " + w.String(), Level: download.LevelWarning})
		}
		m.totalItems = int32(len(msg.Items))
		m.events = make(chan download.ProgressEvent, 64)
		m.manager = download.NewManager(m.settings, modrinth.NewClient(m.settings), m.forwardEvent(m.events))
		m.manager.SetDryRun(m.dryRun)
		m.state = StateRunning
		cmds = append(cmds, m.startRun(), waitForEvent(m.events), m.tickProgress())

	case ProgressMsg:
		if msg.Event.Level != download.LevelVerbose || m.verbose {
			m.appendLog(LogEntry{Message: msg.Event.Message, Level: msg.Event.Level})
		}
		cmds = append(cmds, waitForEvent(m.events))

	case RunDoneMsg:
		m.summary = msg.Summary
		m.outcomes = msg.Outcomes
		if m.manager != nil {
			m.doneItems, m.totalItems, m.received = m.manager.Progress()
		}
		switch {
		case msg.Err != nil:
			m.state = StateError
			m.err = msg.Err
		case m.ctx.Err() != nil:
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user (%s)", report.Counts(msg.Summary))
		default:
			m.state = StateComplete
		}

	case TickMsg:
		if m.manager != nil && m.state == StateRunning {
			m.doneItems, m.totalItems, m.received = m.manager.Progress()

			var percent float64
			if m.totalItems > 0 {
				percent = float64(m.doneItems) / float64(m.totalItems)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	if m.state == StateInput {
		var cmd tea.Cmd
		m.pathInput, cmd = m.pathInput.Update(msg)
		cmds = append(cmds, cmd)
		m.versionInput, cmd = m.versionInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) toggleFocus() {
	if m.pathInput.Focused() {
		m.pathInput.Blur()
		m.versionInput.Focus()
		return
	}
	m.versionInput.Blur()
	m.pathInput.Focus()
}

func (m *Model) appendLog(entry LogEntry) {
	m.logs = append(m.logs, entry)
	if len(m.logs) > maxLogs {
		m.logs = m.logs[len(m.logs)-maxLogs:]
	}
}

func (m *Model) reset() {
	m.state = StateInput
	m.logs = nil
	m.items = nil
	m.warnings = nil
	m.err = nil
	m.doneItems = 0
	m.totalItems = 0
	m.received = 0
	m.summary = download.Summary{}
	m.outcomes = nil
	m.manager = nil
	m.events = nil
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.progress.SetPercent(0)
	m.versionInput.Blur()
	m.pathInput.Focus()
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("Modrinth Downloader"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Fetch plugins, datapacks and mods for a game version"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateLoading:
		b.WriteString(m.viewLoading())
	case StateRunning:
		b.WriteString(m.viewRunning())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Manifest and target version:"))
	b.WriteString("\n\n")
	b.WriteString(m.pathInput.View())
	b.WriteString("\n")
	b.WriteString(m.versionInput.View())
	b.WriteString("\n\n")

	dryRunCheck := "[ ]"
	if m.dryRun {
		dryRunCheck = "[x]"
	}
	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[x]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Dry run (ctrl+d)\n", dryRunCheck))
	b.WriteString(fmt.Sprintf("  %s Verbose/debug output (ctrl+v)\n", verboseCheck))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Output root: %s | Workers: %d", m.settings.OutputRoot, m.settings.MaxConcurrency)))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewLoading() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Reading manifest..."))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewRunning() string {
	var b strings.Builder

	counts := make(map[model.Category]int)
	for _, item := range m.items {
		counts[item.Category]++
	}
	for _, c := range model.Categories() {
		if counts[c] > 0 {
			b.WriteString(categoryStyle.Render(fmt.Sprintf("  %s: %d", c.Dir(), counts[c])))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	var percent float64
	if m.totalItems > 0 {
		percent = float64(m.doneItems) / float64(m.totalItems)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")

	b.WriteString(infoStyle.Render(fmt.Sprintf(
		"Items: %d/%d | Downloaded: %.2f MB",
		m.doneItems,
		m.totalItems,
		float64(m.received)/1024/1024,
	)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	title := "Run Complete!"
	if m.dryRun {
		title = "Dry Run Complete!"
	}
	box := boxStyle.Render(fmt.Sprintf(
		"%s\n\n"+
			"Downloaded: %d\n"+
			"Skipped: %d\n"+
			"Planned: %d\n"+
			"Failed: %d\n"+
			"Size: %.2f MB",
		title,
		m.summary.Succeeded,
		m.summary.Skipped,
		m.summary.Planned,
		m.summary.Failed,
		float64(m.received)/1024/1024,
	))
	b.WriteString(box)
	b.WriteString("\n\n")

	for _, o := range m.outcomes {
		if o.Kind.Failed() {
			b.WriteString(errorStyle.Render(fmt.Sprintf("x %s: %v", o.Item, o.Err)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case download.LevelError:
			style = errorStyle
			prefix = "✗"
		case download.LevelWarning:
			style = warningStyle
			prefix = "!"
		case download.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case download.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: start • tab: next field • ctrl+d: dry run • ctrl+v: verbose • esc: quit"
	case StateLoading, StateRunning:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: new run • q: quit"
	}
	return ""
}

// forwardEvent returns a progress callback that hands events to the UI
// loop. Sends give up once the run is cancelled.
func (m Model) forwardEvent(events chan<- download.ProgressEvent) func(download.ProgressEvent) {
	ctx := m.ctx
	return func(event download.ProgressEvent) {
		select {
		case events <- event:
		case <-ctx.Done():
		}
	}
}

// loadManifest parses the manifest file in the background.
func loadManifest(path string) tea.Cmd {
	return func() tea.Msg {
		items, warnings, err := manifest.ParseFile(path)
		return LoadDoneMsg{Items: items, Warnings: warnings, Err: err}
	}
}

// waitForEvent delivers the next progress event. It yields nothing once
// the channel is closed.
func waitForEvent(events <-chan download.ProgressEvent) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return nil
		}
		return ProgressMsg{Event: event}
	}
}

// startRun runs the manager in the background. Real runs hold the run
// lock; dry runs write nothing and skip it.
func (m Model) startRun() tea.Cmd {
	ctx := m.ctx
	manager := m.manager
	events := m.events
	items := m.items
	target := strings.TrimSpace(m.versionInput.Value())
	lockPath := m.settings.LockPath()
	dryRun := m.dryRun

	return func() tea.Msg {
		defer close(events)

		if !dryRun {
			lock, err := ioutils.AcquireRunLock(lockPath)
			if err != nil {
				return RunDoneMsg{Err: err}
			}
			defer lock.Release()
		}

		summary, outcomes := manager.Run(ctx, items, target)
		return RunDoneMsg{Summary: summary, Outcomes: outcomes}
	}
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
