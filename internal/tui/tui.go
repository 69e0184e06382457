// Package tui provides a Bubble Tea terminal user interface for
// lyrics-corpus.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/lyrics-corpus/internal/config"
	"github.com/handiism/lyrics-corpus/internal/download"
	"github.com/handiism/lyrics-corpus/internal/genius"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
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
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
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
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	token     string
	logs      []LogEntry
	result    *download.Result
	err       error

	// Pipeline context
	ctx    context.Context
	cancel context.CancelFunc

	// Running pipeline
	manager *download.Manager
	events  chan download.ProgressEvent

	// Pipeline progress
	savedSongs int32
	totalSongs int32

	// Options
	saveImage bool
	verbose   bool

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(settings *config.Settings, token string) Model {
	ti := textinput.New()
	ti.Placeholder = "Artist name, e.g. Eminem"
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		settings:  settings,
		token:     token,
		logs:      make([]LogEntry, 0),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ProgressMsg carries one pipeline progress event.
	ProgressMsg struct {
		Event download.ProgressEvent
	}

	// RunDoneMsg is sent when the pipeline finishes.
	RunDoneMsg struct {
		Result *download.Result
		Err    error
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
			if m.state == StateRunning {
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "enter":
			if m.state == StateInput && m.textInput.Value() != "" {
				m.state = StateRunning
				return m, tea.Batch(m.startPipeline(), m.waitForEvent(), m.tickProgress(), m.spinner.Tick)
			}

		case "i":
			if m.state == StateInput {
				m.saveImage = !m.saveImage
			}

		case "v":
			if m.state == StateInput {
				m.verbose = !m.verbose
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Reset for a new run
				m.state = StateInput
				m.logs = nil
				m.result = nil
				m.err = nil
				m.manager = nil
				m.events = nil
				m.savedSongs = 0
				m.totalSongs = 0
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.textInput.SetValue("")
				m.textInput.Focus()
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		if msg.Event.Level != download.LevelVerbose || m.verbose {
			m.logs = append(m.logs, LogEntry{
				Message: msg.Event.Message,
				Level:   msg.Event.Level,
			})
			// Keep only last 10 logs
			if len(m.logs) > 10 {
				m.logs = m.logs[len(m.logs)-10:]
			}
		}
		cmds = append(cmds, m.waitForEvent())

	case RunDoneMsg:
		if m.ctx.Err() != nil {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		} else if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.state = StateComplete
			m.result = msg.Result
		}

	case TickMsg:
		if m.manager != nil && m.state == StateRunning {
			saved, total := m.manager.GetProgress()
			m.savedSongs = saved
			m.totalSongs = total

			var percent float64
			if total > 0 {
				percent = float64(saved) / float64(total)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Update text input
	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// startPipeline builds the client and manager and runs the pipeline in the
// background. Progress events are forwarded through m.events.
func (m *Model) startPipeline() tea.Cmd {
	settings := *m.settings
	settings.SaveArtistImage = m.saveImage

	events := make(chan download.ProgressEvent, 64)
	m.events = events

	client := genius.NewClient(genius.ClientOptions{
		Token:              m.token,
		Timeout:            time.Duration(settings.TimeoutSeconds) * time.Second,
		SkipNonSongs:       settings.SkipNonSongs,
		ExcludedTerms:      settings.ExcludedTerms,
		MaxConcurrentFetch: settings.MaxConcurrentFetch,
		MaxRetries:         settings.FetchMaxRetries,
		RetryCooldown:      time.Duration(settings.FetchRetryCooldown * float64(time.Second)),
	})

	manager := download.NewManager(&settings, client, func(event download.ProgressEvent) {
		select {
		case events <- event:
		default: // never block the pipeline on a full UI queue
		}
	})
	m.manager = manager

	artist := m.textInput.Value()
	ctx := m.ctx

	return func() tea.Msg {
		result, err := manager.Run(ctx, artist)
		close(events)
		return RunDoneMsg{Result: result, Err: err}
	}
}

// waitForEvent delivers the next progress event to Update.
func (m Model) waitForEvent() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return nil
		}
		return ProgressMsg{Event: event}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("♪ Lyrics Corpus"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Download and analyze an artist's lyrics from Genius"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
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

	b.WriteString(subtitleStyle.Render("Enter artist name:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	imageCheck := "[ ]"
	if m.saveImage {
		imageCheck = "[x]"
	}
	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[x]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Save artist image (i)\n", imageCheck))
	b.WriteString(fmt.Sprintf("  %s Verbose output (v)\n", verboseCheck))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Output dir: %s · Max songs: %d · Sort: %s",
		m.settings.OutputDir, m.settings.MaxSongs, m.settings.Sort)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewRunning() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	if m.totalSongs == 0 {
		b.WriteString(subtitleStyle.Render("Fetching songs..."))
	} else {
		b.WriteString(subtitleStyle.Render(fmt.Sprintf("Saving lyrics: %d/%d songs", m.savedSongs, m.totalSongs)))
	}
	b.WriteString("\n\n")

	var percent float64
	if m.totalSongs > 0 {
		percent = float64(m.savedSongs) / float64(m.totalSongs)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	if m.result == nil {
		return ""
	}

	box := boxStyle.Render(fmt.Sprintf(
		"✨ Corpus Complete!\n\n"+
			"Corpus: %s\n"+
			"Songs saved: %d\n"+
			"Total words: %d\n"+
			"Unique words: %d\n"+
			"Unique per 1,000: %.2f",
		m.result.CorpusPath,
		len(m.result.Files),
		m.result.Stats.TotalWords,
		m.result.Stats.UniqueWords,
		m.result.Stats.UniquePerThousand,
	))

	return box
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("✗ Error occurred:"))
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
		return "enter: start • i: artist image • v: verbose • esc: quit"
	case StateRunning:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: new run • q: quit"
	}
	return ""
}

// Run starts the TUI application. The Genius token is resolved before the
// program starts so a missing credential fails fast.
func Run() error {
	token, err := config.LoadToken("")
	if err != nil {
		return err
	}

	p := tea.NewProgram(NewModel(config.DefaultSettings(), token), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
