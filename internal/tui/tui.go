// Package tui provides a Bubble Tea terminal user interface for reddit-link-grabber.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/reddit-link-grabber/internal/clipboard"
	"github.com/handiism/reddit-link-grabber/internal/config"
	"github.com/handiism/reddit-link-grabber/internal/grab"
	ioutils "github.com/handiism/reddit-link-grabber/internal/io"
	"github.com/handiism/reddit-link-grabber/internal/model"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF4500")).
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

	linkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// maxLogs is how many progress lines stay on screen.
const maxLogs = 10

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateGrabbing
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   grab.ProgressLevel
}

// Options configures a TUI session.
type Options struct {
	Settings  *config.Settings
	Clipboard clipboard.ReadWriter

	// Pages are the saved pages ctrl+g grabs from. May be empty.
	Pages   []ioutils.PageSource
	PageURL string
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	settings  *config.Settings
	clipboard clipboard.ReadWriter
	pages     []ioutils.PageSource
	pageURL   string
	logs      []LogEntry
	result    *grab.Result
	err       error

	mode model.Mode

	ctx    context.Context
	cancel context.CancelFunc

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "https://www.reddit.com/r/subreddit/comments/id/slug/"
	ti.Focus()
	ti.CharLimit = 2000
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4500"))

	settings := opts.Settings
	if settings == nil {
		settings = config.DefaultSettings()
	}
	cb := opts.Clipboard
	if cb == nil {
		cb = clipboard.NewSystem()
	}

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		settings:  settings,
		clipboard: cb,
		pages:     opts.Pages,
		pageURL:   opts.PageURL,
		logs:      make([]LogEntry, 0),
		mode:      settings.ToMode(),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// GrabDoneMsg is sent when a grab finishes.
type GrabDoneMsg struct {
	Result *grab.Result
	Events []grab.ProgressEvent
	Err    error
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
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
			if m.state == StateGrabbing {
				m.cancel()
			}

		case "enter":
			if m.state == StateInput && strings.TrimSpace(m.textInput.Value()) != "" {
				m.state = StateGrabbing
				return m, tea.Batch(m.grabLink(strings.TrimSpace(m.textInput.Value())), m.spinner.Tick)
			}

		case "ctrl+g":
			if m.state == StateInput && len(m.pages) > 0 {
				m.state = StateGrabbing
				return m, tea.Batch(m.grabPage(), m.spinner.Tick)
			}

		case "tab":
			if m.state == StateInput {
				if m.mode == model.ModeAppend {
					m.mode = model.ModeOverwrite
				} else {
					m.mode = model.ModeAppend
				}
				return m, nil
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				m.state = StateInput
				m.logs = nil
				m.result = nil
				m.err = nil
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.textInput.SetValue("")
				m.textInput.Focus()
				return m, nil
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case GrabDoneMsg:
		for _, event := range msg.Events {
			m.appendLog(event)
		}
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.state = StateComplete
			m.result = msg.Result
		}
	}

	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) appendLog(event grab.ProgressEvent) {
	if event.Level == grab.LevelVerbose && !m.settings.Verbose {
		return
	}
	m.logs = append(m.logs, LogEntry{Message: event.Message, Level: event.Level})
	if len(m.logs) > maxLogs {
		m.logs = m.logs[len(m.logs)-maxLogs:]
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Reddit Link Grabber"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Copy thread links to the clipboard"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateGrabbing:
		b.WriteString(m.viewGrabbing())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Enter a thread link:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	overwriteCheck, appendCheck := "(•)", "( )"
	if m.mode == model.ModeAppend {
		overwriteCheck, appendCheck = "( )", "(•)"
	}

	b.WriteString(infoStyle.Render("Clipboard mode (tab):"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Overwrite\n", overwriteCheck))
	b.WriteString(fmt.Sprintf("  %s Append\n", appendCheck))
	b.WriteString("\n")

	if len(m.pages) > 0 {
		names := make([]string, len(m.pages))
		for i, page := range m.pages {
			names[i] = page.Name
		}
		b.WriteString(dimStyle.Render(fmt.Sprintf("Pages loaded: %s", strings.Join(names, ", "))))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewGrabbing() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Updating clipboard..."))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	if m.result != nil {
		b.WriteString(boxStyle.Render(successStyle.Render(m.result.Message())))
		b.WriteString("\n\n")
		for _, link := range m.result.Links {
			b.WriteString(linkStyle.Render("  " + link))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", grab.ErrorMessage(m.err, m.mode)))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %s", m.err.Error())))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case grab.LevelError:
			style = errorStyle
			prefix = "✗"
		case grab.LevelWarning:
			style = warningStyle
			prefix = "!"
		case grab.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case grab.LevelInfo:
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
		if len(m.pages) > 0 {
			return "enter: grab link • ctrl+g: grab page links • tab: mode • esc: quit"
		}
		return "enter: grab link • tab: mode • esc: quit"
	case StateGrabbing:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: grab again • q: quit"
	}
	return ""
}

// newGrabber builds a Grabber whose progress events are collected into events.
func (m Model) newGrabber(events *[]grab.ProgressEvent) *grab.Grabber {
	return grab.NewGrabber(m.settings, m.clipboard, func(event grab.ProgressEvent) {
		*events = append(*events, event)
	})
}

// grabLink copies or appends a single link.
func (m Model) grabLink(rawURL string) tea.Cmd {
	ctx, mode := m.ctx, m.mode
	return func() tea.Msg {
		var events []grab.ProgressEvent
		result, err := m.newGrabber(&events).GrabLink(ctx, rawURL, mode)
		return GrabDoneMsg{Result: result, Events: events, Err: err}
	}
}

// grabPage copies or appends every thread link on the loaded pages.
func (m Model) grabPage() tea.Cmd {
	ctx, mode := m.ctx, m.mode
	return func() tea.Msg {
		var events []grab.ProgressEvent
		result, err := m.newGrabber(&events).GrabPage(ctx, m.pages, m.pageURL, mode)
		return GrabDoneMsg{Result: result, Events: events, Err: err}
	}
}

// Run starts the TUI application.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
