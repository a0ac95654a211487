// Package tui provides a Bubble Tea terminal user interface for square-resize.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/handiism/square-resize/internal/config"
	ioutils "github.com/handiism/square-resize/internal/io"
	"github.com/handiism/square-resize/internal/resize"
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

// Form fields, in tab order.
const (
	fieldSource = iota
	fieldDestination
	fieldSize
	fieldCount
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   resize.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state   State
	inputs  []textinput.Model
	focus   int
	spinner spinner.Model

	settings *config.Settings
	warnings []string
	log      *zap.Logger

	logs   []LogEntry
	result *resize.Result
	err    error

	ctx    context.Context
	cancel context.CancelFunc

	width int
}

// NewModel creates a new TUI model. warnings are shown above the form,
// typically those returned by config.Load.
func NewModel(settings *config.Settings, warnings []string, log *zap.Logger) Model {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 500
		ti.Width = 60
		inputs[i] = ti
	}
	inputs[fieldSource].Placeholder = "path/to/photo.jpg"
	inputs[fieldDestination].Placeholder = "path/to/output/dir"
	inputs[fieldSize].Placeholder = "100"
	inputs[fieldSize].CharLimit = 9
	inputs[fieldSource].Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:    StateInput,
		inputs:   inputs,
		spinner:  sp,
		settings: settings,
		warnings: warnings,
		log:      log,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// RunDoneMsg is sent when the resize run finishes.
	RunDoneMsg struct {
		Logs   []LogEntry
		Result *resize.Result
		Err    error
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
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
			}

		case "tab", "down":
			if m.state == StateInput {
				return m, m.setFocus((m.focus + 1) % fieldCount)
			}

		case "shift+tab", "up":
			if m.state == StateInput {
				return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			}

		case "enter":
			if m.state == StateInput {
				if m.focus < fieldSize {
					return m, m.setFocus(m.focus + 1)
				}
				m.state = StateRunning
				m.logs = nil
				return m, tea.Batch(m.startRun(), m.spinner.Tick)
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
				m.inputs[fieldSize].SetValue("")
				return m, m.setFocus(fieldSize)
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case RunDoneMsg:
		m.logs = msg.Logs
		m.result = msg.Result
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.state = StateComplete
		}
	}

	if m.state == StateInput {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// setFocus moves the cursor to field i.
func (m *Model) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("Square Resize"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Resize an image to a square and write it to a directory"))
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

	for _, w := range m.warnings {
		b.WriteString(warningStyle.Render("! " + w))
		b.WriteString("\n")
	}
	if len(m.warnings) > 0 {
		b.WriteString("\n")
	}

	labels := []string{"Source file:", "Destination directory:", "Size (pixels):"}
	for i, label := range labels {
		b.WriteString(subtitleStyle.Render(label))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n\n")
	}

	b.WriteString(dimStyle.Render(fmt.Sprintf("Filter: %s", m.settings.Filter)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewRunning() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Processing image..."))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	b.WriteString(m.renderLogs())
	b.WriteString("\n")

	if m.result != nil {
		b.WriteString(boxStyle.Render(fmt.Sprintf(
			"Done!\n\n"+
				"Source: %s %s %s\n"+
				"Output: %s\n"+
				"Size: (%d, %d)",
			m.result.Metadata.Format,
			m.result.Metadata.SizeString(),
			m.result.Metadata.Mode,
			m.result.Destination,
			m.result.Args.Size,
			m.result.Args.Size,
		)))
	}

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(m.renderLogs())
	b.WriteString("\n")
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
		case resize.LevelError:
			// shown by viewError
			continue
		case resize.LevelWarning:
			style = warningStyle
			prefix = "!"
		case resize.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case resize.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			if !m.settings.Verbose {
				continue
			}
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + strings.TrimRight(log.Message, "\n")))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "tab: next field • enter: next/start • esc: quit"
	case StateRunning:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: resize again • q: quit"
	}
	return ""
}

// startRun resizes the image in the background.
func (m *Model) startRun() tea.Cmd {
	ctx := m.ctx
	src := strings.TrimSpace(m.inputs[fieldSource].Value())
	dst := strings.TrimSpace(m.inputs[fieldDestination].Value())
	size := m.inputs[fieldSize].Value()
	settings := m.settings
	log := m.log

	return func() tea.Msg {
		images, err := ioutils.NewImageService(settings, log)
		if err != nil {
			return RunDoneMsg{Err: err}
		}

		var logs []LogEntry
		runner := resize.NewRunner(images, log, func(event resize.ProgressEvent) {
			logs = append(logs, LogEntry{Message: event.Message, Level: event.Level})
		})

		result, err := runner.Run(ctx, src, dst, size)
		return RunDoneMsg{Logs: logs, Result: result, Err: err}
	}
}

// Run starts the TUI application.
func Run(settings *config.Settings, warnings []string, log *zap.Logger) error {
	p := tea.NewProgram(NewModel(settings, warnings, log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
