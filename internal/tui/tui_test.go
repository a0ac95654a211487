package tui

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/handiism/square-resize/internal/args"
	"github.com/handiism/square-resize/internal/config"
	"github.com/handiism/square-resize/internal/model"
	"github.com/handiism/square-resize/internal/resize"
)

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func TestModel_FormNavigation(t *testing.T) {
	m := NewModel(config.DefaultSettings(), nil, zap.NewNop())

	m = typeText(t, m, "in.png")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(t, m, "out")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = typeText(t, m, "64")

	if m.focus != fieldSize {
		t.Fatalf("focus = %d, want %d", m.focus, fieldSize)
	}
	if got := m.inputs[fieldSource].Value(); got != "in.png" {
		t.Errorf("source = %q, want %q", got, "in.png")
	}
	if got := m.inputs[fieldDestination].Value(); got != "out" {
		t.Errorf("destination = %q, want %q", got, "out")
	}
	if got := m.inputs[fieldSize].Value(); got != "64" {
		t.Errorf("size = %q, want %q", got, "64")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != fieldDestination {
		t.Errorf("focus after shift+tab = %d, want %d", m.focus, fieldDestination)
	}
}

func TestModel_RunDone(t *testing.T) {
	m := NewModel(config.DefaultSettings(), nil, zap.NewNop())
	m.state = StateRunning

	result := &resize.Result{
		Args:        &args.Args{Source: "in.png", DestinationDir: "out", Size: 64},
		Metadata:    &model.Metadata{Format: "PNG", Width: 10, Height: 20, Mode: model.ModeRGB},
		Destination: filepath.Join("out", "in.png"),
	}
	m, _ = update(t, m, RunDoneMsg{Result: result})

	if m.state != StateComplete {
		t.Fatalf("state = %v, want StateComplete", m.state)
	}
	if view := m.View(); !strings.Contains(view, "Size: (64, 64)") {
		t.Errorf("View() should show the output size, got:\n%s", view)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if m.state != StateInput {
		t.Errorf("state after reset = %v, want StateInput", m.state)
	}
}

func TestModel_RunError(t *testing.T) {
	m := NewModel(config.DefaultSettings(), nil, zap.NewNop())
	m.state = StateRunning

	m, _ = update(t, m, RunDoneMsg{Err: errors.New("argument size: -5 must be a positive int")})

	if m.state != StateError {
		t.Fatalf("state = %v, want StateError", m.state)
	}
	if view := m.View(); !strings.Contains(view, "-5 must be a positive int") {
		t.Errorf("View() should show the error, got:\n%s", view)
	}
}

func TestModel_StartRun(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, 20, 10))); err != nil {
		t.Fatal(err)
	}
	src := filepath.Join(dir, "in.png")
	if err := os.WriteFile(src, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out")
	if err := os.Mkdir(out, 0755); err != nil {
		t.Fatal(err)
	}

	m := NewModel(config.DefaultSettings(), nil, zap.NewNop())
	m.inputs[fieldSource].SetValue(src)
	m.inputs[fieldDestination].SetValue(out)
	m.inputs[fieldSize].SetValue("8")

	msg, ok := m.startRun()().(RunDoneMsg)
	if !ok {
		t.Fatal("startRun() should produce a RunDoneMsg")
	}
	if msg.Err != nil {
		t.Fatalf("run error = %v", msg.Err)
	}
	if msg.Result.Metadata.Mode != model.ModeGray {
		t.Errorf("Mode = %q, want %q", msg.Result.Metadata.Mode, model.ModeGray)
	}
	if _, err := os.Stat(filepath.Join(out, "in.png")); err != nil {
		t.Errorf("output not written: %v", err)
	}
}

func TestModel_ConfigWarnings(t *testing.T) {
	warning := `unknown filter "sinc" (want one of nearest), using "catmullrom"`
	m := NewModel(config.DefaultSettings(), []string{warning}, zap.NewNop())

	if view := m.View(); !strings.Contains(view, "! "+warning) {
		t.Errorf("View() should show the config warning, got:\n%s", view)
	}
}

func TestModel_RunDoneShowsWarnings(t *testing.T) {
	m := NewModel(config.DefaultSettings(), nil, zap.NewNop())
	m.state = StateRunning

	result := &resize.Result{
		Args:        &args.Args{Source: "in.jpg", DestinationDir: "out", Size: 8},
		Metadata:    &model.Metadata{Format: "PNG", Width: 4, Height: 4, Mode: model.ModeRGBA},
		Destination: filepath.Join("out", "in.jpg"),
	}
	m, _ = update(t, m, RunDoneMsg{
		Result: result,
		Logs: []LogEntry{
			{Message: "in.jpg has no alpha channel; transparency in the source will be lost", Level: resize.LevelWarning},
			{Message: "Processing image...", Level: resize.LevelInfo},
		},
	})

	if view := m.View(); !strings.Contains(view, "! in.jpg has no alpha channel") {
		t.Errorf("View() should show the warning, got:\n%s", view)
	}
}
