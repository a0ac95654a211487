package resize

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/handiism/square-resize/internal/args"
	ioutils "github.com/handiism/square-resize/internal/io"
	"github.com/handiism/square-resize/internal/model"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a run progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// State is a step of a run.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateMetadataExtracted
	StateResizing
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateMetadataExtracted:
		return "metadata-extracted"
	case StateResizing:
		return "resizing"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Result describes a completed run.
type Result struct {
	Args        *args.Args
	Metadata    *model.Metadata
	Destination string
}

// Runner coordinates one validate, inspect and resize run.
type Runner struct {
	images *ioutils.ImageService
	log    *zap.Logger

	state  State
	result *Result

	onProgress func(ProgressEvent)
	mu         sync.RWMutex
}

// NewRunner creates a new Runner. onProgress may be nil.
func NewRunner(images *ioutils.ImageService, log *zap.Logger, onProgress func(ProgressEvent)) *Runner {
	return &Runner{
		images:     images,
		log:        log,
		onProgress: onProgress,
	}
}

// Run validates the raw arguments, prints the source metadata and writes
// the resized square to dst/basename(src).
//
// The returned error is one of the model error types, or ctx.Err() if
// the context was cancelled between steps.
func (r *Runner) Run(ctx context.Context, src, dst, size string) (*Result, error) {
	r.mu.Lock()
	r.result = nil
	r.mu.Unlock()
	r.setState(StateValidating)

	a, err := args.Parse(src, dst, size)
	if err != nil {
		return nil, r.fail(err)
	}
	r.progress(ProgressEvent{Message: fmt.Sprintf("Arguments valid: src=%s dst=%s size=%d", a.Source, a.DestinationDir, a.Size), Level: LevelVerbose})

	if err := ctx.Err(); err != nil {
		return nil, r.fail(err)
	}

	meta, err := r.images.Inspect(ctx, a.Source)
	if err != nil {
		return nil, r.fail(err)
	}
	r.setState(StateMetadataExtracted)
	r.progress(ProgressEvent{Message: FormatReport(a.Source, meta), Level: LevelInfo})

	if err := ctx.Err(); err != nil {
		return nil, r.fail(err)
	}

	destination := a.DestinationFile()
	if msg := alphaDropped(meta, destination); msg != "" {
		r.progress(ProgressEvent{Message: msg, Level: LevelWarning})
	}
	r.setState(StateResizing)
	r.progress(ProgressEvent{Message: "Processing image...", Level: LevelInfo})

	if err := r.images.ResizeFile(ctx, a.Source, destination, a.Size); err != nil {
		return nil, r.fail(err)
	}

	result := &Result{Args: a, Metadata: meta, Destination: destination}

	r.mu.Lock()
	r.state = StateDone
	r.result = result
	r.mu.Unlock()

	r.progress(ProgressEvent{Message: fmt.Sprintf("Created %s with size (%d, %d)", destination, a.Size, a.Size), Level: LevelSuccess})

	return result, nil
}

// State returns the current state of the run.
func (r *Runner) State() State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// Result returns the result of a successful run, or nil.
func (r *Runner) Result() *Result {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.result
}

func (r *Runner) setState(s State) {
	r.mu.Lock()
	prev := r.state
	r.state = s
	r.mu.Unlock()

	r.log.Debug("State changed", zap.Stringer("from", prev), zap.Stringer("to", s))
}

func (r *Runner) fail(err error) error {
	r.mu.Lock()
	prev := r.state
	r.state = StateFailed
	r.mu.Unlock()

	r.log.Warn("Run failed", zap.Stringer("state", prev), zap.Error(err))
	r.progress(ProgressEvent{Message: err.Error(), Level: LevelError})
	return err
}

func (r *Runner) progress(event ProgressEvent) {
	if r.onProgress != nil {
		r.onProgress(event)
	}
}

// alphaDropped describes the transparency lost when an RGBA source is
// written to a format without an alpha channel, or returns "".
func alphaDropped(meta *model.Metadata, destination string) string {
	if meta.Mode != model.ModeRGBA {
		return ""
	}
	if ioutils.Formats[strings.ToLower(filepath.Ext(destination))] != "JPEG" {
		return ""
	}
	return fmt.Sprintf("%s has no alpha channel; transparency in the source will be lost", filepath.Base(destination))
}

// FormatReport renders the metadata report printed before resizing.
func FormatReport(path string, meta *model.Metadata) string {
	rule := strings.Repeat("-", 20)

	var b strings.Builder
	fmt.Fprintf(&b, "%s Current Image Properties %s\n", rule, rule)
	fmt.Fprintf(&b, "Filename %s\n", path)
	fmt.Fprintf(&b, "Format: %s\n", meta.Format)
	fmt.Fprintf(&b, "Size: %s\n", meta.SizeString())
	fmt.Fprintf(&b, "Mode: %s\n", meta.Mode)
	return b.String()
}
