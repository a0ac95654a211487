package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/handiism/square-resize/internal/config"
	"github.com/handiism/square-resize/internal/logger"
	"github.com/handiism/square-resize/internal/tui"
)

// logFile receives diagnostics; stderr would corrupt the alternate screen.
var logFile = filepath.Join(os.TempDir(), "resize-tui.log")

func main() {
	settings, warnings := config.Load()

	log, err := logger.New(settings.LogLevel, logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := tui.Run(settings, warnings, log); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
