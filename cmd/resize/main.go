package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/handiism/square-resize/internal/config"
	ioutils "github.com/handiism/square-resize/internal/io"
	"github.com/handiism/square-resize/internal/logger"
	"github.com/handiism/square-resize/internal/resize"
)

const (
	exitOK          = 0
	exitError       = 1
	exitUsage       = 2
	exitInterrupted = 130
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("resize", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: resize <src> <dst> <size>")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Resize source image to a square and write to destination")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "  src   Source file, file path")
		fmt.Fprintln(stderr, "  dst   Destination directory, directory path")
		fmt.Fprintln(stderr, "  size  Size of destination file, positive int")
		fmt.Fprintln(stderr)
		fmt.Fprintf(stderr, "Settings are read from $%s and %s_* environment variables.\n", config.ConfigFileEnv, config.EnvPrefix)
	}

	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if fs.NArg() != 3 {
		fs.Usage()
		fmt.Fprintf(stderr, "resize: error: expected 3 arguments, got %d\n", fs.NArg())
		return exitUsage
	}

	settings, warnings := config.Load()
	for _, w := range warnings {
		fmt.Fprintf(stderr, "resize: warning: %s\n", w)
	}

	log, err := logger.New(settings.LogLevel, "stderr")
	if err != nil {
		fmt.Fprintf(stderr, "resize: error initializing logger: %v\n", err)
		return exitError
	}
	defer log.Sync()

	images, err := ioutils.NewImageService(settings, log)
	if err != nil {
		fmt.Fprintf(stderr, "resize: error: %v\n", err)
		return exitError
	}

	runner := resize.NewRunner(images, log, func(event resize.ProgressEvent) {
		switch event.Level {
		case resize.LevelVerbose:
			if settings.Verbose {
				fmt.Fprintln(stdout, event.Message)
			}
		case resize.LevelWarning:
			fmt.Fprintf(stderr, "resize: warning: %s\n", event.Message)
		case resize.LevelError:
			// reported once below
		default:
			fmt.Fprintln(stdout, event.Message)
		}
	})

	if _, err := runner.Run(ctx, fs.Arg(0), fs.Arg(1), fs.Arg(2)); err != nil {
		if ctx.Err() != nil {
			fmt.Fprintln(stderr, "Interrupted.")
			return exitInterrupted
		}
		log.Debug("Exiting with error", zap.Error(err))
		fmt.Fprintf(stderr, "resize: error: %v\n", err)
		return exitError
	}

	return exitOK
}
