// Package args validates the three positional arguments of the resize
// command: a source image file, a destination directory and a square size.
package args

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/handiism/square-resize/internal/model"
)

// Args holds validated command-line arguments.
type Args struct {
	// Source is the path to an existing regular file.
	Source string

	// DestinationDir is the path to an existing directory.
	DestinationDir string

	// Size is the side length of the square output, always > 0.
	Size int
}

// Parse validates src, dst and size in that order and returns the first
// failure as a *model.ArgumentError.
func Parse(src, dst, size string) (*Args, error) {
	source, err := SourcePath(src)
	if err != nil {
		return nil, err
	}

	destination, err := DestinationPath(dst)
	if err != nil {
		return nil, err
	}

	n, err := PositiveInt(size)
	if err != nil {
		return nil, err
	}

	return &Args{Source: source, DestinationDir: destination, Size: n}, nil
}

// DestinationFile is the output path: the destination directory joined
// with the base name of the source.
func (a *Args) DestinationFile() string {
	return filepath.Join(a.DestinationDir, filepath.Base(a.Source))
}

// SourcePath checks that path names an existing regular file.
// Symbolic links are followed.
func SourcePath(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", &model.ArgumentError{
			Arg:    "src",
			Value:  path,
			Reason: fmt.Sprintf("Input a valid source file. %s is not a file.", path),
		}
	}
	return path, nil
}

// DestinationPath checks that path names an existing directory.
func DestinationPath(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return "", &model.ArgumentError{
			Arg:    "dst",
			Value:  path,
			Reason: fmt.Sprintf("Input a valid destination directory. %s is not a directory.", path),
		}
	}
	return path, nil
}

// PositiveInt parses s as a base-10 integer greater than zero.
// Surrounding whitespace is ignored.
func PositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &model.ArgumentError{
			Arg:    "size",
			Value:  s,
			Reason: fmt.Sprintf("invalid int value: '%s'", s),
		}
	}
	if n <= 0 {
		return 0, &model.ArgumentError{
			Arg:    "size",
			Value:  s,
			Reason: fmt.Sprintf("%d must be a positive int", n),
		}
	}
	return n, nil
}
