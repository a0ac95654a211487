package ioutils

import (
	"bufio"
	"context"
	"io"
	"os"
)

// OpenFile opens path for reading.
//
// The context is checked once before opening; reads themselves are not
// interruptible.
func OpenFile(ctx context.Context, path string) (*os.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.Open(path)
}

// WriteFile creates or truncates path with mode 0644 and streams the
// output of write into it through a buffered writer.
//
// On error the partially written file is left in place.
// It returns the number of bytes written.
func WriteFile(ctx context.Context, path string, write func(w io.Writer) error) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return 0, err
	}

	cw := &countingWriter{w: f}
	bw := bufio.NewWriter(cw)
	if err := write(bw); err != nil {
		f.Close()
		return cw.n, err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return cw.n, err
	}
	if err := f.Close(); err != nil {
		return cw.n, err
	}

	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
