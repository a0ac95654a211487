package model

import "fmt"

// ArgumentError reports an invalid command-line argument.
type ArgumentError struct {
	// Arg is the argument name: "src", "dst" or "size".
	Arg string

	// Value is the raw value that was rejected.
	Value string

	// Reason is the human-readable constraint violation.
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("argument %s: %s", e.Arg, e.Reason)
}

// DecodeError reports a source file that is not a valid, complete image.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// MetadataError reports an image that decoded but whose format, size
// or mode could not be determined.
type MetadataError struct {
	Path     string
	Property string
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("Unable to process image %s. Bad source file: %s", e.Property, e.Path)
}

// WriteError reports a failure while resizing or saving the output image.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("cannot write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
