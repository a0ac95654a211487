// Package model defines the core data structures used throughout
// square-resize.
//
// # Metadata
//
// Metadata describes a decoded source image:
//
//	meta := &model.Metadata{Format: "JPEG", Width: 500, Height: 300, Mode: model.ModeRGB}
//	if err := meta.Validate("photo.jpg"); err != nil {
//	    // a property could not be determined, treat the file as corrupt
//	}
//	fmt.Println(meta.SizeString()) // (500, 300)
//
// # Color modes
//
// ModeOf maps a decoded image to its color mode tag
// (L, I;16, P, RGB, RGBA, CMYK, A).
//
// # Errors
//
// Every failure of a run is one of four error types, discriminated with
// errors.As:
//
//   - ArgumentError: a command-line argument is invalid
//   - DecodeError: the source exists but is not a complete image
//   - MetadataError: the image decoded but a property is missing
//   - WriteError: resizing or saving the output failed
package model
