package ioutils

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // WEBP decoder registration, decode only
)

// EncodeOptions tunes the encoders that take parameters.
type EncodeOptions struct {
	// JPEGQuality ranges from 1 to 100.
	JPEGQuality int

	// PNGCompression is one of "default", "none", "speed" or "best".
	PNGCompression string
}

// Encoder writes img to w in a fixed format.
type Encoder func(w io.Writer, img image.Image) error

// Formats maps lower-case file extensions to output format names.
var Formats = map[string]string{
	".jpg":  "JPEG",
	".jpeg": "JPEG",
	".jpe":  "JPEG",
	".jfif": "JPEG",
	".png":  "PNG",
	".gif":  "GIF",
	".bmp":  "BMP",
	".tif":  "TIFF",
	".tiff": "TIFF",
}

// EncoderFor returns the format name and encoder for path, chosen by
// its extension (case-insensitive). Unknown extensions are an error.
func EncoderFor(path string, opts EncodeOptions) (string, Encoder, error) {
	ext := strings.ToLower(filepath.Ext(path))
	format, ok := Formats[ext]
	if !ok {
		return "", nil, fmt.Errorf("unknown file extension: %q", filepath.Ext(path))
	}

	switch format {
	case "JPEG":
		quality := opts.JPEGQuality
		return format, func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
		}, nil
	case "PNG":
		enc := &png.Encoder{CompressionLevel: pngCompression(opts.PNGCompression)}
		return format, enc.Encode, nil
	case "GIF":
		return format, func(w io.Writer, img image.Image) error {
			return gif.Encode(w, img, nil)
		}, nil
	case "BMP":
		return format, bmp.Encode, nil
	default:
		return format, func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
		}, nil
	}
}

func pngCompression(name string) png.CompressionLevel {
	switch name {
	case "none":
		return png.NoCompression
	case "speed":
		return png.BestSpeed
	case "best":
		return png.BestCompression
	default:
		return png.DefaultCompression
	}
}
