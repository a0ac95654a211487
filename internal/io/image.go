package ioutils

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/handiism/square-resize/internal/config"
	"github.com/handiism/square-resize/internal/model"
)

// MaxPixels is the largest pixel count decoded or produced. Anything above
// it is refused before allocating, as a decompression-bomb guard.
const MaxPixels = 2 * 89478485

// ErrTooManyPixels is wrapped by errors for images above MaxPixels.
var ErrTooManyPixels = errors.New("image exceeds pixel limit")

// ImageService opens, verifies, resizes and saves images.
//
// ImageService is used to:
//   - Inspect a source image and extract its metadata
//   - Resize a source image to a forced square and save it
//
// Example usage:
//
//	svc, _ := NewImageService(config.DefaultSettings(), zap.NewNop())
//
//	meta, err := svc.Inspect(ctx, "photo.jpg")
//	// meta.Format = "JPEG", meta.Mode = "RGB"
//
//	err = svc.ResizeFile(ctx, "photo.jpg", "/out/photo.jpg", 100)
//	// /out/photo.jpg is 100x100
type ImageService struct {
	resampler Resampler
	encode    EncodeOptions
	log       *zap.Logger
}

// NewImageService creates an ImageService from settings.
// It fails only if settings name an unknown resampling filter.
func NewImageService(settings *config.Settings, log *zap.Logger) (*ImageService, error) {
	resampler, err := NewResampler(settings.Filter)
	if err != nil {
		return nil, err
	}

	return &ImageService{
		resampler: resampler,
		encode: EncodeOptions{
			JPEGQuality:    settings.JPEGQuality,
			PNGCompression: settings.PNGCompression,
		},
		log: log,
	}, nil
}

// Inspect opens path, verifies that the whole image decodes, and returns
// its metadata.
//
// The header is read first to learn the format and to refuse images above
// MaxPixels, then the full pixel data is decoded so that truncated or
// corrupt files are caught before their metadata is trusted.
//
// Returns:
//   - *model.DecodeError if the file cannot be opened or decoded, or is too large
//   - *model.MetadataError if format, size or mode cannot be determined
func (s *ImageService) Inspect(ctx context.Context, path string) (*model.Metadata, error) {
	img, format, err := s.decode(ctx, path)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	meta := &model.Metadata{
		Format: strings.ToUpper(format),
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Mode:   model.ModeOf(img),
	}

	s.log.Debug("Image verified",
		zap.String("path", path),
		zap.String("format", meta.Format),
		zap.Int("width", meta.Width),
		zap.Int("height", meta.Height),
		zap.String("mode", meta.Mode))

	if err := meta.Validate(path); err != nil {
		return nil, err
	}

	return meta, nil
}

// Resize scales img to size x size. The aspect ratio is not preserved.
func (s *ImageService) Resize(img image.Image, size int) image.Image {
	return s.resampler.Resample(img, size, size)
}

// ResizeFile decodes src, resizes it to a size x size square and writes it
// to dst in the format inferred from dst's extension.
//
// The encoder is resolved and the source fully decoded before dst is
// created, so an unsupported extension or undecodable source leaves no
// file behind, and dst may safely be the source itself.
//
// Returns:
//   - *model.DecodeError if src cannot be decoded or is too large
//   - *model.WriteError if size exceeds MaxPixels, dst has an unknown
//     extension, or dst cannot be written
func (s *ImageService) ResizeFile(ctx context.Context, src, dst string, size int) error {
	if size <= 0 {
		return &model.WriteError{Path: dst, Err: fmt.Errorf("size %d must be positive", size)}
	}
	if exceedsPixels(size, size) {
		return &model.WriteError{Path: dst, Err: fmt.Errorf("size %d: %w", size, ErrTooManyPixels)}
	}

	format, encode, err := EncoderFor(dst, s.encode)
	if err != nil {
		return &model.WriteError{Path: dst, Err: err}
	}

	img, _, err := s.decode(ctx, src)
	if err != nil {
		return err
	}

	out := s.Resize(img, size)

	n, err := WriteFile(ctx, dst, func(w io.Writer) error {
		return encode(w, out)
	})
	if err != nil {
		s.log.Error("Failed to write image",
			zap.String("path", dst),
			zap.Int64("written", n),
			zap.Error(err))
		return &model.WriteError{Path: dst, Err: err}
	}

	s.log.Info("Image written",
		zap.String("source", src),
		zap.String("destination", dst),
		zap.String("format", format),
		zap.Int("size", size),
		zap.Int64("bytes", n))

	return nil
}

// decode reads the header, rejects images above MaxPixels, then decodes
// the full image.
func (s *ImageService) decode(ctx context.Context, path string) (image.Image, string, error) {
	f, err := OpenFile(ctx, path)
	if err != nil {
		return nil, "", &model.DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return nil, "", &model.DecodeError{Path: path, Err: err}
	}
	if exceedsPixels(cfg.Width, cfg.Height) {
		s.log.Warn("Refusing oversized image",
			zap.String("path", path),
			zap.Int("width", cfg.Width),
			zap.Int("height", cfg.Height))
		return nil, "", &model.DecodeError{
			Path: path,
			Err:  fmt.Errorf("%dx%d: %w", cfg.Width, cfg.Height, ErrTooManyPixels),
		}
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, "", &model.DecodeError{Path: path, Err: err}
	}

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", &model.DecodeError{Path: path, Err: err}
	}
	return img, format, nil
}

// exceedsPixels reports whether a width x height image is above MaxPixels.
// Non-positive dimensions are left to the decoders and metadata checks.
func exceedsPixels(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	return width > MaxPixels/height
}
