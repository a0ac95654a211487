package model

import (
	"fmt"
	"image"
	"image/color"
)

// Color mode tags reported for decoded images.
const (
	ModeGray    = "L"
	ModeGray16  = "I;16"
	ModePalette = "P"
	ModeRGB     = "RGB"
	ModeRGBA    = "RGBA"
	ModeCMYK    = "CMYK"
	ModeAlpha   = "A"
)

// Metadata holds the properties of a decoded source image.
//
// It is populated once per run by the inspector and only used for display.
type Metadata struct {
	// Format is the upper-case codec name, e.g. "PNG" or "JPEG".
	Format string

	// Width and Height are the pixel dimensions.
	Width  int
	Height int

	// Mode is the color mode tag, e.g. "RGB" or "RGBA".
	Mode string
}

// Validate checks that every property was determined.
//
// A missing property means the source could be opened but not understood,
// which is reported as a MetadataError naming the property.
func (m *Metadata) Validate(path string) error {
	if m.Format == "" {
		return &MetadataError{Path: path, Property: "format"}
	}
	if m.Width <= 0 || m.Height <= 0 {
		return &MetadataError{Path: path, Property: "size"}
	}
	if m.Mode == "" {
		return &MetadataError{Path: path, Property: "mode"}
	}
	return nil
}

// SizeString formats the dimensions as "(w, h)".
func (m *Metadata) SizeString() string {
	return fmt.Sprintf("(%d, %d)", m.Width, m.Height)
}

// ModeOf returns the color mode tag of a decoded image.
//
// RGBA-family images are reported as RGB when every pixel is opaque.
// An empty string is returned for pixel models without a known tag.
func ModeOf(img image.Image) string {
	switch src := img.(type) {
	case *image.Gray:
		return ModeGray
	case *image.Gray16:
		return ModeGray16
	case *image.Paletted:
		return ModePalette
	case *image.YCbCr:
		return ModeRGB
	case *image.NYCbCrA:
		return ModeRGBA
	case *image.CMYK:
		return ModeCMYK
	case *image.Alpha, *image.Alpha16:
		return ModeAlpha
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64:
		if o, ok := src.(interface{ Opaque() bool }); ok && o.Opaque() {
			return ModeRGB
		}
		return ModeRGBA
	}

	return modeOfColorModel(img.ColorModel())
}

// modeOfColorModel covers image types that only expose a color.Model.
func modeOfColorModel(cm color.Model) string {
	switch cm {
	case color.GrayModel:
		return ModeGray
	case color.Gray16Model:
		return ModeGray16
	case color.YCbCrModel:
		return ModeRGB
	case color.CMYKModel:
		return ModeCMYK
	case color.AlphaModel, color.Alpha16Model:
		return ModeAlpha
	case color.RGBAModel, color.NRGBAModel, color.RGBA64Model, color.NRGBA64Model, color.NYCbCrAModel:
		return ModeRGBA
	}
	if _, ok := cm.(color.Palette); ok {
		return ModePalette
	}
	return ""
}
