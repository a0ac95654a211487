package ioutils

import (
	"fmt"
	"image"

	"github.com/disintegration/gift"
	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// Resampler scales an image to exact dimensions, ignoring aspect ratio.
type Resampler interface {
	Resample(img image.Image, width, height int) image.Image
}

// NewResampler returns the resampler registered under name.
//
// The x/image/draw kernels are nearest, bilinear, approx-bilinear and
// catmullrom; nfnt/resize provides lanczos3 and mitchell; gift provides
// box, cubic and lanczos.
func NewResampler(name string) (Resampler, error) {
	switch name {
	case "nearest":
		return drawResampler{draw.NearestNeighbor}, nil
	case "bilinear":
		return drawResampler{draw.BiLinear}, nil
	case "approx-bilinear":
		return drawResampler{draw.ApproxBiLinear}, nil
	case "catmullrom", "":
		return drawResampler{draw.CatmullRom}, nil
	case "lanczos3":
		return nfntResampler{resize.Lanczos3}, nil
	case "mitchell":
		return nfntResampler{resize.MitchellNetravali}, nil
	case "box":
		return giftResampler{gift.BoxResampling}, nil
	case "cubic":
		return giftResampler{gift.CubicResampling}, nil
	case "lanczos":
		return giftResampler{gift.LanczosResampling}, nil
	}
	return nil, fmt.Errorf("unknown resampling filter %q", name)
}

type drawResampler struct {
	scaler draw.Scaler
}

// Resample keeps grayscale sources grayscale; everything else is drawn
// onto RGBA.
func (r drawResampler) Resample(img image.Image, width, height int) image.Image {
	rect := image.Rect(0, 0, width, height)

	var dst draw.Image
	switch img.(type) {
	case *image.Gray:
		dst = image.NewGray(rect)
	case *image.Gray16:
		dst = image.NewGray16(rect)
	default:
		dst = image.NewRGBA(rect)
	}

	r.scaler.Scale(dst, rect, img, img.Bounds(), draw.Over, nil)
	return dst
}

type nfntResampler struct {
	interp resize.InterpolationFunction
}

func (r nfntResampler) Resample(img image.Image, width, height int) image.Image {
	return resize.Resize(uint(width), uint(height), img, r.interp)
}

type giftResampler struct {
	resampling gift.Resampling
}

func (r giftResampler) Resample(img image.Image, width, height int) image.Image {
	g := gift.New(gift.Resize(width, height, r.resampling))
	dst := image.NewNRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img)
	return dst
}
