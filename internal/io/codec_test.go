package ioutils

import (
	"image"
	"testing"
)

func TestEncoderFor(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"/out/photo.jpg", "JPEG", false},
		{"/out/photo.JPEG", "JPEG", false},
		{"/out/photo.jfif", "JPEG", false},
		{"/out/icon.png", "PNG", false},
		{"/out/anim.gif", "GIF", false},
		{"/out/old.bmp", "BMP", false},
		{"/out/scan.tif", "TIFF", false},
		{"/out/scan.TIFF", "TIFF", false},
		{"/out/photo.webp", "", true},
		{"/out/README", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			format, enc, err := EncoderFor(tt.path, EncodeOptions{JPEGQuality: 90, PNGCompression: "best"})
			if tt.wantErr {
				if err == nil {
					t.Errorf("EncoderFor(%q) should fail", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("EncoderFor(%q) error = %v", tt.path, err)
			}
			if format != tt.want {
				t.Errorf("EncoderFor(%q) format = %q, want %q", tt.path, format, tt.want)
			}
			if enc == nil {
				t.Errorf("EncoderFor(%q) returned a nil encoder", tt.path)
			}
		})
	}
}

func TestNewResampler(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 40, 10))

	for _, name := range []string{"nearest", "bilinear", "approx-bilinear", "catmullrom", "lanczos3", "mitchell", "box", "cubic", "lanczos"} {
		t.Run(name, func(t *testing.T) {
			r, err := NewResampler(name)
			if err != nil {
				t.Fatalf("NewResampler(%q) error = %v", name, err)
			}
			out := r.Resample(src, 7, 7)
			if out.Bounds().Dx() != 7 || out.Bounds().Dy() != 7 {
				t.Errorf("Resample() bounds = %v, want 7x7", out.Bounds())
			}
		})
	}

	if _, err := NewResampler("sinc"); err == nil {
		t.Error("NewResampler(\"sinc\") should fail")
	}
}
