// Package ioutils provides file system and image processing utilities.
//
// This package contains:
//   - File opening and buffered writing
//   - Output encoder selection by file extension
//   - Resampling backends for exact-size scaling
//   - The ImageService that inspects and resizes images
//
// # Supported Formats
//
// Decoding: JPEG, PNG, GIF, BMP, TIFF, WEBP.
// Encoding: JPEG, PNG, GIF, BMP, TIFF. WEBP is decode only.
//
//	format, enc, err := ioutils.EncoderFor("/out/photo.jpg", ioutils.EncodeOptions{JPEGQuality: 90})
//	// format = "JPEG"
//
// # Resampling
//
// Filters are chosen by name:
//
//	r, _ := ioutils.NewResampler("lanczos3")
//	square := r.Resample(img, 100, 100)
//
// # Image Processing
//
//	svc, _ := ioutils.NewImageService(settings, log)
//
//	// Verify the source and read its properties
//	meta, _ := svc.Inspect(ctx, "photo.jpg")
//
//	// Write a 100x100 copy
//	err := svc.ResizeFile(ctx, "photo.jpg", "/out/photo.jpg", 100)
package ioutils
