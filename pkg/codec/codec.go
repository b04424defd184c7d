// Package codec turns uploaded bytes into bitmaps and the rendered bitmap
// back into an encoded buffer for download. Supported formats are PNG, JPEG
// and WebP; exports keep the upload's format where feasible.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/chai2010/webp"
	_ "golang.org/x/image/webp"
)

// ErrUnknownFormat reports bytes that no registered decoder accepts.
var ErrUnknownFormat = errors.New("codec: unknown or unsupported image format")

// Options controls lossy encoders.
type Options struct {
	// Quality is the JPEG/WebP quality in 1-100; zero selects the default.
	Quality int
	// Lossless switches WebP output to lossless mode.
	Lossless bool
}

// DefaultQuality is used when Options.Quality is unset.
const DefaultQuality = 90

// Decode turns raw upload bytes into a bitmap and reports the detected
// format name ("png", "jpeg", "webp").
func Decode(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err == nil {
		return img, format, nil
	}

	// Some WebP variants (notably lossy VP8) are not covered by the
	// registered decoder; try the dedicated one before giving up.
	if img, werr := webp.Decode(bytes.NewReader(data)); werr == nil {
		return img, "webp", nil
	}

	return nil, "", ErrUnknownFormat
}

// ExportFormat normalizes an upload format to a supported export format.
// Unknown or empty formats fall back to PNG.
func ExportFormat(uploadFormat string) string {
	switch uploadFormat {
	case "png", "jpeg", "webp":
		return uploadFormat
	case "jpg":
		return "jpeg"
	default:
		return "png"
	}
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format string, opts Options) error {
	quality := opts.Quality
	if quality <= 0 {
		quality = DefaultQuality
	}

	switch ExportFormat(format) {
	case "jpeg":
		if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
			return fmt.Errorf("jpeg encode: %w", err)
		}
	case "webp":
		wopts := &webp.Options{Lossless: opts.Lossless, Quality: float32(quality)}
		if err := webp.Encode(w, img, wopts); err != nil {
			return fmt.Errorf("webp encode: %w", err)
		}
	default:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("png encode: %w", err)
		}
	}
	return nil
}
