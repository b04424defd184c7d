package codec

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func samplePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := 0; i < 8; i++ {
		img.Set(i, i, color.RGBA{255, 0, 0, 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding sample png: %v", err)
	}
	return buf.Bytes()
}

func TestDecodePNG(t *testing.T) {
	img, format, err := Decode(samplePNG(t))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if format != "png" {
		t.Errorf("format = %q, want png", format)
	}
	if img.Bounds().Dx() != 8 {
		t.Errorf("width = %d, want 8", img.Bounds().Dx())
	}
}

func TestDecodeGarbage(t *testing.T) {
	_, _, err := Decode([]byte("definitely not an image"))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}

	_, _, err = Decode(nil)
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("empty input err = %v, want ErrUnknownFormat", err)
	}
}

func TestExportFormat(t *testing.T) {
	tests := []struct{ in, want string }{
		{"png", "png"},
		{"jpeg", "jpeg"},
		{"jpg", "jpeg"},
		{"webp", "webp"},
		{"gif", "png"},
		{"", "png"},
	}
	for _, tt := range tests {
		if got := ExportFormat(tt.in); got != tt.want {
			t.Errorf("ExportFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 12))
	for y := 0; y < 12; y++ {
		for x := 0; x < 16; x++ {
			img.Set(x, y, color.RGBA{uint8(x * 16), uint8(y * 20), 99, 255})
		}
	}

	for _, format := range []string{"png", "jpeg", "webp"} {
		var buf bytes.Buffer
		if err := Encode(&buf, img, format, Options{Quality: 85}); err != nil {
			t.Fatalf("%s: Encode failed: %v", format, err)
		}

		decoded, got, err := Decode(buf.Bytes())
		if err != nil {
			t.Fatalf("%s: Decode of encoded output failed: %v", format, err)
		}
		if got != format {
			t.Errorf("round trip format = %q, want %q", got, format)
		}
		if decoded.Bounds() != img.Bounds() {
			t.Errorf("%s: bounds %v, want %v", format, decoded.Bounds(), img.Bounds())
		}
	}
}
