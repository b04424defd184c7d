package utils

import (
	"path/filepath"
	"testing"
)

func TestGetFileExtension(t *testing.T) {
	cases := map[string]string{
		"photo.JPG":        "jpg",
		"dir/photo.webp":   "webp",
		"archive.tar.gz":   "gz",
		"noextension":      "",
		"trailing.dot.":    "",
		"/abs/path/p.PNG":  "png",
		"relative/img.gif": "gif",
	}

	for in, want := range cases {
		if got := GetFileExtension(in); got != want {
			t.Errorf("GetFileExtension(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsImageFile(t *testing.T) {
	if !IsImageFile("photo.webp") {
		t.Error("webp should be recognized as an image")
	}
	if IsImageFile("notes.txt") {
		t.Error("txt should not be recognized as an image")
	}
}

func TestOutputPath(t *testing.T) {
	got := OutputPath("/in/photo.jpg", "/out", "_torn", "png")
	want := filepath.Join("/out", "photo_torn.png")
	if got != want {
		t.Errorf("OutputPath = %q, want %q", got, want)
	}

	// Empty format falls back to the input extension.
	got = OutputPath("photo.webp", ".", "_torn", "")
	want = filepath.Join(".", "photo_torn.webp")
	if got != want {
		t.Errorf("OutputPath fallback = %q, want %q", got, want)
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir on existing dir failed: %v", err)
	}
}
