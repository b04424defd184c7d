package compositor

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/akshaye1/Artifex-Canvas/pkg/geometry"
	"github.com/akshaye1/Artifex-Canvas/pkg/noise"
	"github.com/akshaye1/Artifex-Canvas/pkg/shadow"
	"github.com/akshaye1/Artifex-Canvas/pkg/silhouette"
	"github.com/akshaye1/Artifex-Canvas/pkg/texture"
	"github.com/akshaye1/Artifex-Canvas/pkg/types"
)

func testCompositor(seed int64) *Compositor {
	synth := texture.NewSynthesizer(rand.New(rand.NewSource(seed)))
	return New(DefaultConfig(), shadow.DefaultConfig(), synth)
}

func testSource(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(x * 255 / w), uint8(y * 255 / h), 120, 255})
		}
	}
	return img
}

func buildScene(seed int64, params types.StyleParameters) (geometry.Layout, *silhouette.Path) {
	layout := geometry.Compute(400, 300, types.Bounds{Width: 960, Height: 640}, params, geometry.DefaultConfig())
	gen := noise.NewGenerator(rand.New(rand.NewSource(seed)))
	profiles := gen.Generate(params.EdgeDetails, params.EdgeIntensity)
	builder := silhouette.NewBuilder(rand.New(rand.NewSource(seed)))
	return layout, builder.Build(layout, params, profiles)
}

func TestRenderCanvasDimensions(t *testing.T) {
	params := types.DefaultStyle()
	layout, path := buildScene(1, params)

	out := testCompositor(1).Render(testSource(400, 300), layout, path, params)
	b := out.Bounds()
	if b.Dx() != layout.CanvasWidth || b.Dy() != layout.CanvasHeight {
		t.Errorf("output %dx%d, want canvas %dx%d", b.Dx(), b.Dy(), layout.CanvasWidth, layout.CanvasHeight)
	}
}

func TestRenderAllZeroParameters(t *testing.T) {
	// Every scalar at zero: plain rectangle, no border, no shadow, no
	// texture. The canvas equals the content area and is fully covered by
	// the paper fill plus the photograph.
	params := types.StyleParameters{}
	layout, path := buildScene(2, params)

	if !path.IsRectangle() {
		t.Fatal("all-zero parameters must produce the rectangle silhouette")
	}
	if layout.Border != 0 {
		t.Fatalf("all-zero parameters produced border %v", layout.Border)
	}

	out := testCompositor(2).Render(testSource(400, 300), layout, path, params)
	b := out.Bounds()
	if b.Dx() != layout.ContentWidth || b.Dy() != layout.ContentHeight {
		t.Errorf("output %dx%d, want content size %dx%d", b.Dx(), b.Dy(), layout.ContentWidth, layout.ContentHeight)
	}

	// Fully opaque everywhere: paper fill covers the whole canvas.
	for _, pt := range []image.Point{{0, 0}, {b.Dx() - 1, b.Dy() - 1}, {b.Dx() / 2, b.Dy() / 2}} {
		if _, _, _, a := out.At(pt.X, pt.Y).RGBA(); a != 0xffff {
			t.Errorf("pixel %v not opaque", pt)
		}
	}
}

func TestRenderAllMaxParameters(t *testing.T) {
	params := types.StyleParameters{
		Size: 100, EdgeThickness: 100, EdgeIntensity: 100, EdgeDetails: 100,
		CutoutStyle: 100, TextureStrength: 100, ShadowOffsetX: 100,
		ShadowOffsetY: 100, ShadowBlur: 100, ShadowStrength: 100, Movement: 100,
	}
	layout, path := buildScene(3, params)

	out := testCompositor(3).Render(testSource(400, 300), layout, path, params)
	b := out.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		t.Fatalf("degenerate output %dx%d", b.Dx(), b.Dy())
	}
	if b.Dx() != layout.CanvasWidth || b.Dy() != layout.CanvasHeight {
		t.Errorf("output %dx%d, want %dx%d", b.Dx(), b.Dy(), layout.CanvasWidth, layout.CanvasHeight)
	}
}

func TestRenderNilSource(t *testing.T) {
	// A nil source still paints the paper sheet; only the photograph step
	// is skipped.
	params := types.DefaultStyle()
	layout, path := buildScene(4, params)

	out := testCompositor(4).Render(nil, layout, path, params)
	if out.Bounds().Dx() != layout.CanvasWidth {
		t.Errorf("unexpected output size %v", out.Bounds())
	}
}

func TestPlaceholdersDistinct(t *testing.T) {
	c := testCompositor(5)

	noImg := c.PlaceholderNoImage()
	failed := c.PlaceholderDecodeFailed()

	cfg := DefaultConfig()
	for _, img := range []image.Image{noImg, failed} {
		b := img.Bounds()
		if b.Dx() != cfg.PlaceholderWidth || b.Dy() != cfg.PlaceholderHeight {
			t.Errorf("placeholder %dx%d, want %dx%d", b.Dx(), b.Dy(), cfg.PlaceholderWidth, cfg.PlaceholderHeight)
		}
	}

	// The two messages render differently.
	if imagesEqual(noImg, failed) {
		t.Error("no-image and decode-failed placeholders are pixel-identical")
	}
}

func imagesEqual(a, b image.Image) bool {
	if a.Bounds() != b.Bounds() {
		return false
	}
	bounds := a.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ar, ag, ab, aa := a.At(x, y).RGBA()
			br, bg, bb, ba := b.At(x, y).RGBA()
			if ar != br || ag != bg || ab != bb || aa != ba {
				return false
			}
		}
	}
	return true
}

func TestRenderTextureZeroMatchesSkipped(t *testing.T) {
	// textureStrength 0 must yield a bitmap identical to a compositor with
	// no synthesizer at all.
	params := types.DefaultStyle()
	params.TextureStrength = 0
	layout, path := buildScene(6, params)
	src := testSource(400, 300)

	withSynth := testCompositor(6).Render(src, layout, path, params)
	withoutSynth := New(DefaultConfig(), shadow.DefaultConfig(), nil).Render(src, layout, path, params)

	if !imagesEqual(withSynth, withoutSynth) {
		t.Error("texture strength 0 output differs from texture-skipped output")
	}
}
