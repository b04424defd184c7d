package texture

import (
	"image"
	"math/rand"
	"testing"

	"github.com/fogleman/gg"
)

func TestApplyZeroStrengthIsNoop(t *testing.T) {
	s := NewSynthesizer(rand.New(rand.NewSource(1)))
	dc, mask := newPaper(64, 8)
	before := clonePix(dc)

	s.Apply(dc, mask, 0)

	after := clonePix(dc)
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("strength 0 must be bit-identical to skipping texture synthesis")
		}
	}
}

func TestApplyPerturbsOnlyMaskedPixels(t *testing.T) {
	s := NewSynthesizer(rand.New(rand.NewSource(2)))
	dc, mask := newPaper(64, 16)
	before := clonePix(dc)

	// Clip to the mask so fibers stay inside too.
	dc.Push()
	dc.DrawRectangle(16, 16, 32, 32)
	dc.Clip()
	s.Apply(dc, mask, 100)
	dc.Pop()

	after := clonePix(dc)

	changed := false
	for i := range before {
		if before[i] != after[i] {
			changed = true
			break
		}
	}
	if !changed {
		t.Fatal("strength 100 should visibly perturb the masked region")
	}

	// Pixels outside the mask must be untouched.
	img := dc.Image().(*image.RGBA)
	for _, pt := range []image.Point{{2, 2}, {61, 2}, {2, 61}, {61, 61}} {
		i := img.PixOffset(pt.X, pt.Y)
		for c := 0; c < 4; c++ {
			if before[i+c] != after[i+c] {
				t.Fatalf("pixel outside mask at %v was modified", pt)
			}
		}
	}
}

func TestApplyStrengthScalesMonotonically(t *testing.T) {
	weakDelta := totalDelta(t, 20)
	strongDelta := totalDelta(t, 100)
	if strongDelta <= weakDelta {
		t.Errorf("perturbation at strength 100 (%d) not greater than at 20 (%d)", strongDelta, weakDelta)
	}
}

func totalDelta(t *testing.T, strength float64) int64 {
	t.Helper()
	s := NewSynthesizer(rand.New(rand.NewSource(3)))
	dc, mask := newPaper(64, 8)
	before := clonePix(dc)
	s.Apply(dc, mask, strength)
	after := clonePix(dc)

	var sum int64
	for i := range before {
		d := int64(before[i]) - int64(after[i])
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return sum
}

func newPaper(size, maskInset int) (*gg.Context, *image.Alpha) {
	dc := gg.NewContext(size, size)
	dc.SetRGB(0.97, 0.95, 0.9)
	dc.Clear()

	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	for y := maskInset; y < size-maskInset; y++ {
		for x := maskInset; x < size-maskInset; x++ {
			mask.Pix[mask.PixOffset(x, y)] = 0xff
		}
	}
	return dc, mask
}

func clonePix(dc *gg.Context) []uint8 {
	img := dc.Image().(*image.RGBA)
	out := make([]uint8, len(img.Pix))
	copy(out, img.Pix)
	return out
}
