// Package texture synthesizes paper grain inside the silhouette: a small
// per-pixel luminance perturbation across the clipped region followed by
// scattered short fiber strokes in a muted tan. Both effects scale
// monotonically with textureStrength, and strength zero is a strict no-op.
package texture

import (
	"image"
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/fogleman/gg"

	"github.com/akshaye1/Artifex-Canvas/pkg/mapping"
)

// Config holds the texture tuning constants.
type Config struct {
	// MaxGrain is the per-channel luminance perturbation range (in 8-bit
	// channel units) at textureStrength 100.
	MaxGrain float64 `json:"max_grain"`
	// FibersPerKilopixel is the fiber count per thousand silhouette pixels
	// at textureStrength 100.
	FibersPerKilopixel float64 `json:"fibers_per_kilopixel"`
	// FiberMinLength/FiberMaxLength bound the stroke length in pixels.
	FiberMinLength float64 `json:"fiber_min_length"`
	FiberMaxLength float64 `json:"fiber_max_length"`
	// FiberAlpha is the stroke opacity at textureStrength 100.
	FiberAlpha float64 `json:"fiber_alpha"`
	// FiberColor is the muted tan fiber tint.
	FiberColor color.NRGBA `json:"fiber_color"`
}

// DefaultConfig returns the standard texture constants.
func DefaultConfig() Config {
	return Config{
		MaxGrain:           16,
		FibersPerKilopixel: 1.2,
		FiberMinLength:     4,
		FiberMaxLength:     14,
		FiberAlpha:         0.22,
		FiberColor:         color.NRGBA{R: 168, G: 142, B: 108, A: 255},
	}
}

// Synthesizer scatters grain and fibers. The random source is injectable for
// deterministic tests; pass nil for a time-seeded source.
type Synthesizer struct {
	cfg Config
	rng *rand.Rand
}

// NewSynthesizer creates a Synthesizer with default constants.
func NewSynthesizer(rng *rand.Rand) *Synthesizer {
	return NewSynthesizerWithConfig(rng, DefaultConfig())
}

// NewSynthesizerWithConfig creates a Synthesizer with custom constants.
func NewSynthesizerWithConfig(rng *rand.Rand, cfg Config) *Synthesizer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Synthesizer{cfg: cfg, rng: rng}
}

// Apply perturbs the canvas inside mask and scatters fiber strokes. The dc
// clip must already be set to the silhouette so strokes cannot leak outside;
// the grain pass uses the mask directly. strength at or below zero returns
// without touching a single pixel.
func (s *Synthesizer) Apply(dc *gg.Context, mask *image.Alpha, strength float64) {
	if strength <= 0 {
		return
	}
	strength = mapping.Clamp(strength, 0, 100) / 100

	area := s.grain(dc, mask, strength)
	s.fibers(dc, mask, strength, area)
}

// grain applies the per-pixel luminance perturbation and returns the number
// of silhouette pixels covered by the mask.
func (s *Synthesizer) grain(dc *gg.Context, mask *image.Alpha, strength float64) int {
	rgba, ok := dc.Image().(*image.RGBA)
	if !ok {
		return 0
	}

	amp := s.cfg.MaxGrain * strength
	area := 0
	b := rgba.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if mask != nil && mask.AlphaAt(x, y).A == 0 {
				continue
			}
			area++
			delta := (s.rng.Float64()*2 - 1) * amp
			i := rgba.PixOffset(x, y)
			rgba.Pix[i+0] = perturb(rgba.Pix[i+0], delta)
			rgba.Pix[i+1] = perturb(rgba.Pix[i+1], delta)
			rgba.Pix[i+2] = perturb(rgba.Pix[i+2], delta)
		}
	}
	return area
}

func perturb(c uint8, delta float64) uint8 {
	v := float64(c) + delta
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// fibers scatters short randomly oriented strokes across the silhouette.
func (s *Synthesizer) fibers(dc *gg.Context, mask *image.Alpha, strength float64, area int) {
	if area == 0 {
		return
	}
	count := int(float64(area) / 1000 * s.cfg.FibersPerKilopixel * strength)
	if count == 0 {
		return
	}

	b := dc.Image().Bounds()
	alpha := s.cfg.FiberAlpha * (0.5 + 0.5*strength)
	tint := s.cfg.FiberColor
	dc.SetColor(color.NRGBA{R: tint.R, G: tint.G, B: tint.B, A: uint8(mapping.Clamp01(alpha) * 255)})
	dc.SetLineWidth(1)
	dc.SetLineCap(gg.LineCapRound)

	for i := 0; i < count; i++ {
		// Rejection-sample a start point inside the silhouette.
		var x, y float64
		found := false
		for try := 0; try < 8; try++ {
			x = float64(b.Min.X) + s.rng.Float64()*float64(b.Dx())
			y = float64(b.Min.Y) + s.rng.Float64()*float64(b.Dy())
			if mask == nil || mask.AlphaAt(int(x), int(y)).A > 0 {
				found = true
				break
			}
		}
		if !found {
			continue
		}

		angle := s.rng.Float64() * 2 * math.Pi
		length := s.cfg.FiberMinLength + s.rng.Float64()*(s.cfg.FiberMaxLength-s.cfg.FiberMinLength)
		dc.DrawLine(x, y, x+math.Cos(angle)*length, y+math.Sin(angle)*length)
		dc.Stroke()
	}
}
