// Package shadow paints the layered drop shadow beneath the torn silhouette.
// The filled outline is rendered to an offscreen layer, Gaussian-blurred and
// composited at the mapped offset: a wide faint penumbra pass first, then
// the primary shadow on top of it. Both passes happen strictly before the
// paper fill so the shadow only shows outside the silhouette.
package shadow

import (
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/akshaye1/Artifex-Canvas/pkg/mapping"
	"github.com/akshaye1/Artifex-Canvas/pkg/silhouette"
	"github.com/akshaye1/Artifex-Canvas/pkg/types"
)

// Config holds the shadow tuning constants.
type Config struct {
	// MaxOffset is the pixel offset at shadowOffsetX/Y 0 or 100 (50 is the
	// neutral zero point).
	MaxOffset float64 `json:"max_offset"`
	// MaxSigma is the Gaussian sigma at shadowBlur 100.
	MaxSigma float64 `json:"max_sigma"`
	// MaxOpacity is the primary pass opacity at shadowStrength 100.
	MaxOpacity float64 `json:"max_opacity"`
	// PenumbraSigmaScale widens the secondary pass relative to the primary.
	PenumbraSigmaScale float64 `json:"penumbra_sigma_scale"`
	// PenumbraOpacityScale fades the secondary pass relative to the primary.
	PenumbraOpacityScale float64 `json:"penumbra_opacity_scale"`
	// Color is the shadow tint; alpha is derived from shadowStrength.
	Color color.NRGBA `json:"color"`
}

// DefaultConfig returns the standard shadow constants.
func DefaultConfig() Config {
	return Config{
		MaxOffset:            40,
		MaxSigma:             18,
		MaxOpacity:           0.55,
		PenumbraSigmaScale:   1.8,
		PenumbraOpacityScale: 0.4,
		Color:                color.NRGBA{R: 18, G: 17, B: 24, A: 255},
	}
}

// Params are the shadow scalars resolved to pixel space.
type Params struct {
	OffsetX float64
	OffsetY float64
	Sigma   float64
	Opacity float64
}

// MapParams converts the four 0-100 shadow parameters to pixel-space values.
// Offsets are centered on 50, so 50 maps to exactly zero and values below it
// go negative.
func MapParams(p types.StyleParameters, cfg Config) Params {
	return Params{
		OffsetX: mapping.MapRange(p.ShadowOffsetX, 0, 100, -cfg.MaxOffset, cfg.MaxOffset),
		OffsetY: mapping.MapRange(p.ShadowOffsetY, 0, 100, -cfg.MaxOffset, cfg.MaxOffset),
		Sigma:   mapping.MapRange(p.ShadowBlur, 0, 100, 0, cfg.MaxSigma),
		Opacity: mapping.MapRange(p.ShadowStrength, 0, 100, 0, cfg.MaxOpacity),
	}
}

// Paint composites the shadow layers onto dc. A zero shadowStrength is a
// no-op and leaves dc untouched.
func Paint(dc *gg.Context, path *silhouette.Path, p types.StyleParameters, cfg Config) {
	if p.ShadowStrength <= 0 {
		return
	}
	sp := MapParams(p, cfg)

	// Soft secondary penumbra underneath for ambient depth.
	paintPass(dc, path, cfg.Color,
		sp.Opacity*cfg.PenumbraOpacityScale,
		sp.Sigma*cfg.PenumbraSigmaScale+1,
		sp.OffsetX, sp.OffsetY)

	// Primary shadow.
	paintPass(dc, path, cfg.Color, sp.Opacity, sp.Sigma, sp.OffsetX, sp.OffsetY)
}

func paintPass(dc *gg.Context, path *silhouette.Path, tint color.NRGBA, opacity, sigma, dx, dy float64) {
	if opacity <= 0 {
		return
	}

	layer := gg.NewContext(dc.Width(), dc.Height())
	layer.SetColor(color.NRGBA{
		R: tint.R,
		G: tint.G,
		B: tint.B,
		A: uint8(mapping.Clamp01(opacity) * 255),
	})
	path.Trace(layer)
	layer.Fill()

	blurred := imaging.Blur(layer.Image(), sigma)
	dc.DrawImage(blurred, int(math.Round(dx)), int(math.Round(dy)))
}
