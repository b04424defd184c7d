// Package geometry computes the displayed content size and the border band
// that surrounds it, turning the size and edgeThickness parameters plus the
// container bounds into a concrete canvas layout.
package geometry

import (
	"math"

	"github.com/akshaye1/Artifex-Canvas/pkg/mapping"
	"github.com/akshaye1/Artifex-Canvas/pkg/types"
)

// Config holds the geometry tuning constants.
type Config struct {
	// MaxWidth/MaxHeight replace a missing or degenerate container bound.
	MaxWidth  int `json:"max_width"`
	MaxHeight int `json:"max_height"`
	// MinContent is the smallest content side ever produced; degenerate
	// source images fall back to it instead of failing.
	MinContent int `json:"min_content"`
	// BorderFraction caps the border at this share of the content's short
	// side when edgeThickness is 100.
	BorderFraction float64 `json:"border_fraction"`
}

// DefaultConfig returns the standard geometry constants.
func DefaultConfig() Config {
	return Config{
		MaxWidth:       960,
		MaxHeight:      640,
		MinContent:     16,
		BorderFraction: 0.2,
	}
}

// Layout is the resolved output geometry of one render.
type Layout struct {
	Scale         float64 // applied content scale factor
	ContentWidth  int
	ContentHeight int
	Border        float64 // border thickness in pixels, one side
	CanvasWidth   int     // ContentWidth + 2*Border, rounded
	CanvasHeight  int
}

// Compute derives the layout from the source image's natural dimensions, the
// container bounds and the style parameters. Degenerate inputs (zero-size
// image or container) resolve to the configured minimums; Compute never
// fails.
func Compute(srcWidth, srcHeight int, bounds types.Bounds, params types.StyleParameters, cfg Config) Layout {
	maxW := bounds.Width
	if maxW <= 0 {
		maxW = cfg.MaxWidth
	}
	maxH := bounds.Height
	if maxH <= 0 {
		maxH = cfg.MaxHeight
	}
	if srcWidth <= 0 {
		srcWidth = cfg.MinContent
	}
	if srcHeight <= 0 {
		srcHeight = cfg.MinContent
	}

	scale := mapping.MapRange(params.Size, 10, 100, 0.2, 1.0)
	cw := float64(srcWidth) * scale
	ch := float64(srcHeight) * scale

	// Shrink-only fit into the container. Two passes resolve the coupling
	// between the width and height constraints while preserving aspect.
	for i := 0; i < 2; i++ {
		if cw > float64(maxW) {
			ch *= float64(maxW) / cw
			cw = float64(maxW)
		}
		if ch > float64(maxH) {
			cw *= float64(maxH) / ch
			ch = float64(maxH)
		}
	}

	contentW := int(math.Round(cw))
	contentH := int(math.Round(ch))
	if contentW < 1 {
		contentW = 1
	}
	if contentH < 1 {
		contentH = 1
	}

	short := math.Min(float64(contentW), float64(contentH))
	border := mapping.MapRange(params.EdgeThickness, 0, 100, 0, short*cfg.BorderFraction)

	return Layout{
		Scale:         scale,
		ContentWidth:  contentW,
		ContentHeight: contentH,
		Border:        border,
		CanvasWidth:   contentW + int(math.Round(2*border)),
		CanvasHeight:  contentH + int(math.Round(2*border)),
	}
}
