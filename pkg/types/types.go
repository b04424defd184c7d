// Package types defines the shared data model for the torn-paper renderer:
// the style parameter set, container bounds, the motion hint pair and the
// render output.
package types

import (
	"image"
	"time"
)

// StyleParameters holds the eleven user-facing style scalars. Every field is
// expected in the 0-100 range; ShadowOffsetX and ShadowOffsetY treat 50 as
// the neutral (zero offset) point.
type StyleParameters struct {
	Size            float64 `json:"size"`
	EdgeThickness   float64 `json:"edge_thickness"`
	EdgeIntensity   float64 `json:"edge_intensity"`
	EdgeDetails     float64 `json:"edge_details"`
	CutoutStyle     float64 `json:"cutout_style"`
	TextureStrength float64 `json:"texture_strength"`
	ShadowOffsetX   float64 `json:"shadow_offset_x"`
	ShadowOffsetY   float64 `json:"shadow_offset_y"`
	ShadowBlur      float64 `json:"shadow_blur"`
	ShadowStrength  float64 `json:"shadow_strength"`
	Movement        float64 `json:"movement"`
}

// DefaultStyle returns a balanced parameter set suitable as a starting point.
func DefaultStyle() StyleParameters {
	return StyleParameters{
		Size:            50,
		EdgeThickness:   35,
		EdgeIntensity:   40,
		EdgeDetails:     50,
		CutoutStyle:     25,
		TextureStrength: 30,
		ShadowOffsetX:   60,
		ShadowOffsetY:   65,
		ShadowBlur:      40,
		ShadowStrength:  45,
		Movement:        0,
	}
}

// Clamped returns a copy with every scalar forced into [0,100]. Out-of-range
// input is corrected here rather than rejected; the pipeline never fails on
// a bad parameter.
func (p StyleParameters) Clamped() StyleParameters {
	p.Size = clamp100(p.Size)
	p.EdgeThickness = clamp100(p.EdgeThickness)
	p.EdgeIntensity = clamp100(p.EdgeIntensity)
	p.EdgeDetails = clamp100(p.EdgeDetails)
	p.CutoutStyle = clamp100(p.CutoutStyle)
	p.TextureStrength = clamp100(p.TextureStrength)
	p.ShadowOffsetX = clamp100(p.ShadowOffsetX)
	p.ShadowOffsetY = clamp100(p.ShadowOffsetY)
	p.ShadowBlur = clamp100(p.ShadowBlur)
	p.ShadowStrength = clamp100(p.ShadowStrength)
	p.Movement = clamp100(p.Movement)
	return p
}

func clamp100(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Bounds is the container the rendered canvas must fit into.
type Bounds struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Motion is the floating-animation hint derived from the movement parameter.
// It is consumed by the presentation layer and never rendered into the
// bitmap. When Enabled is false the looping animation must be suppressed
// entirely, not run with zero amplitude.
type Motion struct {
	Amplitude float64
	Period    time.Duration
	Enabled   bool
}

// RenderOutput is the result of one render pass: the composited bitmap plus
// the motion hint. Placeholder is true when the bitmap is an informational
// frame rather than a stylized photograph.
type RenderOutput struct {
	Image       image.Image
	Motion      Motion
	Placeholder bool
}
