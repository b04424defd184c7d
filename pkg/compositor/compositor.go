// Package compositor owns the paint order of a render: shadow layers, paper
// fill, edge depth cues, the clipped photograph and the grain pass, in that
// sequence on a single canvas. It also produces the informational
// placeholder frames shown when no bitmap is available.
package compositor

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/akshaye1/Artifex-Canvas/pkg/geometry"
	"github.com/akshaye1/Artifex-Canvas/pkg/shadow"
	"github.com/akshaye1/Artifex-Canvas/pkg/silhouette"
	"github.com/akshaye1/Artifex-Canvas/pkg/texture"
	"github.com/akshaye1/Artifex-Canvas/pkg/types"
)

// Placeholder messages. The two states are deliberately distinct so the user
// can tell a missing upload from a broken one.
const (
	MsgNoImage      = "Upload an image to begin"
	MsgDecodeFailed = "Could not decode the uploaded image"
)

// Config holds the compositor tuning constants.
type Config struct {
	// PaperColor is the off-white base fill of the torn sheet.
	PaperColor color.NRGBA `json:"paper_color"`
	// InsetLineColor/Width describe the faint dark boundary stroke that
	// reads as tear depth.
	InsetLineColor color.NRGBA `json:"inset_line_color"`
	InsetLineWidth float64     `json:"inset_line_width"`
	// HighlightColor/Dash describe the light dashed ridge highlight.
	HighlightColor color.NRGBA `json:"highlight_color"`
	HighlightDash  []float64   `json:"highlight_dash"`
	// Placeholder frame geometry and colors.
	PlaceholderWidth      int         `json:"placeholder_width"`
	PlaceholderHeight     int         `json:"placeholder_height"`
	PlaceholderBackground color.NRGBA `json:"placeholder_background"`
	PlaceholderForeground color.NRGBA `json:"placeholder_foreground"`
}

// DefaultConfig returns the standard compositor constants.
func DefaultConfig() Config {
	return Config{
		PaperColor:            color.NRGBA{R: 250, G: 247, B: 240, A: 255},
		InsetLineColor:        color.NRGBA{R: 60, G: 55, B: 45, A: 70},
		InsetLineWidth:        1.5,
		HighlightColor:        color.NRGBA{R: 255, G: 255, B: 255, A: 90},
		HighlightDash:         []float64{6, 4},
		PlaceholderWidth:      640,
		PlaceholderHeight:     360,
		PlaceholderBackground: color.NRGBA{R: 238, G: 236, B: 230, A: 255},
		PlaceholderForeground: color.NRGBA{R: 90, G: 88, B: 82, A: 255},
	}
}

// Compositor assembles the final bitmap.
type Compositor struct {
	cfg       Config
	shadowCfg shadow.Config
	synth     *texture.Synthesizer
}

// New creates a Compositor.
func New(cfg Config, shadowCfg shadow.Config, synth *texture.Synthesizer) *Compositor {
	return &Compositor{cfg: cfg, shadowCfg: shadowCfg, synth: synth}
}

// Render paints one complete frame. Each step runs to completion before the
// next begins; steps whose driving parameter is at its neutral value are
// skipped without altering the geometry of the others.
func (c *Compositor) Render(src image.Image, layout geometry.Layout, path *silhouette.Path, params types.StyleParameters) image.Image {
	dc := gg.NewContext(layout.CanvasWidth, layout.CanvasHeight)

	// 1. Shadow layers go down first so they only show outside the fill.
	shadow.Paint(dc, path, params, c.shadowCfg)

	// 2. Opaque paper base.
	dc.SetColor(c.cfg.PaperColor)
	path.Trace(dc)
	dc.Fill()

	// 3. Tear depth cues; pointless on the plain rectangle.
	if !path.IsRectangle() {
		dc.SetColor(c.cfg.InsetLineColor)
		dc.SetLineWidth(c.cfg.InsetLineWidth)
		path.Trace(dc)
		dc.Stroke()

		dc.SetColor(c.cfg.HighlightColor)
		dc.SetLineWidth(1)
		dc.SetDash(c.cfg.HighlightDash...)
		path.Trace(dc)
		dc.Stroke()
		dc.SetDash()
	}

	// 4. Photograph and grain, clipped to the silhouette.
	dc.Push()
	path.Trace(dc)
	dc.Clip()

	if src != nil {
		scaled := imaging.Resize(src, layout.ContentWidth, layout.ContentHeight, imaging.Lanczos)
		off := int(math.Round(layout.Border))
		dc.DrawImage(scaled, off, off)
	}

	if c.synth != nil && params.TextureStrength > 0 {
		c.synth.Apply(dc, silhouetteMask(layout, path), params.TextureStrength)
	}
	dc.Pop()

	return dc.Image()
}

// silhouetteMask rasterizes the path into an alpha mask for the per-pixel
// grain pass.
func silhouetteMask(layout geometry.Layout, path *silhouette.Path) *image.Alpha {
	mc := gg.NewContext(layout.CanvasWidth, layout.CanvasHeight)
	mc.SetRGB(1, 1, 1)
	path.Trace(mc)
	mc.Fill()
	return mc.AsMask()
}

// PlaceholderNoImage renders the fixed-size frame shown before any source
// has been supplied.
func (c *Compositor) PlaceholderNoImage() image.Image {
	return c.placeholder(MsgNoImage)
}

// PlaceholderDecodeFailed renders the frame shown when the uploaded bytes
// could not be decoded.
func (c *Compositor) PlaceholderDecodeFailed() image.Image {
	return c.placeholder(MsgDecodeFailed)
}

func (c *Compositor) placeholder(msg string) image.Image {
	w, h := c.cfg.PlaceholderWidth, c.cfg.PlaceholderHeight
	if w <= 0 {
		w = 640
	}
	if h <= 0 {
		h = 360
	}

	dc := gg.NewContext(w, h)
	dc.SetColor(c.cfg.PlaceholderBackground)
	dc.Clear()

	dc.SetColor(c.cfg.PlaceholderForeground)
	dc.SetLineWidth(2)
	dc.SetDash(8, 6)
	dc.DrawRectangle(12, 12, float64(w)-24, float64(h)-24)
	dc.Stroke()
	dc.SetDash()

	dc.DrawStringAnchored(msg, float64(w)/2, float64(h)/2, 0.5, 0.5)
	return dc.Image()
}
