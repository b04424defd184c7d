package silhouette

import (
	"math"
	"math/rand"
	"time"

	"github.com/akshaye1/Artifex-Canvas/pkg/geometry"
	"github.com/akshaye1/Artifex-Canvas/pkg/mapping"
	"github.com/akshaye1/Artifex-Canvas/pkg/noise"
	"github.com/akshaye1/Artifex-Canvas/pkg/types"
)

// Config holds the silhouette tuning constants.
type Config struct {
	// MinSegmentsPerEdge floors the per-edge sampling so degenerate shapes
	// never occur at low edgeDetails.
	MinSegmentsPerEdge int `json:"min_segments_per_edge"`
	// SegmentsPerKeyPoint multiplies the noise key-point count into the
	// per-edge segment count.
	SegmentsPerKeyPoint int `json:"segments_per_key_point"`
	// TearFraction scales the maximum tear deviation relative to the border
	// thickness at edgeIntensity 100. TearFraction+CutoutFraction must stay
	// below 0.5 so the tear band fits inside the border.
	TearFraction float64 `json:"tear_fraction"`
	// CutoutFraction scales the fine fray jitter relative to the border
	// thickness at cutoutStyle 100.
	CutoutFraction float64 `json:"cutout_fraction"`
	// ParallelJitter is the fraction of the segment spacing by which sample
	// positions wander along the edge.
	ParallelJitter float64 `json:"parallel_jitter"`
}

// DefaultConfig returns the standard silhouette constants.
func DefaultConfig() Config {
	return Config{
		MinSegmentsPerEdge:  8,
		SegmentsPerKeyPoint: 3,
		TearFraction:        0.4,
		CutoutFraction:      0.08,
		ParallelJitter:      0.35,
	}
}

// Builder walks the four canvas edges and assembles the torn outline from
// the noise profiles. The random source drives only the fine fray and
// spacing jitter; the coarse tear shape comes from the profiles, so a fixed
// profile set keeps the silhouette stable across renders.
type Builder struct {
	cfg Config
	rng *rand.Rand
}

// NewBuilder creates a Builder with default constants. Pass nil to use a
// time-seeded random source.
func NewBuilder(rng *rand.Rand) *Builder {
	return NewBuilderWithConfig(rng, DefaultConfig())
}

// NewBuilderWithConfig creates a Builder with custom constants.
func NewBuilderWithConfig(rng *rand.Rand, cfg Config) *Builder {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.MinSegmentsPerEdge < 3 {
		cfg.MinSegmentsPerEdge = 3
	}
	if cfg.SegmentsPerKeyPoint < 1 {
		cfg.SegmentsPerKeyPoint = 1
	}
	return &Builder{cfg: cfg, rng: rng}
}

// edge describes one nominal straight side of the canvas: its start corner,
// walk direction, length and inward normal.
type edge struct {
	profile noise.Edge
	sx, sy  float64
	dx, dy  float64
	length  float64
	nx, ny  float64
}

// Build derives the closed silhouette path for the given layout. When the
// border is effectively zero or edgeIntensity is zero, tear generation is
// skipped entirely and the full canvas rectangle is returned; that short
// circuit is the documented degenerate case, not a tear style.
func (b *Builder) Build(layout geometry.Layout, params types.StyleParameters, profiles *noise.ProfileSet) *Path {
	w := float64(layout.CanvasWidth)
	h := float64(layout.CanvasHeight)

	if layout.Border < 0.5 || params.EdgeIntensity <= 0 || profiles == nil {
		return Rect(0, 0, w, h)
	}

	maxDev := mapping.MapRange(params.EdgeIntensity, 0, 100, 0, layout.Border*b.cfg.TearFraction)
	fray := mapping.MapRange(params.CutoutStyle, 0, 100, 0, layout.Border*b.cfg.CutoutFraction)

	// The nominal edge sits inset by the worst-case outward excursion so the
	// tear band always stays inside the canvas.
	inset := maxDev + fray
	if inset*2 >= math.Min(w, h) {
		return Rect(0, 0, w, h)
	}

	edges := []edge{
		{noise.EdgeTop, inset, inset, 1, 0, w - 2*inset, 0, 1},
		{noise.EdgeRight, w - inset, inset, 0, 1, h - 2*inset, -1, 0},
		{noise.EdgeBottom, w - inset, h - inset, -1, 0, w - 2*inset, 0, -1},
		{noise.EdgeLeft, inset, h - inset, 0, -1, h - 2*inset, 1, 0},
	}

	segs := profiles.KeyPoints() * b.cfg.SegmentsPerKeyPoint
	if segs < b.cfg.MinSegmentsPerEdge {
		segs = b.cfg.MinSegmentsPerEdge
	}

	var pts []Point
	for _, e := range edges {
		profile := profiles.Profile(e.profile)
		spacing := e.length / float64(segs)
		for i := 0; i < segs; i++ {
			t := float64(i) / float64(segs)
			env := math.Sin(math.Pi * t) // corners stay put

			// Perpendicular deviation: coarse profile shape plus fine fray.
			dev := profile.Sample(t)*maxDev + (b.rng.Float64()*2-1)*fray*env

			// Parallel jitter irregularizes the segment spacing.
			along := t*e.length + (b.rng.Float64()*2-1)*b.cfg.ParallelJitter*spacing*env

			pts = append(pts, Point{
				X: e.sx + e.dx*along + e.nx*dev,
				Y: e.sy + e.dy*along + e.ny*dev,
			})
		}
	}

	return smoothClosed(pts)
}

// smoothClosed connects the sampled points with quadratic curves through the
// segment midpoints, closing the loop. Curved joins avoid the faceted look
// of a straight polyline.
func smoothClosed(pts []Point) *Path {
	p := NewPath()
	if len(pts) < 3 {
		return p
	}

	last := pts[len(pts)-1]
	first := pts[0]
	p.MoveTo((last.X+first.X)/2, (last.Y+first.Y)/2)
	for i := range pts {
		cur := pts[i]
		next := pts[(i+1)%len(pts)]
		p.QuadraticTo(cur.X, cur.Y, (cur.X+next.X)/2, (cur.Y+next.Y)/2)
	}
	p.Close()
	return p
}
