// Package silhouette builds the closed torn-paper outline as a pure data
// structure and hands it to the paint backend only at draw time, keeping the
// geometry unit-testable without a canvas.
package silhouette

import (
	"math"

	"github.com/fogleman/gg"
)

// Point is a 2-D point in output bitmap coordinates.
type Point struct {
	X, Y float64
}

// Element is a single step of a path.
type Element interface {
	isElement()
}

// MoveTo starts a new subpath at Point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isElement() {}

// LineTo draws a straight segment to Point.
type LineTo struct {
	Point Point
}

func (LineTo) isElement() {}

// QuadTo draws a quadratic curve through Control to Point.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isElement() {}

// Path is an ordered list of elements describing a closed outline.
type Path struct {
	elements []Element
	rect     bool
}

// NewPath creates an empty path.
func NewPath() *Path {
	return &Path{elements: make([]Element, 0, 64)}
}

// MoveTo starts a new subpath.
func (p *Path) MoveTo(x, y float64) {
	p.elements = append(p.elements, MoveTo{Point: Point{x, y}})
}

// LineTo appends a straight segment.
func (p *Path) LineTo(x, y float64) {
	p.elements = append(p.elements, LineTo{Point: Point{x, y}})
}

// QuadraticTo appends a quadratic curve with control point (cx,cy).
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	p.elements = append(p.elements, QuadTo{Control: Point{cx, cy}, Point: Point{x, y}})
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
}

// Elements returns the ordered path elements.
func (p *Path) Elements() []Element {
	return p.elements
}

// IsRectangle reports whether the path is the plain-rectangle short circuit
// rather than a torn outline.
func (p *Path) IsRectangle() bool {
	return p.rect
}

// Rect builds the plain rectangle used when tearing is disabled.
func Rect(x, y, w, h float64) *Path {
	p := NewPath()
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
	p.rect = true
	return p
}

// Points returns every on-curve and control point of the path. Used by tests
// to check deviation bounds without rasterizing.
func (p *Path) Points() []Point {
	var pts []Point
	for _, el := range p.elements {
		switch e := el.(type) {
		case MoveTo:
			pts = append(pts, e.Point)
		case LineTo:
			pts = append(pts, e.Point)
		case QuadTo:
			pts = append(pts, e.Control, e.Point)
		}
	}
	return pts
}

// Bounds returns the axis-aligned bounding box of the path's points.
func (p *Path) Bounds() (minX, minY, maxX, maxY float64) {
	pts := p.Points()
	if len(pts) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, pt := range pts {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	return minX, minY, maxX, maxY
}

// Trace replays the path onto a drawing context. This is the single point of
// contact between the geometry data and the paint backend.
func (p *Path) Trace(dc *gg.Context) {
	for _, el := range p.elements {
		switch e := el.(type) {
		case MoveTo:
			dc.MoveTo(e.Point.X, e.Point.Y)
		case LineTo:
			dc.LineTo(e.Point.X, e.Point.Y)
		case QuadTo:
			dc.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case Close:
			dc.ClosePath()
		}
	}
}
