// Package noise generates the 1-D deviation profiles that shape the torn
// silhouette. Each silhouette edge gets its own independently randomized
// profile: a fixed-length sequence of signed samples built from a few
// low-frequency sine harmonics plus a smaller uniform perturbation, with an
// amplitude envelope that tapers to zero near the ends so adjacent edges
// meet cleanly at the corners.
package noise

import (
	"math"
	"math/rand"
	"time"

	"github.com/akshaye1/Artifex-Canvas/pkg/mapping"
)

// Edge identifies one side of the silhouette.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft

	edgeCount = 4
)

// Key-point count bounds derived from the edgeDetails parameter.
const (
	minKeyPoints = 6
	maxKeyPoints = 40
)

// Profile is an ordered sequence of signed deviation samples in [-1,1].
// Values are unscaled; the silhouette builder applies the intensity-derived
// amplitude downstream.
type Profile []float64

// Sample interpolates the profile at position t in [0,1] using cosine
// interpolation between the two nearest key points.
func (p Profile) Sample(t float64) float64 {
	if len(p) == 0 {
		return 0
	}
	if len(p) == 1 {
		return p[0]
	}
	t = mapping.Clamp01(t)
	pos := t * float64(len(p)-1)
	i := int(pos)
	if i >= len(p)-1 {
		return p[len(p)-1]
	}
	return mapping.CosineInterpolate(p[i], p[i+1], pos-float64(i))
}

// ProfileSet holds the four edge profiles of one generation, together with
// the parameter values that produced them. A set is regenerated as a whole
// whenever edgeDetails or edgeIntensity changes and stays fixed otherwise,
// so the torn shape does not jitter when unrelated parameters move.
type ProfileSet struct {
	profiles  [edgeCount]Profile
	details   float64
	intensity float64
}

// Profile returns the profile for one edge.
func (s *ProfileSet) Profile(e Edge) Profile {
	return s.profiles[e]
}

// KeyPoints returns the sample count shared by all four profiles.
func (s *ProfileSet) KeyPoints() int {
	return len(s.profiles[EdgeTop])
}

// Matches reports whether the set was generated for the given parameter
// values and can therefore be reused as-is.
func (s *ProfileSet) Matches(edgeDetails, edgeIntensity float64) bool {
	return s != nil && s.details == edgeDetails && s.intensity == edgeIntensity
}

// Generator produces profile sets. The random source is injectable so tests
// can assert deterministic geometry; pass nil for a time-seeded source.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator backed by rng, or by a time-seeded source
// when rng is nil.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// KeyPoints maps the edgeDetails parameter to the per-edge key-point count.
func KeyPoints(edgeDetails float64) int {
	return int(math.Round(mapping.MapRange(edgeDetails, 0, 100, minKeyPoints, maxKeyPoints)))
}

// Generate builds a fresh set of four edge profiles for the given parameter
// values. All four are regenerated together.
func (g *Generator) Generate(edgeDetails, edgeIntensity float64) *ProfileSet {
	n := KeyPoints(edgeDetails)
	set := &ProfileSet{details: edgeDetails, intensity: edgeIntensity}
	for e := 0; e < edgeCount; e++ {
		set.profiles[e] = g.profile(n)
	}
	return set
}

// profile builds one edge profile of n samples. Three sine harmonics with
// random frequency and phase bias the shape toward long waves; a uniform
// perturbation roughens it; sin(pi*t) tapers the ends to zero.
func (g *Generator) profile(n int) Profile {
	f1 := 1 + g.rng.Float64()      // 1-2 cycles along the edge
	f2 := 3 + g.rng.Float64()*2    // 3-5
	f3 := 6 + g.rng.Float64()*3    // 6-9
	p1 := g.rng.Float64() * 2 * math.Pi
	p2 := g.rng.Float64() * 2 * math.Pi
	p3 := g.rng.Float64() * 2 * math.Pi

	p := make(Profile, n)
	for i := range p {
		t := float64(i) / float64(n-1)
		v := 0.50*math.Sin(2*math.Pi*f1*t+p1) +
			0.30*math.Sin(2*math.Pi*f2*t+p2) +
			0.15*math.Sin(2*math.Pi*f3*t+p3)
		v += (g.rng.Float64()*2 - 1) * 0.25
		v *= math.Sin(math.Pi * t)
		p[i] = mapping.Clamp(v, -1, 1)
	}
	return p
}
