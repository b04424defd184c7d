// Package artifex renders photographs as torn paper sheets: a procedurally
// jagged silhouette, a layered drop shadow, synthesized paper grain and a
// derived floating-motion hint for the presentation layer.
//
// Basic usage:
//
//	package main
//
//	import (
//		"log"
//		"os"
//
//		artifex "github.com/akshaye1/Artifex-Canvas"
//		"github.com/akshaye1/Artifex-Canvas/pkg/types"
//	)
//
//	func main() {
//		renderer := artifex.New()
//
//		data, err := os.ReadFile("photo.jpg")
//		if err != nil {
//			log.Fatal(err)
//		}
//		if err := renderer.SetSourceBytes(data); err != nil {
//			log.Printf("decode failed, placeholder will be shown: %v", err)
//		}
//
//		out := renderer.Render(types.DefaultStyle(), types.Bounds{Width: 960, Height: 640})
//		_ = out.Image  // composited bitmap
//		_ = out.Motion // (amplitude, period) hint for a floating loop
//
//		f, err := os.Create("photo_torn.jpg")
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer f.Close()
//		if err := renderer.Export(f); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// The pipeline is pure computation: it receives a decoded bitmap plus a
// parameter set and produces a bitmap plus animation hints. It never reads
// files, persists state or issues network calls; upload, authentication and
// billing live outside this module and only ever hand it inputs.
//
// Rendering is single-threaded and synchronous per frame. A Renderer is a
// session object: it owns the cached noise profiles (regenerated only when
// edgeDetails or edgeIntensity changes, or when a new source arrives) and
// the random source. It is not safe for concurrent use; drive one Renderer
// per output target.
package artifex

import (
	"errors"
	"image"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/akshaye1/Artifex-Canvas/internal/config"
	"github.com/akshaye1/Artifex-Canvas/pkg/codec"
	"github.com/akshaye1/Artifex-Canvas/pkg/compositor"
	"github.com/akshaye1/Artifex-Canvas/pkg/geometry"
	"github.com/akshaye1/Artifex-Canvas/pkg/motion"
	"github.com/akshaye1/Artifex-Canvas/pkg/noise"
	"github.com/akshaye1/Artifex-Canvas/pkg/silhouette"
	"github.com/akshaye1/Artifex-Canvas/pkg/texture"
	"github.com/akshaye1/Artifex-Canvas/pkg/types"
)

// Version of the library.
const Version = "1.0.0"

// ErrNothingRendered is returned by Export before the first render.
var ErrNothingRendered = errors.New("artifex: nothing rendered yet")

// Renderer is a render session. It holds the only state carried between
// renders: the source bitmap, the cached noise profiles and the random
// source used for fray jitter and texture scatter.
type Renderer struct {
	cfg     *config.Config
	gen     *noise.Generator
	builder *silhouette.Builder
	comp    *compositor.Compositor

	profiles     *noise.ProfileSet
	src          image.Image
	srcFormat    string
	decodeFailed bool
	last         types.RenderOutput
}

// New creates a Renderer with default configuration and a non-deterministic
// random source.
func New() *Renderer {
	return NewWithConfig(config.Default())
}

// NewSeeded creates a Renderer whose randomized geometry is reproducible:
// equal seeds, sources and parameters give pixel-identical output.
func NewSeeded(seed int64) *Renderer {
	return newRenderer(config.Default(), rand.New(rand.NewSource(seed)))
}

// NewSeededWithConfig combines a reproducible random source with custom
// tuning constants.
func NewSeededWithConfig(seed int64, cfg *config.Config) *Renderer {
	return newRenderer(cfg, rand.New(rand.NewSource(seed)))
}

// NewWithConfig creates a Renderer with custom tuning constants.
func NewWithConfig(cfg *config.Config) *Renderer {
	return newRenderer(cfg, rand.New(rand.NewSource(time.Now().UnixNano())))
}

func newRenderer(cfg *config.Config, rng *rand.Rand) *Renderer {
	if cfg == nil {
		cfg = config.Default()
	}
	synth := texture.NewSynthesizerWithConfig(rng, cfg.Texture)
	return &Renderer{
		cfg:     cfg,
		gen:     noise.NewGenerator(rng),
		builder: silhouette.NewBuilderWithConfig(rng, cfg.Silhouette),
		comp:    compositor.New(cfg.Compositor, cfg.Shadow, synth),
	}
}

// SetSource installs a decoded bitmap as the render source. The format name
// ("png", "jpeg", "webp") steers Export; pass "" to export PNG. Cached
// noise profiles are discarded: a new subject gets a fresh tear.
func (r *Renderer) SetSource(img image.Image, format string) {
	r.src = img
	r.srcFormat = format
	r.decodeFailed = false
	r.profiles = nil
}

// SetSourceBytes decodes raw upload bytes and installs the result. A decode
// failure is recorded rather than fatal: subsequent renders produce the
// decode-failed placeholder. The error is returned for callers that want to
// log it.
func (r *Renderer) SetSourceBytes(data []byte) error {
	img, format, err := codec.Decode(data)
	if err != nil {
		Logger().Warn("source decode failed", slog.Any("error", err))
		r.src = nil
		r.srcFormat = ""
		r.decodeFailed = true
		r.profiles = nil
		return err
	}
	r.SetSource(img, format)
	return nil
}

// ClearSource returns the session to the no-image state.
func (r *Renderer) ClearSource() {
	r.src = nil
	r.srcFormat = ""
	r.decodeFailed = false
	r.profiles = nil
}

// Render produces one complete frame from the current source and the given
// parameters. Out-of-range parameters are clamped, degenerate geometry falls
// back to minimum dimensions and a missing or undecodable source yields a
// placeholder frame; Render never fails.
func (r *Renderer) Render(params types.StyleParameters, bounds types.Bounds) types.RenderOutput {
	params = params.Clamped()
	hint := motion.Map(params.Movement, r.cfg.Motion)

	if r.src == nil {
		var img image.Image
		if r.decodeFailed {
			img = r.comp.PlaceholderDecodeFailed()
		} else {
			img = r.comp.PlaceholderNoImage()
		}
		r.last = types.RenderOutput{Image: img, Motion: hint, Placeholder: true}
		return r.last
	}

	b := r.src.Bounds()
	layout := geometry.Compute(b.Dx(), b.Dy(), bounds, params, r.cfg.Geometry)

	// Profiles survive until a tear-shape parameter changes, so the torn
	// outline stays put while unrelated sliders move.
	if !r.profiles.Matches(params.EdgeDetails, params.EdgeIntensity) {
		r.profiles = r.gen.Generate(params.EdgeDetails, params.EdgeIntensity)
		Logger().Debug("noise profiles regenerated",
			slog.Float64("edge_details", params.EdgeDetails),
			slog.Float64("edge_intensity", params.EdgeIntensity))
	}

	path := r.builder.Build(layout, params, r.profiles)
	img := r.comp.Render(r.src, layout, path, params)

	Logger().Debug("frame rendered",
		slog.Int("canvas_width", layout.CanvasWidth),
		slog.Int("canvas_height", layout.CanvasHeight),
		slog.Bool("torn", !path.IsRectangle()))

	r.last = types.RenderOutput{Image: img, Motion: hint}
	return r.last
}

// Output returns the most recent render result.
func (r *Renderer) Output() types.RenderOutput {
	return r.last
}

// Export encodes the most recent output for download. The upload's format is
// kept where feasible (unknown formats export as PNG); the configured output
// format, when set, overrides it. Export reads the current output and never
// re-renders.
func (r *Renderer) Export(w io.Writer) error {
	if r.last.Image == nil {
		return ErrNothingRendered
	}
	format := r.cfg.Output.Format
	if format == "" {
		format = codec.ExportFormat(r.srcFormat)
	}
	return codec.Encode(w, r.last.Image, format, codec.Options{
		Quality:  r.cfg.Output.Quality,
		Lossless: r.cfg.Output.Lossless,
	})
}

// GetVersion returns the library version.
func GetVersion() string {
	return Version
}
