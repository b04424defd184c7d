package main

import (
	"flag"
	"log"
	"os"

	artifex "github.com/akshaye1/Artifex-Canvas"
	"github.com/akshaye1/Artifex-Canvas/internal/config"
	"github.com/akshaye1/Artifex-Canvas/internal/utils"
	"github.com/akshaye1/Artifex-Canvas/pkg/types"
)

func main() {
	var in, outDir, format, cfgPath string
	var quality int
	var lossless bool
	var seed int64
	var width, height int

	defaults := types.DefaultStyle()
	params := defaults

	flag.StringVar(&in, "in", "", "input image path (jpg/png/webp); empty renders the upload placeholder")
	flag.StringVar(&outDir, "out", "out", "output directory")
	flag.StringVar(&format, "format", "", "output format: jpg|png|webp (default: match input)")
	flag.IntVar(&quality, "quality", 90, "JPEG/WebP output quality (1-100)")
	flag.BoolVar(&lossless, "lossless", false, "WebP lossless mode")
	flag.Int64Var(&seed, "seed", 0, "random seed for reproducible tear shapes (0=random)")
	flag.StringVar(&cfgPath, "config", "", "config file path (JSON)")
	flag.IntVar(&width, "width", 1200, "container width in px")
	flag.IntVar(&height, "height", 800, "container height in px")

	flag.Float64Var(&params.Size, "size", defaults.Size, "photo size within the container (0-100)")
	flag.Float64Var(&params.EdgeThickness, "edge-thickness", defaults.EdgeThickness, "paper border width (0-100)")
	flag.Float64Var(&params.EdgeIntensity, "edge-intensity", defaults.EdgeIntensity, "tear depth (0-100)")
	flag.Float64Var(&params.EdgeDetails, "edge-details", defaults.EdgeDetails, "tear detail density (0-100)")
	flag.Float64Var(&params.CutoutStyle, "cutout-style", defaults.CutoutStyle, "fray randomness (0-100)")
	flag.Float64Var(&params.TextureStrength, "texture-strength", defaults.TextureStrength, "paper grain and fibers (0-100)")
	flag.Float64Var(&params.ShadowOffsetX, "shadow-x", defaults.ShadowOffsetX, "shadow horizontal offset (0-100, 50=centered)")
	flag.Float64Var(&params.ShadowOffsetY, "shadow-y", defaults.ShadowOffsetY, "shadow vertical offset (0-100, 50=centered)")
	flag.Float64Var(&params.ShadowBlur, "shadow-blur", defaults.ShadowBlur, "shadow softness (0-100)")
	flag.Float64Var(&params.ShadowStrength, "shadow-strength", defaults.ShadowStrength, "shadow opacity (0-100)")
	flag.Float64Var(&params.Movement, "movement", defaults.Movement, "floating motion amplitude (0-100)")

	flag.Parse()

	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.LoadFromFile(cfgPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}
	if format != "" {
		cfg.Output.Format = format
	}
	cfg.Output.Quality = quality
	cfg.Output.Lossless = lossless
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	var renderer *artifex.Renderer
	if seed != 0 {
		renderer = artifex.NewSeededWithConfig(seed, cfg)
	} else {
		renderer = artifex.NewWithConfig(cfg)
	}

	name := "placeholder"
	if in != "" {
		data, err := os.ReadFile(in)
		if err != nil {
			log.Fatal(err)
		}
		if err := renderer.SetSourceBytes(data); err != nil {
			log.Printf("decode failed, rendering error placeholder: %v", err)
		}
		name = in
	}

	out := renderer.Render(params, types.Bounds{Width: width, Height: height})

	if err := utils.EnsureDir(outDir); err != nil {
		log.Fatal(err)
	}
	outPath := utils.OutputPath(name, outDir, cfg.Output.Suffix, cfg.Output.Format)

	f, err := os.Create(outPath)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := renderer.Export(f); err != nil {
		log.Fatalf("export: %v", err)
	}

	b := out.Image.Bounds()
	log.Printf("wrote %s (%dx%d)", outPath, b.Dx(), b.Dy())
	if out.Motion.Enabled {
		log.Printf("motion: amplitude=%.1fpx period=%s", out.Motion.Amplitude, out.Motion.Period)
	}
}
