package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/scratchgfx/raytracer/pkg/canvas"
	"github.com/scratchgfx/raytracer/pkg/config"
	"github.com/scratchgfx/raytracer/pkg/display"
	"github.com/scratchgfx/raytracer/pkg/postprocess"
	"github.com/scratchgfx/raytracer/pkg/scene"
	"github.com/scratchgfx/raytracer/pkg/tracer"
	"github.com/scratchgfx/raytracer/pkg/vec"
)

func main() {
	var (
		configPath = flag.String("config", "config.yaml", "path to config.yaml")
		width      = flag.Int("width", 0, "canvas width in pixels (overrides config)")
		height     = flag.Int("height", 0, "canvas height in pixels (overrides config)")
		workers    = flag.Int("workers", -1, "render workers, 0 = one per CPU (overrides config)")
		scale      = flag.Int("scale", 0, "supersampling factor, 1 = off (overrides config)")
		outDir     = flag.String("out", "", "output directory (overrides config)")
		format     = flag.String("format", "", "output format: png or webp (overrides config)")
		window     = flag.Bool("window", false, "show the rendered frame in a window")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	cfg := loadConfig(*configPath)
	applyFlagOverrides(cfg, *width, *height, *workers, *scale, *outDir, *format)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	log.Info().
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Int("supersample", cfg.Supersample).
		Msg("rendering reference scene")

	start := time.Now()
	img := renderImage(cfg)
	log.Info().Dur("elapsed", time.Since(start)).Msg("render completed")

	path, err := writeImage(cfg.Output.Dir, cfg.Output.Format, img)
	if err != nil {
		log.Fatal().Err(err).Msg("saving render failed")
	}
	log.Info().Str("path", path).Msg("render saved")

	if *window {
		if err := display.Show(img, "Raytracer"); err != nil {
			log.Fatal().Err(err).Msg("display failed")
		}
	}
}

// loadConfig reads the config file, falling back to defaults when it does
// not exist.
func loadConfig(path string) *config.Config {
	cfg, err := config.Load(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", path).Msg("config load failed; using defaults")
		}
		return config.Default()
	}
	return cfg
}

// applyFlagOverrides copies explicitly set flag values over the config.
// Zero values (or -1 for workers, whose meaningful zero is "one per CPU")
// mean "keep the config value".
func applyFlagOverrides(cfg *config.Config, width, height, workers, scale int, outDir, format string) {
	if width > 0 {
		cfg.Width = width
	}
	if height > 0 {
		cfg.Height = height
	}
	if workers >= 0 {
		cfg.Workers = workers
	}
	if scale > 0 {
		cfg.Supersample = scale
	}
	if outDir != "" {
		cfg.Output.Dir = outDir
	}
	if format != "" {
		cfg.Output.Format = format
	}
}

// renderImage traces the reference scene at the configured (possibly
// supersampled) resolution and downsamples to the target size.
func renderImage(cfg *config.Config) *image.RGBA {
	sc := scene.NewDefaultScene()

	cv := canvas.New(cfg.Width*cfg.Supersample, cfg.Height*cfg.Supersample)
	cv.Clear(color.RGBA{R: cfg.Background.R, G: cfg.Background.G, B: cfg.Background.B, A: 255})
	cv.SetViewport(canvas.Viewport{
		Width:    cfg.Viewport.Width,
		Height:   cfg.Viewport.Height,
		Distance: cfg.Viewport.Distance,
	})

	rt := tracer.New(sc.Spheres, cv)
	rt.RenderFrame(cv, vec.NewVec3(0, 0, 0), 1, math.Inf(1), cfg.Workers)

	return postprocess.Downsample(cv.Image(), cfg.Width, cfg.Height)
}

// writeImage saves the frame into dir with a timestamped filename and
// returns the path.
func writeImage(dir, format string, img image.Image) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("render_%s.%s", timestamp, format))

	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	switch format {
	case "png":
		err = png.Encode(file, img)
	case "webp":
		err = nativewebp.Encode(file, img, nil)
	default:
		err = fmt.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return "", fmt.Errorf("encoding %s: %w", format, err)
	}
	return path, nil
}
