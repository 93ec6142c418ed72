// Package server exposes the raytracer over HTTP for quick previews:
// one request, one rendered frame back as PNG.
package server

import (
	"encoding/json"
	"fmt"
	"image/png"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/scratchgfx/raytracer/pkg/canvas"
	"github.com/scratchgfx/raytracer/pkg/postprocess"
	"github.com/scratchgfx/raytracer/pkg/scene"
	"github.com/scratchgfx/raytracer/pkg/tracer"
	"github.com/scratchgfx/raytracer/pkg/vec"
)

// Server handles web requests for the raytracer
type Server struct {
	port int
	log  zerolog.Logger
}

// NewServer creates a new web server
func NewServer(port int, logger zerolog.Logger) *Server {
	return &Server{port: port, log: logger}
}

// Handler returns the route table; exposed separately from Start for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/render", s.handleRender)
	return mux
}

// Start starts the web server and blocks.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.log.Info().Str("addr", addr).Msg("starting render server")
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleRender renders the reference scene at the requested size and returns
// the frame as PNG. Query parameters: width, height, scale (supersampling
// factor, 1 = off).
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	width, err := parseIntParam(r.URL.Query(), "width", 800, 1, 4000)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	height, err := parseIntParam(r.URL.Query(), "height", 600, 1, 4000)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	scale, err := parseIntParam(r.URL.Query(), "scale", 1, 1, 8)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sc := scene.NewDefaultScene()
	cv := canvas.New(width*scale, height*scale)
	cv.Clear(sc.Background)
	cv.SetViewport(canvas.Viewport{Width: 1, Height: 1, Distance: 1})

	rt := tracer.New(sc.Spheres, cv)
	rt.RenderFrame(cv, vec.NewVec3(0, 0, 0), 1, math.Inf(1), 0)

	img := postprocess.Downsample(cv.Image(), width, height)

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		s.log.Error().Err(err).Msg("encode render response")
	}
}

// parseIntParam parses an integer query parameter with a default and bounds.
func parseIntParam(values url.Values, name string, def, min, max int) (int, error) {
	raw := values.Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	if v < min || v > max {
		return 0, fmt.Errorf("%s must be between %d and %d, got %d", name, min, max, v)
	}
	return v, nil
}
