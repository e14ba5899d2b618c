// Package server exposes the stepping visualiser and a solve endpoint over HTTP.
package server

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pdrpinto/gridpath"
	"github.com/pdrpinto/gridpath/internal/gridgen"
	"github.com/pdrpinto/gridpath/internal/scenario"
)

// maxSolveBody caps the JSON scenario accepted by /solve.
const maxSolveBody = 1 << 20

//go:embed static/index.html
var indexHTML []byte

// Config wires the handler's collaborators. Zero values get defaults.
type Config struct {
	Options  []gridpath.Option
	Logger   *slog.Logger
	Gatherer prometheus.Gatherer
	Seed     func() int64
}

type session struct {
	layout  gridgen.Layout
	walls   [][2]int
	stepper *gridpath.Stepper
}

// Server holds the single visualiser session.
type Server struct {
	options  []gridpath.Option
	logger   *slog.Logger
	gatherer prometheus.Gatherer
	seed     func() int64
	finder   *gridpath.Pathfinder
	mu       sync.Mutex
	session  *session
}

// NewHandler creates a Server and returns its HTTP handler.
func NewHandler(cfg Config) http.Handler {
	return New(cfg).Handler()
}

// Handler routes the visualiser, solve and metrics endpoints.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/", s.handleIndex)
	r.Post("/init", s.handleInit)
	r.Get("/next", s.handleNext)
	r.Post("/solve", s.handleSolve)
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// New builds a Server without routing.
func New(cfg Config) *Server {
	s := &Server{
		options:  cfg.Options,
		logger:   cfg.Logger,
		gatherer: cfg.Gatherer,
		seed:     cfg.Seed,
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.seed == nil {
		s.seed = func() int64 { return time.Now().UnixNano() }
	}
	s.finder = gridpath.New(s.options...)
	return s
}

// Close releases the active session, if any.
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session != nil {
		s.session.stepper.Close()
		s.session = nil
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}

type initResponse struct {
	OK    bool   `json:"ok"`
	W     int    `json:"w"`
	H     int    `json:"h"`
	Start [2]int `json:"start"`
	Goal  [2]int `json:"goal"`
}

func (s *Server) handleInit(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := gridgen.DefaultOptions()
	if v, err := strconv.Atoi(q.Get("w")); err == nil && v > 4 {
		opts.Width = v
	}
	if v, err := strconv.Atoi(q.Get("h")); err == nil && v > 4 {
		opts.Height = v
	}
	if v, err := strconv.Atoi(q.Get("clusters")); err == nil && v > 0 {
		opts.Clusters = v
	}
	if v, err := strconv.Atoi(q.Get("steps")); err == nil && v > 0 {
		opts.Steps = v
	}
	if v, err := strconv.ParseFloat(q.Get("density"), 64); err == nil && v >= 0 && v <= 1 {
		opts.Density = v
	}
	if err := scenario.CheckSize(opts.Width, opts.Height); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	opts.Seed = s.seed()
	if v, err := strconv.ParseInt(q.Get("seed"), 10, 64); err == nil {
		opts.Seed = v
	}

	layout, err := gridgen.Generate(opts)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	stepper, err := s.finder.NewStepper(layout.Grid, layout.Start, layout.Goal)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.mu.Lock()
	// stop previous stepper if any
	if s.session != nil {
		s.session.stepper.Close()
	}
	s.session = &session{layout: layout, walls: toPairs(layout.Grid.Blocked()), stepper: stepper}
	s.mu.Unlock()

	s.logger.Info("visualiser session started",
		"width", opts.Width, "height", opts.Height, "seed", opts.Seed,
		"start", layout.Start.String(), "goal", layout.Goal.String())
	writeJSON(w, http.StatusOK, initResponse{
		OK:    true,
		W:     opts.Width,
		H:     opts.Height,
		Start: pair(layout.Start),
		Goal:  pair(layout.Goal),
	})
}

type snapshot struct {
	Step    int      `json:"step"`
	W       int      `json:"w"`
	H       int      `json:"h"`
	Walls   [][2]int `json:"walls"`
	Open    [][2]int `json:"open,omitempty"`
	Closed  [][2]int `json:"closed,omitempty"`
	Current [2]int   `json:"current"`
	Start   [2]int   `json:"start"`
	Goal    [2]int   `json:"goal"`
	Done    bool     `json:"done"`
	Found   bool     `json:"found"`
	Cost    int      `json:"cost,omitempty"`
	Path    [][2]int `json:"path,omitempty"`
}

func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		http.Error(w, "engine not initialized", http.StatusBadRequest)
		return
	}
	st, err := s.session.stepper.Step(r.Context())
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, gridpath.ErrCancelled) {
			status = http.StatusServiceUnavailable
		}
		http.Error(w, err.Error(), status)
		return
	}
	layout := s.session.layout
	writeJSON(w, http.StatusOK, snapshot{
		Step:    st.StepIndex,
		W:       layout.Grid.Width(),
		H:       layout.Grid.Height(),
		Walls:   s.session.walls,
		Open:    toPairs(st.Open),
		Closed:  toPairs(st.Closed),
		Current: pair(st.Current),
		Start:   pair(layout.Start),
		Goal:    pair(layout.Goal),
		Done:    st.Done,
		Found:   st.Found,
		Cost:    st.TotalCost,
		Path:    toPairs(st.Path),
	})
}

type solveResponse struct {
	Found    bool     `json:"found"`
	Cost     int      `json:"cost"`
	Expanded int      `json:"expanded"`
	Path     [][2]int `json:"path"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var sc scenario.Scenario
	r.Body = http.MaxBytesReader(w, r.Body, maxSolveBody)
	if err := json.NewDecoder(r.Body).Decode(&sc); err != nil {
		http.Error(w, "invalid scenario: "+err.Error(), http.StatusBadRequest)
		return
	}
	built, err := sc.Build()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	finder := s.finder
	if sc.Diagonal != "" {
		finder = gridpath.New(append(append([]gridpath.Option(nil), s.options...), gridpath.WithDiagonalMovement(built.Diagonal))...)
	}
	result, err := finder.FindPath(r.Context(), built.Grid, built.Start, built.Goal)
	switch {
	case errors.Is(err, gridpath.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	path := toPairs(result.Path)
	if path == nil {
		path = [][2]int{}
	}
	writeJSON(w, http.StatusOK, solveResponse{
		Found:    result.Found,
		Cost:     result.TotalCost,
		Expanded: result.ExpandedNodes,
		Path:     path,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func pair(c gridpath.Coord) [2]int { return [2]int{c.X, c.Y} }

func toPairs(cells []gridpath.Coord) [][2]int {
	if len(cells) == 0 {
		return nil
	}
	res := make([][2]int, len(cells))
	for i, c := range cells {
		res[i] = pair(c)
	}
	return res
}
