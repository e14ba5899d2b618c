package gridpath

import (
	"context"
	"fmt"
	"runtime"
	"time"
)

// DiagonalMovement decides when a diagonal step is allowed.
type DiagonalMovement int

const (
	// DiagonalAlways allows a diagonal step whenever the target cell is walkable.
	DiagonalAlways DiagonalMovement = iota
	// DiagonalNoCornerCutting also requires both orthogonally adjacent cells
	// to be walkable.
	DiagonalNoCornerCutting
)

func (d DiagonalMovement) String() string {
	switch d {
	case DiagonalAlways:
		return "always"
	case DiagonalNoCornerCutting:
		return "no-corner-cutting"
	default:
		return fmt.Sprintf("DiagonalMovement(%d)", int(d))
	}
}

// ParseDiagonalMovement accepts the names produced by String. The empty
// string means DiagonalAlways.
func ParseDiagonalMovement(name string) (DiagonalMovement, error) {
	switch name {
	case "", "always":
		return DiagonalAlways, nil
	case "no-corner-cutting":
		return DiagonalNoCornerCutting, nil
	default:
		return DiagonalAlways, fmt.Errorf("diagonal movement %q: %w", name, ErrInvalidInput)
	}
}

// Result contains the outcome of a search
type Result struct {
	Path          []Coord
	TotalCost     int
	ExpandedNodes int
	Found         bool
}

// Options defines parameters for the search.
type Options struct {
	NumberOfWorkers int
	Diagonal        DiagonalMovement
	Observers       []Observer
	Now             func() time.Time
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWorkers specifies how many goroutines FindPaths runs searches on.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithDiagonalMovement selects the diagonal step rule.
func WithDiagonalMovement(mode DiagonalMovement) Option {
	return func(options *Options) { options.Diagonal = mode }
}

// WithObserver adds a collaborator that receives one report per search.
func WithObserver(observer Observer) Option {
	return func(options *Options) {
		if observer != nil {
			options.Observers = append(options.Observers, observer)
		}
	}
}

// WithClock replaces time.Now for search timing.
func WithClock(now func() time.Time) Option {
	return func(options *Options) { options.Now = now }
}

// Pathfinder runs A* searches. It keeps no per-search state, so one
// Pathfinder can serve concurrent callers.
type Pathfinder struct {
	options Options
}

// New builds a Pathfinder from options.
func New(options ...Option) *Pathfinder {
	searchOptions := Options{
		NumberOfWorkers: runtime.NumCPU(),
		Now:             time.Now,
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.Now == nil {
		searchOptions.Now = time.Now
	}
	if searchOptions.NumberOfWorkers < 1 {
		searchOptions.NumberOfWorkers = 1
	}
	return &Pathfinder{options: searchOptions}
}

// FindPath searches for a cheapest path from start to goal. The path runs
// start to goal inclusive. An unreachable goal is not an error: the Result
// has Found set to false.
func (p *Pathfinder) FindPath(ctx context.Context, grid Grid, start, goal Coord) (Result, error) {
	if err := validate(grid, start, goal); err != nil {
		return Result{}, err
	}

	began := p.options.Now()
	s := newSearch(grid, start, goal, p.options.Diagonal)
	defer s.release()

	result, err := p.run(ctx, s)
	p.report(SearchReport{
		Start:         start,
		Goal:          goal,
		Duration:      p.options.Now().Sub(began),
		ExpandedNodes: result.ExpandedNodes,
		Found:         result.Found,
		TotalCost:     result.TotalCost,
		Err:           err,
	})
	return result, err
}

func (p *Pathfinder) run(ctx context.Context, s *search) (Result, error) {
	for !s.done {
		if err := ctx.Err(); err != nil {
			return Result{ExpandedNodes: s.expanded}, fmt.Errorf("%w: %w", ErrCancelled, err)
		}
		s.step()
	}
	return s.result(), nil
}

func (p *Pathfinder) report(report SearchReport) {
	for _, observer := range p.options.Observers {
		observer.ObserveSearch(report)
	}
}

func validate(grid Grid, start, goal Coord) error {
	if grid == nil {
		return fmt.Errorf("nil grid: %w", ErrInvalidInput)
	}
	if !validSize(grid.Width(), grid.Height()) {
		return fmt.Errorf("grid size %dx%d: %w", grid.Width(), grid.Height(), ErrInvalidInput)
	}
	if !inBounds(grid, start) {
		return fmt.Errorf("start %v outside %dx%d grid: %w", start, grid.Width(), grid.Height(), ErrInvalidInput)
	}
	if !inBounds(grid, goal) {
		return fmt.Errorf("goal %v outside %dx%d grid: %w", goal, grid.Width(), grid.Height(), ErrInvalidInput)
	}
	return nil
}
