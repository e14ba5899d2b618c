package gridpath

import (
	"context"
	"fmt"
)

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot struct {
	Current   Coord
	Open      []Coord
	Closed    []Coord
	Done      bool
	Found     bool
	Path      []Coord
	TotalCost int
	StepIndex int
}

// Stepper runs the same search as FindPath one expansion at a time.
// A Stepper is not safe for concurrent use.
type Stepper struct {
	search    *search
	stepCount int
}

// NewStepper validates the input and prepares a search without expanding anything.
func (p *Pathfinder) NewStepper(grid Grid, start, goal Coord) (*Stepper, error) {
	if err := validate(grid, start, goal); err != nil {
		return nil, err
	}
	return &Stepper{search: newSearch(grid, start, goal, p.options.Diagonal)}, nil
}

// Close releases the working set.
func (s *Stepper) Close() {
	s.search.release()
}

// Step advances the search by one node expansion and returns a snapshot.
// Once the search is done, Step keeps returning the final snapshot.
func (s *Stepper) Step(ctx context.Context) (StepSnapshot, error) {
	if s.search.released {
		return StepSnapshot{}, ErrClosed
	}
	if !s.search.done {
		if err := ctx.Err(); err != nil {
			return StepSnapshot{StepIndex: s.stepCount}, fmt.Errorf("%w: %w", ErrCancelled, err)
		}
		s.stepCount++
		s.search.step()
	}
	return s.snapshot(), nil
}

// Run steps until the search is done and returns its Result.
func (s *Stepper) Run(ctx context.Context) (Result, error) {
	for {
		snapshot, err := s.Step(ctx)
		if err != nil {
			return Result{}, err
		}
		if snapshot.Done {
			return s.search.result(), nil
		}
	}
}

func (s *Stepper) snapshot() StepSnapshot {
	snapshot := StepSnapshot{
		Open:      s.search.openCoords(),
		Closed:    s.search.closedCoords(),
		Done:      s.search.done,
		Found:     s.search.found,
		StepIndex: s.stepCount,
	}
	if s.search.current != noParent {
		snapshot.Current = s.search.nodes[s.search.current].coord
	}
	if s.search.found {
		snapshot.Path = s.search.path()
		snapshot.TotalCost = s.search.nodes[s.search.goalIndex].g
	}
	return snapshot
}
