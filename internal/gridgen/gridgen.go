// Package gridgen builds random obstacle grids with clustered walls.
package gridgen

import (
	"fmt"
	"math/rand"

	"github.com/pdrpinto/gridpath"
)

// Options controls generation. Walls are laid by Clusters random walks of
// Steps moves each, dropping a wall with probability Density per move.
type Options struct {
	Width    int
	Height   int
	Clusters int
	Steps    int
	Density  float64
	Seed     int64
}

// DefaultOptions matches the visualiser's defaults.
func DefaultOptions() Options {
	return Options{Width: 40, Height: 24, Clusters: 8, Steps: 200, Density: 0.25}
}

// Layout is a generated grid with distinct, walkable endpoints.
type Layout struct {
	Grid  *gridpath.Cells
	Start gridpath.Coord
	Goal  gridpath.Coord
}

var walkDirections = [4]gridpath.Coord{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}}

// Generate is deterministic for a given Options value.
func Generate(opts Options) (Layout, error) {
	if opts.Width*opts.Height < 2 {
		return Layout{}, fmt.Errorf("grid %dx%d too small for two endpoints: %w",
			opts.Width, opts.Height, gridpath.ErrInvalidInput)
	}
	if opts.Clusters < 0 || opts.Steps < 0 || opts.Density < 0 || opts.Density > 1 {
		return Layout{}, fmt.Errorf("clusters=%d steps=%d density=%v: %w",
			opts.Clusters, opts.Steps, opts.Density, gridpath.ErrInvalidInput)
	}
	grid, err := gridpath.NewCells(opts.Width, opts.Height)
	if err != nil {
		return Layout{}, err
	}

	r := rand.New(rand.NewSource(opts.Seed))
	randomCell := func() gridpath.Coord {
		return gridpath.Coord{X: r.Intn(opts.Width), Y: r.Intn(opts.Height)}
	}
	start, goal := randomCell(), randomCell()
	for start == goal {
		goal = randomCell()
	}

	for c := 0; c < opts.Clusters; c++ {
		p := randomCell()
		for s := 0; s < opts.Steps; s++ {
			if r.Float64() < opts.Density && p != start && p != goal {
				if err := grid.Block(p); err != nil {
					return Layout{}, err
				}
			}
			d := walkDirections[r.Intn(len(walkDirections))]
			next := gridpath.Coord{X: p.X + d.X, Y: p.Y + d.Y}
			if grid.InBounds(next) {
				p = next
			}
		}
	}
	return Layout{Grid: grid, Start: start, Goal: goal}, nil
}
