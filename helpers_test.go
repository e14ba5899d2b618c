package gridpath_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/gridpath"
)

var offsets = []gridpath.Coord{
	{X: -1, Y: 0}, {X: +1, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: +1},
	{X: +1, Y: -1}, {X: -1, Y: +1}, {X: +1, Y: +1}, {X: -1, Y: -1},
}

func mustParse(t *testing.T, rows ...string) *gridpath.Cells {
	t.Helper()
	grid, err := gridpath.ParseCells(rows)
	require.NoError(t, err)
	return grid
}

func randomGrid(t *testing.T, r *rand.Rand, width, height int, blockedRatio float64) *gridpath.Cells {
	t.Helper()
	grid, err := gridpath.NewCells(width, height)
	require.NoError(t, err)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if r.Float64() < blockedRatio {
				require.NoError(t, grid.SetWalkable(gridpath.Coord{X: x, Y: y}, false))
			}
		}
	}
	return grid
}

func stepAllowed(grid gridpath.Grid, from, offset gridpath.Coord, mode gridpath.DiagonalMovement) bool {
	to := gridpath.Coord{X: from.X + offset.X, Y: from.Y + offset.Y}
	if !grid.Walkable(to) {
		return false
	}
	if offset.X == 0 || offset.Y == 0 || mode == gridpath.DiagonalAlways {
		return true
	}
	return grid.Walkable(gridpath.Coord{X: from.X + offset.X, Y: from.Y}) &&
		grid.Walkable(gridpath.Coord{X: from.X, Y: from.Y + offset.Y})
}

// bruteForceCost relaxes every edge until nothing changes.
func bruteForceCost(grid gridpath.Grid, start, goal gridpath.Coord, mode gridpath.DiagonalMovement) (int, bool) {
	if !grid.Walkable(start) || !grid.Walkable(goal) {
		return 0, false
	}
	dist := map[gridpath.Coord]int{start: 0}
	for changed := true; changed; {
		changed = false
		for y := 0; y < grid.Height(); y++ {
			for x := 0; x < grid.Width(); x++ {
				from := gridpath.Coord{X: x, Y: y}
				d, ok := dist[from]
				if !ok {
					continue
				}
				for _, offset := range offsets {
					if !stepAllowed(grid, from, offset, mode) {
						continue
					}
					to := gridpath.Coord{X: x + offset.X, Y: y + offset.Y}
					next := d + gridpath.Distance(from, to)
					if current, seen := dist[to]; !seen || next < current {
						dist[to] = next
						changed = true
					}
				}
			}
		}
	}
	cost, ok := dist[goal]
	return cost, ok
}

func requireValidPath(t *testing.T, grid gridpath.Grid, path []gridpath.Coord, start, goal gridpath.Coord, mode gridpath.DiagonalMovement) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, start, path[0])
	require.Equal(t, goal, path[len(path)-1])
	for i, c := range path {
		require.Truef(t, grid.Walkable(c), "cell %d %v not walkable", i, c)
		if i == 0 {
			continue
		}
		offset := gridpath.Coord{X: c.X - path[i-1].X, Y: c.Y - path[i-1].Y}
		require.Containsf(t, offsets, offset, "step %v -> %v is not adjacent", path[i-1], c)
		require.Truef(t, stepAllowed(grid, path[i-1], offset, mode), "step %v -> %v not allowed", path[i-1], c)
	}
}
