package scenario

import (
	"strings"

	"github.com/pdrpinto/gridpath"
)

// Render draws grid with '.' for open cells, '#' for blocked ones, '*' along
// path and 'S'/'G' on the endpoints.
func Render(grid gridpath.Grid, path []gridpath.Coord, start, goal gridpath.Coord) string {
	onPath := make(map[gridpath.Coord]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	var b strings.Builder
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			c := gridpath.Coord{X: x, Y: y}
			switch {
			case c == start:
				b.WriteByte('S')
			case c == goal:
				b.WriteByte('G')
			case onPath[c]:
				b.WriteByte('*')
			case grid.Walkable(c):
				b.WriteByte('.')
			default:
				b.WriteByte('#')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
