package gridpath

import (
	"fmt"
	"math"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Coord addresses a grid cell.
type Coord struct {
	X, Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid is a rectangular field of walkable and blocked cells.
// A Grid must not change while a search over it is running.
type Grid interface {
	Width() int
	Height() int
	Walkable(c Coord) bool
}

// Cells is a fixed-size Grid where every cell starts walkable.
type Cells struct {
	width   int
	height  int
	blocked *bitset.BitSet
}

// NewCells creates an open grid of width x height cells.
func NewCells(width, height int) (*Cells, error) {
	if !validSize(width, height) {
		return nil, fmt.Errorf("grid size %dx%d: %w", width, height, ErrInvalidInput)
	}
	return &Cells{
		width:   width,
		height:  height,
		blocked: bitset.New(uint(width * height)),
	}, nil
}

// ParseCells builds a grid from text rows, '#' marking a blocked cell and
// any other rune a walkable one. Row i becomes y = i.
func ParseCells(rows []string) (*Cells, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty map: %w", ErrInvalidInput)
	}
	width := len([]rune(rows[0]))
	cells, err := NewCells(width, len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(runes), width, ErrInvalidInput)
		}
		for x, r := range runes {
			if r == '#' {
				cells.blocked.Set(uint(x + y*width))
			}
		}
	}
	return cells, nil
}

func (g *Cells) Width() int  { return g.width }
func (g *Cells) Height() int { return g.height }

// InBounds reports whether c lies inside the grid.
func (g *Cells) InBounds(c Coord) bool {
	return inBounds(g, c)
}

// Index returns the flat index x + y*width of c.
func (g *Cells) Index(c Coord) int {
	return c.X + c.Y*g.width
}

// Walkable reports false for blocked and out-of-bounds cells.
func (g *Cells) Walkable(c Coord) bool {
	if !g.InBounds(c) {
		return false
	}
	return !g.blocked.Test(uint(g.Index(c)))
}

// SetWalkable changes the walkability of one cell.
func (g *Cells) SetWalkable(c Coord, walkable bool) error {
	if !g.InBounds(c) {
		return fmt.Errorf("cell %v outside %dx%d grid: %w", c, g.width, g.height, ErrInvalidInput)
	}
	if walkable {
		g.blocked.Clear(uint(g.Index(c)))
	} else {
		g.blocked.Set(uint(g.Index(c)))
	}
	return nil
}

// Block marks every given cell unwalkable.
func (g *Cells) Block(cells ...Coord) error {
	for _, c := range cells {
		if err := g.SetWalkable(c, false); err != nil {
			return err
		}
	}
	return nil
}

// Blocked lists blocked cells in index order.
func (g *Cells) Blocked() []Coord {
	out := make([]Coord, 0, int(g.blocked.Count()))
	for i, ok := g.blocked.NextSet(0); ok; i, ok = g.blocked.NextSet(i + 1) {
		out = append(out, Coord{X: int(i) % g.width, Y: int(i) / g.width})
	}
	return out
}

// String renders the grid one row per line with '.' and '#'.
func (g *Cells) String() string {
	var b strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.Walkable(Coord{X: x, Y: y}) {
				b.WriteByte('.')
			} else {
				b.WriteByte('#')
			}
		}
		if y < g.height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// validSize reports whether width x height is positive and its cell count
// fits in an int.
func validSize(width, height int) bool {
	return width > 0 && height > 0 && width <= math.MaxInt/height
}

func inBounds(g Grid, c Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.Width() && c.Y < g.Height()
}
