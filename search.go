package gridpath

import (
	"container/heap"
	"math"
	"slices"

	"github.com/bits-and-blooms/bitset"

	"github.com/pdrpinto/gridpath/internal"
)

const (
	// unreached is the g cost of a node no path has touched yet.
	unreached = math.MaxInt32
	noParent  = -1
	notQueued = -1
)

// neighbourOffsets is the fixed expansion order: orthogonal first, then diagonal.
var neighbourOffsets = [8]Coord{
	{-1, 0}, {+1, 0}, {0, -1}, {0, +1},
	{+1, -1}, {-1, +1}, {+1, +1}, {-1, -1},
}

type node struct {
	coord        Coord
	index        int
	g, h, f      int
	cameFrom     int
	walkable     bool
	indexInQueue int
	seq          int
}

func (n *node) updateF() {
	n.f = saturatingAdd(n.g, n.h)
}

// search is the working set of one A* run. It is never shared between runs.
type search struct {
	width, height int
	goalIndex     int
	diagonal      DiagonalMovement

	nodes    []node
	open     openSet
	closed   *bitset.BitSet
	excluded *bitset.BitSet

	pushes   int
	expanded int
	current  int
	done     bool
	found    bool
	released bool
}

func newSearch(grid Grid, start, goal Coord, diagonal DiagonalMovement) *search {
	width, height := grid.Width(), grid.Height()
	cellCount := width * height
	s := &search{
		width:     width,
		height:    height,
		goalIndex: goal.X + goal.Y*width,
		diagonal:  diagonal,
		nodes:     make([]node, cellCount),
		closed:    bitset.New(uint(cellCount)),
		excluded:  bitset.New(uint(cellCount)),
		current:   noParent,
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := Coord{X: x, Y: y}
			n := &s.nodes[x+y*width]
			*n = node{
				coord:        c,
				index:        x + y*width,
				g:            unreached,
				h:            Distance(c, goal),
				cameFrom:     noParent,
				walkable:     grid.Walkable(c),
				indexInQueue: notQueued,
			}
			n.updateF()
		}
	}
	s.open = openSet{nodes: s.nodes}

	startNode := &s.nodes[start.X+start.Y*width]
	startNode.g = 0
	startNode.updateF()
	if !startNode.walkable || !s.nodes[s.goalIndex].walkable {
		s.done = true
		return s
	}
	s.push(startNode.index)
	return s
}

func (s *search) push(index int) {
	s.nodes[index].seq = s.pushes
	s.pushes++
	heap.Push(&s.open, index)
}

// step performs one expansion. It is a no-op once the search is done.
func (s *search) step() {
	if s.done {
		return
	}
	if s.open.Len() == 0 {
		s.done = true
		return
	}

	currentIndex := heap.Pop(&s.open).(int)
	s.current = currentIndex
	s.expanded++
	if currentIndex == s.goalIndex {
		s.done = true
		s.found = true
		return
	}
	s.closed.Set(uint(currentIndex))

	current := s.nodes[currentIndex]
	for _, offset := range neighbourOffsets {
		neighbourPos := Coord{X: current.coord.X + offset.X, Y: current.coord.Y + offset.Y}
		if neighbourPos.X < 0 || neighbourPos.Y < 0 || neighbourPos.X >= s.width || neighbourPos.Y >= s.height {
			continue
		}
		neighbourIndex := neighbourPos.X + neighbourPos.Y*s.width
		if s.closed.Test(uint(neighbourIndex)) || s.excluded.Test(uint(neighbourIndex)) {
			continue
		}
		neighbour := &s.nodes[neighbourIndex]
		if !neighbour.walkable {
			s.excluded.Set(uint(neighbourIndex))
			continue
		}
		if !s.canStep(current.coord, offset) {
			continue
		}

		tentativeG := current.g + Distance(current.coord, neighbourPos)
		if tentativeG >= neighbour.g {
			continue
		}
		neighbour.g = tentativeG
		neighbour.cameFrom = currentIndex
		neighbour.h = Distance(neighbourPos, s.nodes[s.goalIndex].coord)
		neighbour.updateF()
		if s.open.contains(neighbourIndex) {
			heap.Fix(&s.open, neighbour.indexInQueue)
		} else {
			s.push(neighbourIndex)
		}
	}
}

// canStep applies the diagonal movement rule. Orthogonal steps always pass.
func (s *search) canStep(from, offset Coord) bool {
	if offset.X == 0 || offset.Y == 0 || s.diagonal == DiagonalAlways {
		return true
	}
	horizontal := s.nodes[(from.X+offset.X)+from.Y*s.width].walkable
	vertical := s.nodes[from.X+(from.Y+offset.Y)*s.width].walkable
	return horizontal && vertical
}

func (s *search) path() []Coord {
	if !s.found {
		return nil
	}
	indices := internal.ReconstructPath(func(index int) int {
		return s.nodes[index].cameFrom
	}, s.goalIndex)
	path := make([]Coord, len(indices))
	for i, index := range indices {
		path[i] = s.nodes[index].coord
	}
	return path
}

func (s *search) result() Result {
	if !s.found {
		return Result{ExpandedNodes: s.expanded}
	}
	return Result{
		Path:          s.path(),
		TotalCost:     s.nodes[s.goalIndex].g,
		ExpandedNodes: s.expanded,
		Found:         true,
	}
}

func (s *search) openCoords() []Coord {
	indices := append([]int(nil), s.open.indices...)
	slices.Sort(indices)
	return s.coords(indices)
}

func (s *search) closedCoords() []Coord {
	indices := make([]int, 0, int(s.closed.Count()))
	for i, ok := s.closed.NextSet(0); ok; i, ok = s.closed.NextSet(i + 1) {
		indices = append(indices, int(i))
	}
	return s.coords(indices)
}

func (s *search) coords(indices []int) []Coord {
	out := make([]Coord, len(indices))
	for i, index := range indices {
		out[i] = s.nodes[index].coord
	}
	return out
}

// release drops the working set. Safe to call more than once.
func (s *search) release() {
	s.nodes = nil
	s.open = openSet{}
	s.closed = nil
	s.excluded = nil
	s.released = true
}

func saturatingAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}
