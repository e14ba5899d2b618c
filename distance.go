package gridpath

const (
	// DiagonalWeight approximates 10*sqrt(2).
	DiagonalWeight = 14
	StraightWeight = 10
)

// Distance is the octile distance between a and b. It is the search
// heuristic and, for adjacent cells, the exact step cost.
func Distance(a, b Coord) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	return DiagonalWeight*min(dx, dy) + StraightWeight*abs(dx-dy)
}

// PathCost sums the step costs along path.
func PathCost(path []Coord) int {
	total := 0
	for i := 1; i < len(path); i++ {
		total += Distance(path[i-1], path[i])
	}
	return total
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
