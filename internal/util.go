package internal

// ReconstructPath follows predecessor links back from current until a
// negative index, then returns the indices in forward order.
func ReconstructPath(predecessor func(index int) int, current int) []int {
	path := []int{current}
	for {
		previous := predecessor(current)
		if previous < 0 {
			break
		}
		path = append(path, previous)
		current = previous
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
