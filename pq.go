package gridpath

// openSet is a binary min-heap of node indices. It orders by f, then by the
// lower h, then by insertion sequence, so equal-cost frontiers pop in a fixed
// order. Each node records its heap position for heap.Fix.
type openSet struct {
	indices []int
	nodes   []node
}

func (queue *openSet) Len() int { return len(queue.indices) }

func (queue *openSet) Less(i, j int) bool {
	a, b := &queue.nodes[queue.indices[i]], &queue.nodes[queue.indices[j]]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return a.seq < b.seq
}

func (queue *openSet) Swap(i, j int) {
	queue.indices[i], queue.indices[j] = queue.indices[j], queue.indices[i]
	queue.nodes[queue.indices[i]].indexInQueue = i
	queue.nodes[queue.indices[j]].indexInQueue = j
}

func (queue *openSet) Push(x any) {
	index := x.(int)
	queue.nodes[index].indexInQueue = len(queue.indices)
	queue.indices = append(queue.indices, index)
}

func (queue *openSet) Pop() any {
	old := queue.indices
	n := len(old)
	index := old[n-1]
	queue.indices = old[:n-1]
	queue.nodes[index].indexInQueue = notQueued
	return index
}

func (queue *openSet) contains(index int) bool {
	return queue.nodes[index].indexInQueue != notQueued
}
