// Package gridpath finds shortest 8-directional paths on fixed-size grids
// with A* and integer octile costs.
//
// It exposes three entry points on an explicitly constructed Pathfinder:
//
//   - FindPath: run the search to completion and get a Result.
//   - NewStepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//   - FindPaths: solve many independent start/goal pairs on one grid with a worker pool.
//
// Every call owns its working set (node table, open heap, closed and excluded
// bitsets), so calls sharing a read-only Grid can run concurrently.
package gridpath
