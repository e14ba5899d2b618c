package gridpath

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Query is one start/goal pair for FindPaths.
type Query struct {
	Start Coord
	Goal  Coord
}

// FindPaths solves independent queries on the same grid in parallel, using
// at most NumberOfWorkers goroutines. Each query gets its own working set.
// Results follow query order. The first error cancels the remaining queries.
func (p *Pathfinder) FindPaths(ctx context.Context, grid Grid, queries []Query) ([]Result, error) {
	results := make([]Result, len(queries))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(p.options.NumberOfWorkers)
	for i, query := range queries {
		i, query := i, query
		group.Go(func() error {
			result, err := p.FindPath(groupCtx, grid, query.Start, query.Goal)
			if err != nil {
				return fmt.Errorf("query %d %v->%v: %w", i, query.Start, query.Goal, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
