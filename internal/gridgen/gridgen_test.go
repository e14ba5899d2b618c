package gridgen

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/gridpath"
)

func TestGenerate_Deterministic(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 99

	first, err := Generate(opts)
	require.NoError(t, err)
	second, err := Generate(opts)
	require.NoError(t, err)

	assert.Equal(t, first.Grid.String(), second.Grid.String())
	assert.Equal(t, first.Start, second.Start)
	assert.Equal(t, first.Goal, second.Goal)
}

func TestGenerate_EndpointsStayClear(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		layout, err := Generate(Options{Width: 10, Height: 8, Clusters: 6, Steps: 100, Density: 1, Seed: seed})
		require.NoError(t, err)
		assert.NotEqual(t, layout.Start, layout.Goal)
		assert.True(t, layout.Grid.Walkable(layout.Start))
		assert.True(t, layout.Grid.Walkable(layout.Goal))
		assert.NotEmpty(t, layout.Grid.Blocked())
	}
}

func TestGenerate_NoWalls(t *testing.T) {
	layout, err := Generate(Options{Width: 5, Height: 5, Clusters: 3, Steps: 50, Density: 0, Seed: 1})
	require.NoError(t, err)
	assert.Empty(t, layout.Grid.Blocked())
}

func TestGenerate_Invalid(t *testing.T) {
	testCases := map[string]Options{
		"single cell":      {Width: 1, Height: 1},
		"negative width":   {Width: -2, Height: 4},
		"density too high": {Width: 4, Height: 4, Density: 1.5},
		"overflowing size": {Width: math.MaxInt/2 + 1, Height: 3, Clusters: 1, Steps: 1},
	}
	for name, opts := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := Generate(opts)
			require.ErrorIs(t, err, gridpath.ErrInvalidInput)
		})
	}
}
