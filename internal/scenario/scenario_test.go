package scenario

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/gridpath"
)

const mapScenario = `
map:
  - "...."
  - ".##."
  - "...."
start: [0, 0]
goal: [3, 2]
diagonal: no-corner-cutting
`

func TestParseAndBuild_Map(t *testing.T) {
	s, err := Parse([]byte(mapScenario))
	require.NoError(t, err)

	built, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, 4, built.Grid.Width())
	assert.Equal(t, 3, built.Grid.Height())
	assert.Equal(t, gridpath.Coord{X: 0, Y: 0}, built.Start)
	assert.Equal(t, gridpath.Coord{X: 3, Y: 2}, built.Goal)
	assert.Equal(t, gridpath.DiagonalNoCornerCutting, built.Diagonal)
	assert.Equal(t, []gridpath.Coord{{X: 1, Y: 1}, {X: 2, Y: 1}}, built.Grid.Blocked())
}

func TestParseAndBuild_SizeAndBlocked(t *testing.T) {
	s, err := Parse([]byte(`
width: 200
height: 200
blocked: [[1, 0], [1, 1]]
start: [0, 0]
goal: [199, 199]
`))
	require.NoError(t, err)

	built, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, 200, built.Grid.Width())
	assert.Equal(t, gridpath.DiagonalAlways, built.Diagonal)
	assert.False(t, built.Grid.Walkable(gridpath.Coord{X: 1, Y: 1}))
	assert.True(t, built.Grid.Walkable(gridpath.Coord{X: 2, Y: 1}))
}

func TestParse_Errors(t *testing.T) {
	testCases := map[string]string{
		"empty":         "",
		"unknown field": "start: [0, 0]\ngoal: [1, 1]\nwalls: 3\n",
		"bad yaml":      "map: [\n",
	}
	for name, input := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(input))
			require.Error(t, err)
		})
	}
}

func TestBuild_Errors(t *testing.T) {
	testCases := map[string]Scenario{
		"no size":          {},
		"size mismatch":    {Width: 3, Map: []string{"..", ".."}},
		"blocked outside":  {Width: 2, Height: 2, Blocked: [][2]int{{2, 0}}},
		"unknown diagonal": {Width: 2, Height: 2, Diagonal: "sometimes"},
		"ragged map":       {Map: []string{"...", "."}},
		"too many cells":   {Width: 100000, Height: 100000},
		"overflowing size": {Width: math.MaxInt/2 + 1, Height: 3},
		"map too wide":     {Map: []string{strings.Repeat(".", MaxCells+1)}},
	}
	for name, s := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := s.Build()
			require.ErrorIs(t, err, gridpath.ErrInvalidInput)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(mapScenario), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, [2]int{3, 2}, s.Goal)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarshal_FromCells(t *testing.T) {
	grid, err := gridpath.ParseCells([]string{"..#", "..."})
	require.NoError(t, err)

	data, err := Marshal(FromCells(grid, gridpath.Coord{X: 0, Y: 0}, gridpath.Coord{X: 2, Y: 1}, gridpath.DiagonalAlways))
	require.NoError(t, err)

	s, err := Parse(data)
	require.NoError(t, err)
	built, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, grid.String(), built.Grid.String())
	assert.Equal(t, gridpath.Coord{X: 2, Y: 1}, built.Goal)
}

func TestRender(t *testing.T) {
	grid, err := gridpath.ParseCells([]string{"....", ".##.", "...."})
	require.NoError(t, err)
	path := []gridpath.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 1}, {X: 3, Y: 2}}

	want := "S**.\n" +
		".##*\n" +
		"...G\n"
	assert.Equal(t, want, Render(grid, path, gridpath.Coord{X: 0, Y: 0}, gridpath.Coord{X: 3, Y: 2}))
}

func TestCheckSize(t *testing.T) {
	require.NoError(t, CheckSize(200, 200))
	require.NoError(t, CheckSize(MaxCells, 1))
	require.ErrorIs(t, CheckSize(MaxCells, 2), gridpath.ErrInvalidInput)
}
