package gridpath_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/gridpath"
)

func TestStepper_FirstStep(t *testing.T) {
	grid := mustParse(t, "...", "...", "...")
	stepper, err := gridpath.New().NewStepper(grid, gridpath.Coord{X: 0, Y: 0}, gridpath.Coord{X: 2, Y: 2})
	require.NoError(t, err)
	defer stepper.Close()

	snapshot, err := stepper.Step(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, snapshot.StepIndex)
	assert.Equal(t, gridpath.Coord{X: 0, Y: 0}, snapshot.Current)
	assert.Equal(t, []gridpath.Coord{{X: 0, Y: 0}}, snapshot.Closed)
	assert.Equal(t, []gridpath.Coord{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}, snapshot.Open)
	assert.False(t, snapshot.Done)
}

func TestStepper_MatchesFindPath(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	finder := gridpath.New()
	for i := 0; i < 20; i++ {
		grid := randomGrid(t, r, 12, 9, 0.3)
		start := gridpath.Coord{X: r.Intn(12), Y: r.Intn(9)}
		goal := gridpath.Coord{X: r.Intn(12), Y: r.Intn(9)}

		want, err := finder.FindPath(context.Background(), grid, start, goal)
		require.NoError(t, err)

		stepper, err := finder.NewStepper(grid, start, goal)
		require.NoError(t, err)
		got, err := stepper.Run(context.Background())
		stepper.Close()
		require.NoError(t, err)

		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("grid %d %v->%v mismatch (-FindPath +Stepper):\n%s", i, start, goal, diff)
		}
	}
}

func TestStepper_DoneIsSticky(t *testing.T) {
	grid := mustParse(t, "..", "..")
	stepper, err := gridpath.New().NewStepper(grid, gridpath.Coord{X: 0, Y: 0}, gridpath.Coord{X: 1, Y: 1})
	require.NoError(t, err)
	defer stepper.Close()

	var final gridpath.StepSnapshot
	for !final.Done {
		final, err = stepper.Step(context.Background())
		require.NoError(t, err)
	}
	require.True(t, final.Found)
	assert.Equal(t, []gridpath.Coord{{X: 0, Y: 0}, {X: 1, Y: 1}}, final.Path)
	assert.Equal(t, 14, final.TotalCost)

	again, err := stepper.Step(context.Background())
	require.NoError(t, err)
	assert.Equal(t, final, again)
}

func TestStepper_UnreachableGoal(t *testing.T) {
	grid := mustParse(t, ".#.", ".#.", ".#.")
	stepper, err := gridpath.New().NewStepper(grid, gridpath.Coord{X: 0, Y: 0}, gridpath.Coord{X: 2, Y: 2})
	require.NoError(t, err)
	defer stepper.Close()

	result, err := stepper.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, result.Found)
	assert.Equal(t, 3, result.ExpandedNodes)
}

func TestStepper_Close(t *testing.T) {
	grid := mustParse(t, "...")
	stepper, err := gridpath.New().NewStepper(grid, gridpath.Coord{X: 0, Y: 0}, gridpath.Coord{X: 2, Y: 0})
	require.NoError(t, err)
	stepper.Close()
	stepper.Close()

	_, err = stepper.Step(context.Background())
	require.ErrorIs(t, err, gridpath.ErrClosed)
}

func TestStepper_Errors(t *testing.T) {
	grid := mustParse(t, "...")
	_, err := gridpath.New().NewStepper(grid, gridpath.Coord{X: 0, Y: 0}, gridpath.Coord{X: 0, Y: 1})
	require.ErrorIs(t, err, gridpath.ErrInvalidInput)

	stepper, err := gridpath.New().NewStepper(grid, gridpath.Coord{X: 0, Y: 0}, gridpath.Coord{X: 2, Y: 0})
	require.NoError(t, err)
	defer stepper.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = stepper.Step(ctx)
	require.ErrorIs(t, err, gridpath.ErrCancelled)
}
