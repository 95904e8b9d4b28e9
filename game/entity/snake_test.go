package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gosnake/game/types"
)

var testGrid = types.Grid{Width: 32, Height: 24}

func TestSnake_RejectsReversal(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, types.Right)

	s.SetPendingDirection(types.Left)
	s.CommitDirection()
	s.Advance(testGrid)

	// The reversal was dropped, so the snake kept moving right.
	assert.Equal(t, types.Right, s.Dir)
	assert.Equal(t, types.Point{X: 6, Y: 5}, s.Head())
}

func TestSnake_LastPendingWins(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, types.Right)

	s.SetPendingDirection(types.Up)
	s.SetPendingDirection(types.Down)
	s.CommitDirection()

	assert.Equal(t, types.Down, s.Dir)
}

func TestSnake_CommitClearsPending(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, types.Right)

	s.SetPendingDirection(types.Up)
	s.CommitDirection()
	require.Equal(t, types.Up, s.Dir)

	// A second commit with nothing pending keeps the direction.
	s.CommitDirection()
	assert.Equal(t, types.Up, s.Dir)
}

func TestSnake_AdvanceWrapsEdges(t *testing.T) {
	testCases := []struct {
		name     string
		start    types.Point
		dir      types.Direction
		expected types.Point
	}{
		{"right edge", types.Point{X: 31, Y: 12}, types.Right, types.Point{X: 0, Y: 12}},
		{"left edge", types.Point{X: 0, Y: 12}, types.Left, types.Point{X: 31, Y: 12}},
		{"bottom edge", types.Point{X: 16, Y: 23}, types.Down, types.Point{X: 16, Y: 0}},
		{"top edge", types.Point{X: 16, Y: 0}, types.Up, types.Point{X: 16, Y: 23}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSnake(tc.start, tc.dir)
			s.Advance(testGrid)
			assert.Equal(t, tc.expected, s.Head())
		})
	}
}

func TestSnake_AdvanceDropsTail(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, types.Right)

	tail, dropped := s.Advance(testGrid)

	assert.True(t, dropped)
	assert.Equal(t, types.Point{X: 5, Y: 5}, tail)
	assert.Equal(t, 1, s.Len())
}

func TestSnake_GrowthConsumedByNextAdvance(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, types.Right)

	s.MarkGrow()
	_, dropped := s.Advance(testGrid)
	assert.False(t, dropped)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []types.Point{{X: 6, Y: 5}, {X: 5, Y: 5}}, s.Body)

	// The flag was consumed: the next advance drops the tail again.
	tail, dropped := s.Advance(testGrid)
	assert.True(t, dropped)
	assert.Equal(t, types.Point{X: 5, Y: 5}, tail)
	assert.Equal(t, 2, s.Len())
}

func TestSnake_HitsSelf(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, types.Right)
	s.Body = []types.Point{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}, {X: 5, Y: 5}}
	assert.True(t, s.HitsSelf())

	s.Body = []types.Point{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}}
	assert.False(t, s.HitsSelf())

	s.Body = []types.Point{{X: 5, Y: 5}}
	assert.False(t, s.HitsSelf())
}

func TestSnake_Reset(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, types.Down)
	s.MarkGrow()
	s.Advance(testGrid)
	s.SetPendingDirection(types.Left)
	s.MarkGrow()

	s.Reset(testGrid)

	require.Equal(t, 1, s.Len())
	assert.Equal(t, testGrid.Center(), s.Head())
	assert.Equal(t, types.Right, s.Dir)

	// Neither the pending direction nor the growth flag survive a reset.
	s.CommitDirection()
	assert.Equal(t, types.Right, s.Dir)
	s.Advance(testGrid)
	assert.Equal(t, 1, s.Len())
}
