package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dragonsnake/game/types"
)

func TestNewSnakeLayout(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 3}, types.DirRight, 4)

	assert.Equal(t, types.Point{X: 5, Y: 3}, s.Head)
	assert.Equal(t, types.DirRight, s.Facing)
	assert.Equal(t, types.DirRight, s.Pending)
	require.Len(t, s.History, 3)
	// Body trails behind the head, newest first.
	assert.Equal(t, []types.Point{{X: 4, Y: 3}, {X: 3, Y: 3}, {X: 2, Y: 3}}, s.History)
	assert.Equal(t, 4, s.Len())
}

func TestMoveToPushesVacatedCell(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 3}, types.DirRight, 3)

	s.MoveTo(types.Point{X: 6, Y: 3})

	assert.Equal(t, types.Point{X: 6, Y: 3}, s.Head)
	assert.Equal(t, types.Point{X: 5, Y: 3}, s.History[0], "vacated cell goes to the front")
	assert.Equal(t, 4, s.Len(), "MoveTo alone grows; TrimTail restores the length")

	s.TrimTail()
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []types.Point{{X: 5, Y: 3}, {X: 4, Y: 3}}, s.History)
}

func TestTrimTailOnEmptyHistory(t *testing.T) {
	s := NewSnake(types.Point{X: 1, Y: 1}, types.DirRight, 1)
	s.TrimTail()
	assert.Equal(t, 1, s.Len())
}

func TestSteerRejectsReversal(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 3}, types.DirUp, 3)

	s.Steer(types.DirDown)
	assert.Equal(t, types.DirUp, s.Pending, "reversal must not be buffered")

	s.Steer(types.DirLeft)
	assert.Equal(t, types.DirLeft, s.Pending, "perpendicular turn is accepted")

	s.Steer(types.DirNone)
	assert.Equal(t, types.DirLeft, s.Pending)
}

func TestSteerLastWriterWins(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 3}, types.DirRight, 3)

	s.Steer(types.DirUp)
	s.Steer(types.DirDown)
	assert.Equal(t, types.DirDown, s.Pending)
}

func TestApplyPending(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 3}, types.DirRight, 3)
	s.Steer(types.DirUp)

	assert.Equal(t, types.DirRight, s.Facing, "facing only changes at the tick")
	s.ApplyPending()
	assert.Equal(t, types.DirUp, s.Facing)
}

func TestOccupies(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 3}, types.DirRight, 3)

	assert.True(t, s.Occupies(types.Point{X: 5, Y: 3}), "head")
	assert.True(t, s.Occupies(types.Point{X: 4, Y: 3}), "segment")
	assert.False(t, s.Occupies(types.Point{X: 6, Y: 3}))

	assert.False(t, s.HitsBody(types.Point{X: 5, Y: 3}), "head is not body")
	assert.True(t, s.HitsBody(types.Point{X: 3, Y: 3}))
}
