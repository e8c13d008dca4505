package entity

import (
	"dragonsnake/game/types"
)

// Snake tracks the head cell separately from the trailing body. History holds
// the cells the head has vacated, newest first, so History[0] sits directly
// behind the head and the tail is the last entry. The body "follows" the head
// because moving pushes the vacated cell onto the front while the caller trims
// the tail on ticks where no food was eaten.
type Snake struct {
	Head    types.Point
	Facing  types.Direction
	Pending types.Direction
	History []types.Point
}

// NewSnake builds a snake of the given length with its head at start and the
// body laid out in a straight line behind it.
func NewSnake(start types.Point, facing types.Direction, length int) *Snake {
	s := &Snake{
		Head:    start,
		Facing:  facing,
		Pending: facing,
	}
	back := facing.Opposite().ToPoint()
	cell := start
	for i := 1; i < length; i++ {
		cell = cell.Add(back)
		s.History = append(s.History, cell)
	}
	return s
}

// Steer buffers a direction change for the next tick. A reversal onto the
// current facing is rejected here, before it ever reaches the tick, since it
// would drive the head straight into the first body segment.
func (s *Snake) Steer(dir types.Direction) {
	if dir == types.DirNone || dir == s.Facing.Opposite() {
		return
	}
	s.Pending = dir
}

// ApplyPending promotes the buffered direction to the active facing.
func (s *Snake) ApplyPending() {
	s.Facing = s.Pending
}

// MoveTo advances the head to next, pushing the vacated cell onto the front of
// the history.
func (s *Snake) MoveTo(next types.Point) {
	s.History = append([]types.Point{s.Head}, s.History...)
	s.Head = next
}

// TrimTail drops the oldest history cell. Called every tick the snake did not
// eat; skipping it is what makes the snake grow.
func (s *Snake) TrimTail() {
	if len(s.History) > 0 {
		s.History = s.History[:len(s.History)-1]
	}
}

// HitsBody reports whether p coincides with any trailing segment.
func (s *Snake) HitsBody(p types.Point) bool {
	for _, seg := range s.History {
		if seg == p {
			return true
		}
	}
	return false
}

// Occupies reports whether the head or any segment covers p.
func (s *Snake) Occupies(p types.Point) bool {
	return p == s.Head || s.HitsBody(p)
}

// Len returns the number of cells the snake covers, head included.
func (s *Snake) Len() int {
	return len(s.History) + 1
}
