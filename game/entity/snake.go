package entity

import (
	"gosnake/game/types"
)

// Snake is the player-controlled body: an ordered sequence of cells with
// the head at index 0, a committed direction, and an optional pending
// direction applied on the next tick.
type Snake struct {
	Body []types.Point
	Dir  types.Direction

	pending types.Direction
	grew    bool
}

// NewSnake creates a single-segment snake at start, moving in dir.
func NewSnake(start types.Point, dir types.Direction) *Snake {
	return &Snake{
		Body: []types.Point{start},
		Dir:  dir,
	}
}

// Head returns the current head cell.
func (s *Snake) Head() types.Point {
	return s.Body[0]
}

// Len returns the number of body segments.
func (s *Snake) Len() int {
	return len(s.Body)
}

// SetPendingDirection stores d to be committed on the next tick. A
// direct reversal of the committed direction is ignored: it would put
// the head onto the neck immediately. Later calls within the same tick
// overwrite earlier ones.
func (s *Snake) SetPendingDirection(d types.Direction) {
	if d == types.None || s.Dir.IsOpposite(d) {
		return
	}
	s.pending = d
}

// CommitDirection promotes the pending direction, if any, to the
// committed one and clears the pending slot. Called once per tick
// before Advance.
func (s *Snake) CommitDirection() {
	if s.pending != types.None {
		s.Dir = s.pending
		s.pending = types.None
	}
}

// MarkGrow makes the next Advance keep the tail, growing the snake by
// one segment.
func (s *Snake) MarkGrow() {
	s.grew = true
}

// Advance moves the snake one cell in the committed direction, wrapping
// at grid edges. It returns the dropped tail cell so a renderer can
// erase it; dropped is false when the snake grew this tick.
func (s *Snake) Advance(grid types.Grid) (tail types.Point, dropped bool) {
	newHead := s.Head().Add(s.Dir).Wrap(grid)
	s.Body = append([]types.Point{newHead}, s.Body...)

	if s.grew {
		s.grew = false
		return types.Point{}, false
	}

	tail = s.Body[len(s.Body)-1]
	s.Body = s.Body[:len(s.Body)-1]
	return tail, true
}

// HitsSelf reports whether the head occupies the same cell as any other
// segment.
func (s *Snake) HitsSelf() bool {
	head := s.Head()
	for _, part := range s.Body[1:] {
		if part == head {
			return true
		}
	}
	return false
}

// Reset returns the snake to its initial state: one segment at the grid
// center, moving right, nothing pending, no growth.
func (s *Snake) Reset(grid types.Grid) {
	s.Body = []types.Point{grid.Center()}
	s.Dir = types.Right
	s.pending = types.None
	s.grew = false
}
