package manager

import (
	"gosnake/game/entity"
	"gosnake/game/types"
)

// CollisionManager answers occupancy questions for the grid. With
// toroidal movement there are no wall collisions; the only fatal event
// is the snake biting itself.
type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{grid: grid}
}

// HitsSelf reports whether the snake's head overlaps any other segment.
func (cm *CollisionManager) HitsSelf(s *entity.Snake) bool {
	return s.HitsSelf()
}

// Occupied reports whether pos coincides with any of the given cells.
func (cm *CollisionManager) Occupied(pos types.Point, cells []types.Point) bool {
	for _, c := range cells {
		if pos == c {
			return true
		}
	}
	return false
}
