package entity

import (
	"gosnake/game/types"
)

// Apple is the food item: a single grid cell the snake grows from.
// Placement is decided by the food manager; the apple only holds the
// resulting position.
type Apple struct {
	Position types.Point
}

// MoveTo relocates the apple.
func (a *Apple) MoveTo(p types.Point) {
	a.Position = p
}
