package manager

import (
	"golang.org/x/exp/rand"

	"gosnake/game/types"
)

// FoodManager picks cells for the apple. Sampling is uniform over the
// grid and rejects cells in the avoid set; after gridCells random
// attempts it falls back to a deterministic sweep so a nearly-full grid
// cannot stall the tick.
type FoodManager struct {
	grid         types.Grid
	collisionMgr *CollisionManager
	rng          *rand.Rand
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, seed uint64) *FoodManager {
	return &FoodManager{
		grid:         grid,
		collisionMgr: collisionMgr,
		rng:          rand.New(rand.NewSource(seed)),
	}
}

// Place returns a random free cell outside avoid. ok is false only when
// every cell of the grid is in avoid.
func (fm *FoodManager) Place(avoid []types.Point) (pos types.Point, ok bool) {
	for attempts := 0; attempts < fm.grid.Cells(); attempts++ {
		candidate := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if !fm.collisionMgr.Occupied(candidate, avoid) {
			return candidate, true
		}
	}

	// Random sampling got unlucky or the grid is almost full; scan for
	// the first free cell instead.
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			candidate := types.Point{X: x, Y: y}
			if !fm.collisionMgr.Occupied(candidate, avoid) {
				return candidate, true
			}
		}
	}

	return types.Point{}, false
}
