package game

import (
	"log"
	"time"

	"github.com/google/uuid"

	"gosnake/config"
	"gosnake/game/entity"
	"gosnake/game/manager"
	"gosnake/game/types"
)

// Game owns the whole mutable state of one session: the snake, the
// apple, and the managers that place food and detect collisions. It is
// driven by a single goroutine calling Update at the tick rate.
type Game struct {
	UUID  string
	Grid  types.Grid
	Snake *entity.Snake
	Apple *entity.Apple
	Stats *SessionStats

	foodMgr      *manager.FoodManager
	collisionMgr *manager.CollisionManager
}

// TickResult reports what happened during one Update so the render and
// stats layers don't have to re-derive it.
type TickResult struct {
	Ate         bool
	Reset       bool
	DroppedTail types.Point
	Dropped     bool
}

// NewGame builds a fresh session on the configured grid: one snake at
// the center moving right and an apple on a free cell.
func NewGame(cfg config.Config, seed uint64) *Game {
	grid := cfg.Grid()
	collisionMgr := manager.NewCollisionManager(grid)

	g := &Game{
		UUID:         uuid.New().String(),
		Grid:         grid,
		Snake:        entity.NewSnake(grid.Center(), types.Right),
		Apple:        &entity.Apple{},
		Stats:        NewSessionStats(),
		foodMgr:      manager.NewFoodManager(grid, collisionMgr, seed),
		collisionMgr: collisionMgr,
	}
	g.relocateApple()

	log.Printf("[GAME] [INFO] session %s started: grid %dx%d, tick rate %d/s",
		g.UUID, grid.Width, grid.Height, cfg.TickRate)
	return g
}

// SetPendingDirection forwards a directional intent to the snake. The
// reversal rule applies; the last valid intent before a tick wins.
func (g *Game) SetPendingDirection(d types.Direction) {
	g.Snake.SetPendingDirection(d)
}

// Update runs one tick: commit the pending direction, advance the
// snake, then handle eating and self-collision.
func (g *Game) Update() TickResult {
	var result TickResult

	g.Snake.CommitDirection()
	result.DroppedTail, result.Dropped = g.Snake.Advance(g.Grid)

	if g.Snake.Head() == g.Apple.Position {
		result.Ate = true
		g.Snake.MarkGrow()
		g.relocateApple()
	}

	if g.collisionMgr.HitsSelf(g.Snake) {
		result.Reset = true
		g.Stats.RecordReset(g.Score())
		g.Snake.Reset(g.Grid)
		g.relocateApple()
	}

	g.Stats.RecordTick(result.Ate, g.Snake.Len())
	return result
}

// Score is the number of apples eaten this run, implicit in the body
// length.
func (g *Game) Score() int {
	return g.Snake.Len() - 1
}

func (g *Game) relocateApple() {
	pos, ok := g.foodMgr.Place(g.Snake.Body)
	if !ok {
		// Grid fully covered by the snake. Nothing left to eat; leave
		// the apple where it is.
		log.Printf("[GAME] [WARN] session %s: no free cell for the apple", g.UUID)
		return
	}
	g.Apple.MoveTo(pos)
}

// Elapsed returns the session duration.
func (g *Game) Elapsed() time.Duration {
	return time.Since(g.Stats.StartTime)
}
