package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gosnake/config"
	"gosnake/game"
	"gosnake/game/types"
)

// Renderer draws the playfield and the stats side panel. The whole
// frame is redrawn every call; the dropped-tail erase hint from the
// game is not needed with full redraws.
type Renderer struct {
	cfg      config.Config
	cellSize int32
	fieldW   int32
	fieldH   int32
}

func NewRenderer(cfg config.Config) *Renderer {
	return &Renderer{
		cfg:      cfg,
		cellSize: int32(cfg.CellSize),
		fieldW:   int32(cfg.GridWidth * cfg.CellSize),
		fieldH:   int32(cfg.GridHeight * cfg.CellSize),
	}
}

// WindowSize returns the total window dimensions: playfield plus side
// panel.
func (r *Renderer) WindowSize() (int32, int32) {
	return r.fieldW + int32(r.cfg.PanelWidth), r.fieldH
}

// Draw renders one frame.
func (r *Renderer) Draw(g *game.Game) {
	rl.BeginDrawing()
	rl.ClearBackground(toRaylib(r.cfg.Background))

	r.drawCell(g.Apple.Position, r.cfg.Apple)
	for _, cell := range g.Snake.Body {
		r.drawCell(cell, r.cfg.Snake)
	}

	r.drawStatsPanel(g)
	rl.EndDrawing()
}

// drawCell fills one grid cell and outlines it with the border color,
// the way the classic rendition draws every occupied cell.
func (r *Renderer) drawCell(p types.Point, c types.Color) {
	x := int32(p.X) * r.cellSize
	y := int32(p.Y) * r.cellSize
	rl.DrawRectangle(x, y, r.cellSize, r.cellSize, toRaylib(c))
	rl.DrawRectangleLines(x, y, r.cellSize, r.cellSize, toRaylib(r.cfg.Border))
}

func (r *Renderer) drawStatsPanel(g *game.Game) {
	statsX := r.fieldW + 10
	statsY := int32(10)
	fontSize := int32(18)
	lineHeight := int32(24)

	rl.DrawRectangle(r.fieldW, 0, int32(r.cfg.PanelWidth), r.fieldH, rl.DarkGray)

	stats := g.Stats
	lines := []string{
		fmt.Sprintf("Score: %d", g.Score()),
		fmt.Sprintf("Best: %d", stats.SessionHigh),
		fmt.Sprintf("Resets: %d", stats.Resets),
		fmt.Sprintf("Avg: %.1f", stats.AverageScore),
	}
	for _, line := range lines {
		rl.DrawText(line, statsX, statsY, fontSize, rl.White)
		statsY += lineHeight
	}

	elapsed := g.Elapsed()
	timeText := fmt.Sprintf("%02d:%02d:%02d",
		int(elapsed.Hours()), int(elapsed.Minutes())%60, int(elapsed.Seconds())%60)
	rl.DrawText(timeText, statsX, r.fieldH-lineHeight, fontSize, rl.White)

	r.drawScoreGraph(g, statsX, statsY+lineHeight)
}

// drawScoreGraph plots the final score of each finished run.
func (r *Renderer) drawScoreGraph(g *game.Game, graphX, graphY int32) {
	graphW := int32(r.cfg.PanelWidth) - 20
	graphH := r.fieldH / 5

	rl.DrawRectangleLines(graphX, graphY, graphW, graphH, rl.White)
	rl.DrawText("Runs", graphX, graphY-20, 16, rl.White)

	scores := g.Stats.RunScores
	if len(scores) < 2 {
		return
	}

	maxScore := 1
	for _, s := range scores {
		if s > maxScore {
			maxScore = s
		}
	}

	snakeColor := toRaylib(r.cfg.Snake)
	for i := 1; i < len(scores); i++ {
		x1 := graphX + graphW*int32(i-1)/int32(len(scores)-1)
		y1 := graphY + graphH - graphH*int32(scores[i-1])/int32(maxScore)
		x2 := graphX + graphW*int32(i)/int32(len(scores)-1)
		y2 := graphY + graphH - graphH*int32(scores[i])/int32(maxScore)
		rl.DrawLine(x1, y1, x2, y2, snakeColor)
	}
}

func toRaylib(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}
