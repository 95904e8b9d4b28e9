package main

import (
	"flag"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gosnake/config"
	"gosnake/game"
	"gosnake/game/types"
	"gosnake/ui"
)

func main() {
	cfg := config.Load()
	speed := flag.Int("speed", cfg.TickRate, "Game speed in ticks per second")
	flag.Parse()
	if *speed > 0 {
		cfg.TickRate = *speed
	}

	renderer := ui.NewRenderer(cfg)
	width, height := renderer.WindowSize()

	rl.InitWindow(width, height, "Snake")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	g := game.NewGame(cfg, uint64(time.Now().UnixNano()))

	lastUpdate := time.Now()
	tickInterval := time.Second / time.Duration(cfg.TickRate)

	for !rl.WindowShouldClose() {
		if ui.QuitRequested() {
			break
		}

		// Keys are polled every frame; between two ticks the last valid
		// press wins.
		if d := ui.PollDirection(); d != types.None {
			g.SetPendingDirection(d)
		}

		if time.Since(lastUpdate) >= tickInterval {
			g.Update()
			lastUpdate = time.Now()
		}

		renderer.Draw(g)
	}
}
