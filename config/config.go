package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"gosnake/game/types"
)

// Config holds the game's runtime settings. Grid geometry and tick rate
// can be overridden from the environment; colors are fixed.
type Config struct {
	GridWidth  int // Playfield width in cells
	GridHeight int // Playfield height in cells
	CellSize   int // Cell edge in pixels
	TickRate   int // Game state updates per second
	PanelWidth int // Stats side panel width in pixels

	Background types.Color
	Border     types.Color
	Apple      types.Color
	Snake      types.Color
}

// Defaults match the classic layout: a 640x480 playfield of 20px cells
// stepped at 10 ticks per second.
func defaults() Config {
	return Config{
		GridWidth:  32,
		GridHeight: 24,
		CellSize:   20,
		TickRate:   10,
		PanelWidth: 200,

		Background: types.Color{R: 0, G: 0, B: 0},
		Border:     types.Color{R: 93, G: 216, B: 228},
		Apple:      types.Color{R: 255, G: 0, B: 0},
		Snake:      types.Color{R: 0, G: 255, B: 0},
	}
}

// Load builds the configuration from defaults and environment overrides.
// A .env file is honored when present.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[CONFIG] [INFO] .env not loaded: %v", err)
	}

	cfg := defaults()
	cfg.GridWidth = envInt("SNAKE_GRID_WIDTH", cfg.GridWidth)
	cfg.GridHeight = envInt("SNAKE_GRID_HEIGHT", cfg.GridHeight)
	cfg.CellSize = envInt("SNAKE_CELL_SIZE", cfg.CellSize)
	cfg.TickRate = envInt("SNAKE_TICK_RATE", cfg.TickRate)
	return cfg
}

// Grid returns the configured grid dimensions.
func (c Config) Grid() types.Grid {
	return types.Grid{Width: c.GridWidth, Height: c.GridHeight}
}

// envInt reads an integer environment variable, falling back to def when
// the variable is unset or malformed.
func envInt(key string, def int) int {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		log.Printf("[CONFIG] [WARN] %s=%q is not a positive integer, using %d", key, raw, def)
		return def
	}
	return value
}
