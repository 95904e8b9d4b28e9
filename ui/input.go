package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"gosnake/game/types"
)

// PollDirection reports the directional key pressed this frame, or
// None. Polled every frame, so of several presses between two ticks
// the last one overwrites the pending direction.
func PollDirection() types.Direction {
	switch {
	case rl.IsKeyPressed(rl.KeyUp):
		return types.Up
	case rl.IsKeyPressed(rl.KeyDown):
		return types.Down
	case rl.IsKeyPressed(rl.KeyLeft):
		return types.Left
	case rl.IsKeyPressed(rl.KeyRight):
		return types.Right
	}
	return types.None
}

// QuitRequested reports whether the user asked to leave the game.
func QuitRequested() bool {
	return rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape)
}
