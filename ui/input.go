package ui

import (
	"dragonsnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyBindings = []struct {
	key int32
	dir types.Direction
}{
	{rl.KeyUp, types.DirUp},
	{rl.KeyRight, types.DirRight},
	{rl.KeyDown, types.DirDown},
	{rl.KeyLeft, types.DirLeft},
	{rl.KeyW, types.DirUp},
	{rl.KeyD, types.DirRight},
	{rl.KeyS, types.DirDown},
	{rl.KeyA, types.DirLeft},
}

// PollDirection reads this frame's direction key presses. When several keys
// were pressed on the same frame the last binding checked wins; validation
// against the current facing happens in the game, not here.
func PollDirection() types.Direction {
	dir := types.DirNone
	for _, b := range keyBindings {
		if rl.IsKeyPressed(b.key) {
			dir = b.dir
		}
	}
	return dir
}
