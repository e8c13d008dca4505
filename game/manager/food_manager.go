package manager

import (
	"golang.org/x/exp/rand"

	"dragonsnake/game/entity"
	"dragonsnake/game/types"
)

// maxSpawnAttempts bounds the rejection-sampling fast path before Spawn falls
// back to enumerating the free cells.
const maxSpawnAttempts = 64

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

// Spawn picks a uniformly random cell not covered by the snake. The fast path
// samples random cells and rejects occupied ones; on a dense board it switches
// to sampling among the enumerated free cells, so it always terminates. The
// second return is false when no free cell exists.
func (fm *FoodManager) Spawn(snake *entity.Snake) (types.Point, bool) {
	if snake.Len() >= fm.grid.Cells() {
		return types.Point{}, false
	}

	for i := 0; i < maxSpawnAttempts; i++ {
		pos := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if fm.collisionMgr.ValidateSpawnPosition(pos, snake) {
			return pos, true
		}
	}

	free := make([]types.Point, 0, fm.grid.Cells()-snake.Len())
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			pos := types.Point{X: x, Y: y}
			if !snake.Occupies(pos) {
				free = append(free, pos)
			}
		}
	}
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}
