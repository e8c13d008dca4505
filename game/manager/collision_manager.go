package manager

import (
	"dragonsnake/game/entity"
	"dragonsnake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (ct CollisionType) String() string {
	switch ct {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// IsWallCollision reports whether pos lies outside the board. Checked against
// the candidate head cell before the move commits, so the head never leaves
// the grid.
func (cm *CollisionManager) IsWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// CheckMove classifies the collision, if any, of the head sitting at pos with
// the given body configuration. The snake must already reflect the post-move
// tail: stepping onto the cell the tail vacated this tick is not a collision.
func (cm *CollisionManager) CheckMove(pos types.Point, snake *entity.Snake) CollisionType {
	if cm.IsWallCollision(pos) {
		return WallCollision
	}
	if snake.HitsBody(pos) {
		return SelfCollision
	}
	return NoCollision
}

// ValidateSpawnPosition checks if a position is valid for spawning food.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if cm.IsWallCollision(pos) {
		return false
	}
	return !snake.Occupies(pos)
}
