package ui

import (
	"dragonsnake/game/types"
)

// Layout converts board cells into pixel coordinates. The mapping is pure: it
// depends only on the cell and border sizes, never on game state.
type Layout struct {
	CellSize   int32
	BorderSize int32
}

// Pitch returns the pixel span of one cell including its border.
func (l Layout) Pitch() int32 {
	return l.CellSize + l.BorderSize
}

// CellOrigin returns the top-left pixel of the drawable area of cell p.
func (l Layout) CellOrigin(p types.Point) (x, y int32) {
	return int32(p.X)*l.Pitch() + l.BorderSize, int32(p.Y)*l.Pitch() + l.BorderSize
}
