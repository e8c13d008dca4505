package entity

import (
	"dragonsnake/game/types"
)

// Food is the single outstanding food item. At most one is active at a time;
// consuming it clears Active and the simulation step spawns a replacement.
type Food struct {
	Pos    types.Point
	Active bool
}

// PlaceAt activates the food at cell p.
func (f *Food) PlaceAt(p types.Point) {
	f.Pos = p
	f.Active = true
}

// Consume deactivates the food.
func (f *Food) Consume() {
	f.Active = false
}
