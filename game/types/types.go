package types

// Grid represents the game board dimensions in cells.
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the board.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the total number of board cells.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Point is a board cell coordinate. Y grows downward.
type Point struct {
	X, Y int
}

// Add returns the cell offset from p by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}
