package ui

import (
	"dragonsnake/game"
	"dragonsnake/game/manager"
	"dragonsnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	gridColor = rl.Color{R: 40, G: 40, B: 40, A: 255}
	bodyColor = rl.Color{R: 60, G: 160, B: 60, A: 255}
	headColor = rl.Color{R: 90, G: 220, B: 90, A: 255}
	tailColor = rl.Color{R: 200, G: 200, B: 200, A: 255}
)

type Renderer struct {
	layout       Layout
	screenWidth  int32
	screenHeight int32
}

func NewRenderer(cellSize, borderSize, screenWidth, screenHeight int) *Renderer {
	return &Renderer{
		layout: Layout{
			CellSize:   int32(cellSize),
			BorderSize: int32(borderSize),
		},
		screenWidth:  int32(screenWidth),
		screenHeight: int32(screenHeight),
	}
}

// Draw renders one frame. It runs every frame regardless of tick boundaries
// and only reads game state.
func (r *Renderer) Draw(g *game.Game) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	r.drawGrid(g.Grid)
	r.drawFood(g)
	r.drawSnake(g)

	switch g.State() {
	case manager.StateGameOver:
		r.drawBanner("GAME OVER")
	case manager.StateWon:
		r.drawBanner("BOARD FULL - YOU WIN")
	}

	rl.EndDrawing()
}

func (r *Renderer) drawGrid(grid types.Grid) {
	pitch := r.layout.Pitch()
	for x := 0; x < grid.Width; x++ {
		for y := 0; y < grid.Height; y++ {
			rl.DrawRectangleLines(int32(x)*pitch, int32(y)*pitch, pitch, pitch, gridColor)
		}
	}
}

func (r *Renderer) drawFood(g *game.Game) {
	food := g.Food()
	if !food.Active {
		return
	}
	x, y := r.layout.CellOrigin(food.Pos)
	rl.DrawRectangle(x, y, r.layout.CellSize, r.layout.CellSize, rl.Red)
}

func (r *Renderer) drawSnake(g *game.Game) {
	snake := g.Snake()

	for i, seg := range snake.History {
		color := bodyColor
		if i == len(snake.History)-1 {
			color = tailColor
		}
		x, y := r.layout.CellOrigin(seg)
		rl.DrawRectangle(x, y, r.layout.CellSize, r.layout.CellSize, color)
	}

	headX, headY := r.layout.CellOrigin(snake.Head)
	rl.DrawRectangle(headX, headY, r.layout.CellSize, r.layout.CellSize, headColor)
	r.drawFacingIndicator(headX, headY, snake.Facing)
}

// drawFacingIndicator draws a triangle on the head cell pointing the way the
// snake is moving.
func (r *Renderer) drawFacingIndicator(headX, headY int32, facing types.Direction) {
	cell := r.layout.CellSize
	halfCell := cell / 2

	switch facing {
	case types.DirRight:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + cell), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + cell)},
			rl.Yellow)
	case types.DirLeft:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + cell)},
			rl.Yellow)
	case types.DirDown:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + cell)},
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + cell), Y: float32(headY + halfCell)},
			rl.Yellow)
	case types.DirUp:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + cell), Y: float32(headY + halfCell)},
			rl.Yellow)
	}
}

func (r *Renderer) drawBanner(text string) {
	fontSize := r.screenHeight / 12
	textWidth := rl.MeasureText(text, fontSize)
	rl.DrawText(text,
		(r.screenWidth-textWidth)/2,
		(r.screenHeight-fontSize)/2,
		fontSize, rl.White)
}
