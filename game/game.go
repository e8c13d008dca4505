package game

import (
	"dragonsnake/game/entity"
	"dragonsnake/game/manager"
	"dragonsnake/game/types"
)

// Options configures a new game.
type Options struct {
	Grid          types.Grid
	InitialLength int
	Seed          uint64
	StatsPath     string
}

// Game owns the whole simulation: the snake, the single food item, and the
// managers for collisions, food placement, and the lifecycle state machine.
// Nothing here touches the window; the ui package reads positions out of it
// every frame, between ticks included.
type Game struct {
	Grid  types.Grid
	snake *entity.Snake
	food  entity.Food
	score int
	ticks int
	cause manager.CollisionType

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
}

func NewGame(opts Options) *Game {
	if opts.InitialLength < 1 {
		opts.InitialLength = 1
	}
	grid := opts.Grid
	if grid.Cells() < opts.InitialLength+1 || opts.InitialLength > grid.Width {
		panic("game: grid too small for the initial snake")
	}

	start := types.Point{X: grid.Width / 4, Y: grid.Height / 2}
	// The body extends left from the head, so keep it on the board.
	if start.X < opts.InitialLength-1 {
		start.X = opts.InitialLength - 1
	}

	g := &Game{
		Grid:  grid,
		snake: entity.NewSnake(start, types.DirRight, opts.InitialLength),
	}
	g.collisionMgr = manager.NewCollisionManager(grid)
	g.foodMgr = manager.NewFoodManager(grid, g.collisionMgr, opts.Seed)
	g.stateMgr = manager.NewStateManager(opts.StatsPath)
	g.spawnFood()
	return g
}

// HandleInput buffers a direction change from the input collaborator. It may
// be called any number of times between ticks; the last accepted direction
// wins. Reversals onto the current facing are rejected, and terminal states
// stop input handling entirely.
func (g *Game) HandleInput(dir types.Direction) {
	if g.stateMgr.State().Terminal() {
		return
	}
	g.snake.Steer(dir)
}

// Step runs one simulation tick. Sub-steps run in a fixed order: apply the
// buffered direction, wall check against the candidate head cell, move, food
// consumption, tail trim (skipped on the tick food is eaten, which is what
// grows the snake), self collision against the post-move body, food respawn.
func (g *Game) Step() {
	if g.stateMgr.State().Terminal() {
		return
	}
	g.ticks++

	g.snake.ApplyPending()
	next := g.snake.Head.Add(g.snake.Facing.ToPoint())

	// The boundary is a wall, not a wrap. The head never commits to an
	// out-of-bounds cell.
	if g.collisionMgr.IsWallCollision(next) {
		g.endGame(manager.StateGameOver, manager.WallCollision)
		return
	}

	g.snake.MoveTo(next)

	if g.food.Active && next == g.food.Pos {
		g.food.Consume()
		g.score++
	} else {
		g.snake.TrimTail()
	}

	if ct := g.collisionMgr.CheckMove(next, g.snake); ct != manager.NoCollision {
		g.endGame(manager.StateGameOver, ct)
		return
	}

	if !g.food.Active {
		g.spawnFood()
	}
}

func (g *Game) spawnFood() {
	pos, ok := g.foodMgr.Spawn(g.snake)
	if !ok {
		// Board full: nothing left to place food on.
		g.endGame(manager.StateWon, manager.NoCollision)
		return
	}
	g.food.PlaceAt(pos)
}

func (g *Game) endGame(target manager.GameState, cause manager.CollisionType) {
	g.cause = cause
	g.stateMgr.Transition(target)
	g.stateMgr.RecordScore(g.score)
	g.stateMgr.SaveStats(g.score, g.EndCause())
}

// SaveStats flushes the session stats, for callers quitting mid-game.
func (g *Game) SaveStats() error {
	return g.stateMgr.SaveStats(g.score, g.EndCause())
}

// EndCause describes what ended the session, or "" while still in game.
func (g *Game) EndCause() string {
	switch {
	case g.stateMgr.State() == manager.StateWon:
		return "board full"
	case g.cause != manager.NoCollision:
		return g.cause.String()
	default:
		return ""
	}
}

func (g *Game) State() manager.GameState {
	return g.stateMgr.State()
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) HighScore() int {
	return g.stateMgr.HighScore()
}

func (g *Game) Ticks() int {
	return g.ticks
}

func (g *Game) Snake() *entity.Snake {
	return g.snake
}

func (g *Game) Food() *entity.Food {
	return &g.food
}
