package main

import (
	"flag"
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"dragonsnake/config"
	"dragonsnake/game"
	"dragonsnake/game/types"
	"dragonsnake/ui"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	tps := flag.Int("tps", 0, "override ticks per second from the config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *tps > 0 {
		cfg.TicksPerSecond = *tps
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	g := game.NewGame(game.Options{
		Grid:          types.Grid{Width: cfg.GridWidth, Height: cfg.GridHeight},
		InitialLength: cfg.InitialLength,
		Seed:          seed,
		StatsPath:     cfg.StatsPath,
	})
	clock := game.NewTickClock(cfg.TicksPerSecond)

	rl.InitWindow(int32(cfg.WindowWidth()), int32(cfg.WindowHeight()), "Snake but dragon")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer(cfg.CellSize, cfg.BorderSize, cfg.WindowWidth(), cfg.WindowHeight())

	log.Printf("board %dx%d, %d ticks/sec, high score %d",
		cfg.GridWidth, cfg.GridHeight, cfg.TicksPerSecond, g.HighScore())

	last := time.Now()
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}

		// Input is polled every frame; the game buffers the latest valid
		// direction until the next tick.
		if dir := ui.PollDirection(); dir != types.DirNone {
			g.HandleInput(dir)
		}

		now := time.Now()
		if clock.Advance(now.Sub(last)) {
			g.Step()
		}
		last = now

		renderer.Draw(g)
	}

	if err := g.SaveStats(); err != nil {
		log.Printf("save stats: %v", err)
	}
	log.Printf("session over: score %d, high score %d", g.Score(), g.HighScore())
}
