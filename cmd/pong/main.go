package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	clientgame "github.com/cbodonnell/pong/client/game"
	"github.com/cbodonnell/pong/pkg/config"
	"github.com/cbodonnell/pong/pkg/game"
	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/cbodonnell/pong/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file")
	logLevel := flag.String("log-level", "", "Log level (overrides the config file)")
	debug := flag.Bool("debug", false, "Show the debug overlay")
	seed := flag.Uint64("seed", 0, "Seed for the ball direction (0 for random, overrides the config file)")
	headless := flag.Bool("headless", false, "Run the simulation without a window")
	headlessDuration := flag.Duration("headless-duration", 0, "Stop a headless run after this long (0 runs until interrupted)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *debug {
		cfg.Debug = true
	}
	if *seed != 0 {
		cfg.Game.Seed = *seed
	}

	parsedLogLevel, err := log.ParseLogLevel(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	field := types.Field{
		Width:  float64(cfg.Window.Width),
		Height: float64(cfg.Window.Height),
	}
	rng := types.NewRandomSource(cfg.Game.Seed)
	log.Info("Ball direction seed is %d", rng.Seed())

	gameManager := game.NewGameManager(game.NewGameManagerOptions{
		GameState:        types.NewGameState(field, rng),
		Field:            field,
		GameLoopInterval: time.Second / time.Duration(cfg.Window.TPS),
	})
	log.Info("Starting match %s", gameManager.MatchID())

	if *headless {
		if err := runHeadless(gameManager, *headlessDuration); err != nil {
			panic(fmt.Sprintf("Failed to run headless game: %v", err))
		}
		return
	}

	g, err := clientgame.NewGame(clientgame.NewGameOptions{
		Debug:       cfg.Debug,
		GameManager: gameManager,
		Field:       field,
		Seed:        rng.Seed(),
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}
	log.Info("Final score %d-%d", gameManager.GameState().Score.P1, gameManager.GameState().Score.P2)
}

func runHeadless(gameManager *game.GameManager, duration time.Duration) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, duration)
		defer cancel()
	}

	return gameManager.Start(ctx)
}
