package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/karolinemerino/PacMan/internal/config"
	"github.com/karolinemerino/PacMan/internal/game"
	"github.com/karolinemerino/PacMan/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to config.yaml (default: user config dir)")
	seed := flag.Int64("seed", 0, "ghost decision seed; 0 picks one from the clock")
	flag.Parse()

	path := *configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.With(zap.String("session", uuid.NewString()))
	logger.Info("starting", zap.String("config", path), zap.Int64("seed", cfg.Seed))

	g := game.New(cfg, logger)
	ebiten.SetWindowTitle("Maze Chase")
	ebiten.SetWindowResizable(false)
	ebiten.SetWindowSize(g.ScreenWidth(), g.ScreenHeight())
	if err := ebiten.RunGame(g); err != nil {
		logger.Error("game exited", zap.Error(err))
		return err
	}
	return nil
}
