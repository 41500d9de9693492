package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/gosim-labs/friendfoe/internal/viewer"
	"github.com/gosim-labs/friendfoe/pkg/swarm"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON config file (built-in defaults when empty)")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	cfg := swarm.DefaultConfig()
	if *configPath != "" {
		cfg, err = swarm.LoadConfig(*configPath)
		if err != nil {
			logger.Fatal("loading config", zap.Error(err))
		}
	}

	creator, err := swarm.CreatorFor(cfg)
	if err != nil {
		logger.Fatal("resolving behavior", zap.Error(err))
	}
	strategy, err := swarm.StrategyByName(cfg.Strategy)
	if err != nil {
		logger.Fatal("resolving strategy", zap.Error(err))
	}

	world, err := swarm.NewWorld(cfg, creator, swarm.WithLogger(logger))
	if err != nil {
		logger.Fatal("creating world", zap.Error(err))
	}
	if err := world.Reset(strategy); err != nil {
		logger.Fatal("populating world", zap.Error(err))
	}

	ebiten.SetWindowSize(960, 960)
	ebiten.SetWindowTitle("Friend/Foe Swarm")

	if err := ebiten.RunGame(viewer.NewGame(world, cfg, strategy)); err != nil {
		logger.Fatal("viewer stopped", zap.Error(err))
	}
}
