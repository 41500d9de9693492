// Command swarmrun steps a swarm headlessly for a fixed number of ticks
// and records per-tick statistics to CSV.
package main

import (
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/gosim-labs/friendfoe/pkg/swarm"
	"github.com/gosim-labs/friendfoe/pkg/telemetry"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON config file (built-in defaults when empty)")
	ticks := flag.Int("ticks", 1000, "number of simulation ticks to run")
	outDir := flag.String("out", "out", "output directory for ticks.csv and config.json (empty disables output)")
	flag.Parse()

	logger, err := zap.NewProduction()
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

	out, err := telemetry.NewOutputManager(*outDir)
	if err != nil {
		logger.Fatal("opening output", zap.Error(err))
	}
	defer out.Close()

	if err := out.WriteConfig(cfg); err != nil {
		logger.Fatal("writing config copy", zap.Error(err))
	}

	prev := world.Positions()
	for i := 0; i < *ticks; i++ {
		world.Step()
		cur := world.Positions()
		if err := out.WriteTick(telemetry.Collect(world.Tick(), prev, cur)); err != nil {
			logger.Fatal("writing tick stats", zap.Error(err))
		}
		prev = cur
	}

	final := telemetry.Collect(world.Tick(), nil, prev)
	logger.Info("run complete",
		zap.Int("ticks", *ticks),
		zap.Int("agents", world.Len()),
		zap.Float64("centroidX", final.CentroidX),
		zap.Float64("centroidY", final.CentroidY),
		zap.Float64("spread", final.Spread),
	)
}
