package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/waaghals/sim-something/levels"
	"github.com/waaghals/sim-something/prefabs"
)

func main() {
	config := flag.String("config", prefabs.SimSpecFile, "simulation spec in prefabs/")
	mapName := flag.String("map", "", "map file in levels/, overrides the config")
	headless := flag.Bool("headless", false, "run without a window")
	ticks := flag.Uint64("ticks", 0, "ticks to run in headless mode, 0 runs until interrupted")
	debug := flag.Bool("debug", false, "debug logging and overlays")
	watch := flag.Bool("watch", true, "hot reload prefabs/ and levels/ from disk")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	spec, err := prefabs.LoadSimSpec(*config)
	if err != nil {
		logger.Error("load spec", "err", err)
		os.Exit(1)
	}

	sim, err := NewSimulation(ctx, spec, *mapName, logger)
	if err != nil {
		logger.Error("build simulation", "err", err)
		os.Exit(1)
	}

	var watcher *prefabs.Watcher
	if *watch {
		watcher, err = prefabs.NewWatcher("prefabs", "prefabs/scripts", levels.Dir)
		if err != nil {
			logger.Warn("hot reload disabled", "err", err)
			watcher = nil
		} else {
			defer watcher.Close()
		}
	}

	if *headless {
		runHeadless(ctx, sim, watcher, *ticks)
		return
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("sim-something")
	ebiten.SetTPS(spec.TickRate)

	game := NewGame(sim, watcher, *debug)
	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil {
		logger.Error("run game", "err", err)
		sim.Close()
		os.Exit(1)
	}
	sim.Close()
}
