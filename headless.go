package main

import (
	"context"
	"time"

	"github.com/waaghals/sim-something/prefabs"
)

// runHeadless steps the simulation ticks times as fast as it can, or until
// ctx is cancelled when ticks is zero.
func runHeadless(ctx context.Context, sim *Simulation, watcher *prefabs.Watcher, ticks uint64) {
	start := time.Now()
	defer func() {
		sim.Close()
		stats := sim.Telemetry.Stats()
		sim.logger.Info("headless: done",
			"ticks", sim.World.Tick(),
			"elapsed", time.Since(start),
			"found", stats.PathsFound,
			"unreachable", stats.Unreachable,
			"stale", stats.Stale,
			"arrived", stats.Arrived,
			"deferred", stats.Deferred,
			"explored", stats.Explored,
		)
	}()

	for ticks == 0 || sim.World.Tick() < ticks {
		if ctx.Err() != nil {
			return
		}
		sim.drainReloads(watcher)
		sim.Step()
	}
}
