package system

import (
	"log/slog"

	"github.com/waaghals/sim-something/ecs"
	"github.com/waaghals/sim-something/ecs/component"
)

// TelemetryStats are running totals of navigation outcomes.
type TelemetryStats struct {
	PathsFound  int
	Unreachable int
	Stale       int
	Arrived     int
	Deferred    int

	// Per-state agent counts as of the last update.
	States map[component.NavigationState]int

	Explored int
	Edges    int
	InFlight int
	Pending  int
}

// TelemetrySystem runs last in the tick. It drains the world's navigation
// events into TelemetryStats and logs a summary every LogEvery ticks.
type TelemetrySystem struct {
	nav      *Navigation
	logger   *slog.Logger
	LogEvery uint64
	stats    TelemetryStats
}

func NewTelemetrySystem(nav *Navigation, logger *slog.Logger, logEvery uint64) *TelemetrySystem {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TelemetrySystem{
		nav:      nav,
		logger:   logger,
		LogEvery: logEvery,
		stats:    TelemetryStats{States: map[component.NavigationState]int{}},
	}
}

func (s *TelemetrySystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	for _, evt := range w.Events().Drain() {
		nav, ok := evt.AsNavigation()
		if !ok {
			continue
		}
		switch nav.Kind {
		case ecs.NavigationEventPathFound:
			s.stats.PathsFound++
		case ecs.NavigationEventUnreachable:
			s.stats.Unreachable++
		case ecs.NavigationEventStale:
			s.stats.Stale++
		case ecs.NavigationEventArrived:
			s.stats.Arrived++
		case ecs.NavigationEventDeferred:
			s.stats.Deferred += nav.Count
		}
	}

	clear(s.stats.States)
	ecs.ForEach(w, component.NavigationComponent.Kind(), func(_ ecs.Entity, nav *component.Navigation) {
		s.stats.States[nav.State]++
	})

	if s.nav != nil {
		s.stats.Explored = s.nav.Mesh().Explored()
		s.stats.Edges = s.nav.Mesh().Edges()
		s.stats.InFlight = s.nav.Solver().Pool().InFlight()
		s.stats.Pending = s.nav.Pending()
	}

	if s.LogEvery > 0 && w.Tick()%s.LogEvery == 0 {
		s.logger.Debug("navigation: telemetry",
			"tick", w.Tick(),
			"found", s.stats.PathsFound,
			"unreachable", s.stats.Unreachable,
			"stale", s.stats.Stale,
			"arrived", s.stats.Arrived,
			"deferred", s.stats.Deferred,
			"explored", s.stats.Explored,
			"in_flight", s.stats.InFlight,
		)
	}
}

// Stats returns a copy of the current totals.
func (s *TelemetrySystem) Stats() TelemetryStats {
	out := s.stats
	out.States = make(map[component.NavigationState]int, len(s.stats.States))
	for k, v := range s.stats.States {
		out.States[k] = v
	}
	return out
}
