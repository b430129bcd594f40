package system

import (
	"errors"
	"log/slog"

	"github.com/waaghals/sim-something/ecs"
	"github.com/waaghals/sim-something/ecs/component"
	"github.com/waaghals/sim-something/navigation"
)

// WanderSystem hands a new scripted destination to agents that have sat
// Idle or Unreachable for IdleTicks ticks. IdleTicks of zero disables it.
type WanderSystem struct {
	nav       *Navigation
	script    *DestinationScript
	IdleTicks int
	logger    *slog.Logger
}

func NewWanderSystem(nav *Navigation, script *DestinationScript, idleTicks int, logger *slog.Logger) *WanderSystem {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &WanderSystem{nav: nav, script: script, IdleTicks: idleTicks, logger: logger}
}

func (s *WanderSystem) Update(w *ecs.World) {
	if s == nil || s.nav == nil || s.script == nil || w == nil || s.IdleTicks <= 0 {
		return
	}

	ecs.ForEach2(w, component.NavigationComponent.Kind(), component.DnaComponent.Kind(), func(e ecs.Entity, nav *component.Navigation, dna *component.Dna) {
		if nav.State != component.NavIdle && nav.State != component.NavUnreachable {
			nav.IdleTicks = 0
			return
		}
		nav.IdleTicks++
		if nav.IdleTicks < s.IdleTicks {
			return
		}
		nav.IdleTicks = 0

		// Vary the pick per trip while staying reproducible for a given agent.
		seed := dna.Seed + nav.Generation*0x9e3779b97f4a7c15
		dest, err := s.script.Pick(seed, s.nav.Grid())
		if err != nil {
			if !errors.Is(err, ErrNoDestination) {
				s.logger.Error("wander: pick destination", "entity", e, "err", err)
			}
			return
		}
		if err := s.nav.SubmitDestination(w, e, dest); err != nil {
			s.logger.Error("wander: submit destination", "entity", e, "err", err)
		}
	})
}

func walkableCells(grid navigation.WalkabilityGrid) []navigation.Cell {
	if tg, ok := grid.(*navigation.TileGrid); ok {
		return tg.WalkableCells()
	}
	w, h := grid.Size()
	var out []navigation.Cell
	for y := uint32(0); y < h; y++ {
		for x := uint32(0); x < w; x++ {
			c := navigation.Cell{X: x, Y: y}
			if grid.IsWalkable(c) {
				out = append(out, c)
			}
		}
	}
	return out
}
