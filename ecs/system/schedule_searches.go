package system

import (
	"github.com/waaghals/sim-something/ecs"
	"github.com/waaghals/sim-something/ecs/component"
	"github.com/waaghals/sim-something/navigation"
)

// ScheduleSearchesSystem drains pending destination requests and starts
// their searches within the per-tick budget.
type ScheduleSearchesSystem struct {
	nav *Navigation
}

func NewScheduleSearchesSystem(nav *Navigation) *ScheduleSearchesSystem {
	return &ScheduleSearchesSystem{nav: nav}
}

func (s *ScheduleSearchesSystem) Update(w *ecs.World) {
	if s == nil || s.nav == nil || w == nil {
		return
	}

	started, deferred := navigation.Dispatch(s.nav.solver, s.nav.mesh, s.nav.queue)
	for _, d := range started {
		nav, ok := ecs.Get(w, d.Key, component.NavigationComponent.Kind())
		if !ok {
			// Agent went away after submitting; the result is never read.
			continue
		}
		// Replacing an older in-flight search drops it without cancelling.
		nav.Search = d.Search
		nav.SearchGeneration = d.Search.Request().Generation
		nav.State = component.NavSearching
	}

	if deferred > 0 {
		s.nav.logger.Debug("navigation: deferred searches", "count", deferred, "started", len(started))
		w.Events().PushNavigation(ecs.NavigationEvent{Kind: ecs.NavigationEventDeferred, Count: deferred})
	}
}
