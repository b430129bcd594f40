package system

import (
	"github.com/jakecoffman/cp"
	"github.com/waaghals/sim-something/ecs"
	"github.com/waaghals/sim-something/ecs/component"
)

// PollSearchesSystem checks every in-flight search once without blocking and
// moves finished agents to HasPath or Unreachable.
type PollSearchesSystem struct {
	nav *Navigation
}

func NewPollSearchesSystem(nav *Navigation) *PollSearchesSystem {
	return &PollSearchesSystem{nav: nav}
}

func (s *PollSearchesSystem) Update(w *ecs.World) {
	if s == nil || s.nav == nil || w == nil {
		return
	}
	logger := s.nav.logger

	ecs.ForEach(w, component.NavigationComponent.Kind(), func(e ecs.Entity, nav *component.Navigation) {
		if nav.Search == nil {
			return
		}
		res, done := nav.Search.Poll()
		if !done {
			return
		}
		nav.Search = nil

		if nav.SearchGeneration != nav.Generation {
			logger.Debug("navigation: stale result discarded", "entity", e, "generation", nav.SearchGeneration, "current", nav.Generation)
			w.Events().PushNavigation(ecs.NavigationEvent{Entity: e, Kind: ecs.NavigationEventStale})
			return
		}

		if res.Found {
			nav.Path = res.Path
			nav.Cost = res.Cost
			nav.State = component.NavHasPath
			w.Events().PushNavigation(ecs.NavigationEvent{Entity: e, Kind: ecs.NavigationEventPathFound})
			return
		}

		logger.Info("navigation: destination unreachable", "entity", e, "destination", nav.Destination)
		nav.State = component.NavUnreachable
		nav.Path = nil
		stopAgent(w, e)
		w.Events().PushNavigation(ecs.NavigationEvent{Entity: e, Kind: ecs.NavigationEventUnreachable})
	})
}

// stopAgent drops every steering intent of e and brings it to rest.
func stopAgent(w *ecs.World, e ecs.Entity) {
	ecs.Remove(w, e, component.FollowPathComponent.Kind())
	ecs.Remove(w, e, component.SeekComponent.Kind())
	if b, ok := ecs.Get(w, e, component.BoidComponent.Kind()); ok {
		b.Velocity = cp.Vector{}
		b.Acceleration = cp.Vector{}
	}
}
