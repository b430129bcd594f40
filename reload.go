package main

import (
	"fmt"
	"path/filepath"

	"github.com/waaghals/sim-something/levels"
	"github.com/waaghals/sim-something/navigation"
	"github.com/waaghals/sim-something/prefabs"
)

// Reload applies an edited file. Map edits replace the nav-mesh, spec edits
// re-apply the steering tunables, search budget, tie-breaker and idle timeout, script edits recompile the
// destination script. It must run on the simulation goroutine.
func (s *Simulation) Reload(path string) error {
	name := filepath.Base(path)
	switch prefabs.Classify(path) {
	case prefabs.FileMap:
		if name != filepath.Base(s.Spec.Map) {
			return nil
		}
		grid, err := levels.LoadMap(s.Spec.Map, s.Spec.MapSize)
		if err != nil {
			return err
		}
		s.Nav.ReplaceGrid(grid)
		s.logger.Info("reload: map", "map", s.Spec.Map)

	case prefabs.FileSpec:
		if name == filepath.Base(s.Spec.Actors.Prefab) {
			boid, err := prefabs.LoadBoidSpec(s.Spec.Actors.Prefab)
			if err != nil {
				return err
			}
			s.agent.MaxSpeed, s.agent.MaxForce, s.agent.InitialSpeed = boid.MaxSpeed, boid.MaxForce, boid.InitialSpeed
			s.logger.Info("reload: agent prefab", "file", name)
			return nil
		}
		if name != prefabs.SimSpecFile {
			return nil
		}
		spec, err := prefabs.LoadSimSpec(prefabs.SimSpecFile)
		if err != nil {
			return err
		}
		s.applySteering(spec.Steering)
		s.Wander.IdleTicks = spec.Actors.IdleTicks
		// Worker count and mesh prebuild only take effect on restart.
		s.Nav.Solver().Apply(
			navigation.WithBudget(spec.Navigation.SearchBudget()),
			navigation.WithTieBreak(*spec.Navigation.TieBreaker),
		)
		s.Spec.Steering = spec.Steering
		s.Spec.Actors.IdleTicks = spec.Actors.IdleTicks
		s.Spec.Navigation.SearchBudgetMs = spec.Navigation.SearchBudgetMs
		s.Spec.Navigation.TieBreaker = spec.Navigation.TieBreaker
		s.logger.Info("reload: sim spec", "file", name)

	case prefabs.FileScript:
		if name != filepath.Base(s.Spec.Actors.DestinationScript) {
			return nil
		}
		src, err := prefabs.LoadScript(s.Spec.Actors.DestinationScript)
		if err != nil {
			return fmt.Errorf("reload: %w", err)
		}
		if err := s.Script.Reload(src); err != nil {
			return err
		}
		s.logger.Info("reload: destination script", "file", name)
	}
	return nil
}

// drainReloads applies every pending watcher event without blocking.
func (s *Simulation) drainReloads(w *prefabs.Watcher) {
	if w == nil {
		return
	}
	for {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return
			}
			if err := s.Reload(path); err != nil {
				s.logger.Error("reload failed", "file", path, "err", err)
			}
		case err, ok := <-w.Errors:
			if ok {
				s.logger.Error("watcher error", "err", err)
			}
			return
		default:
			return
		}
	}
}
