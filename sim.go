package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/waaghals/sim-something/ecs"
	"github.com/waaghals/sim-something/ecs/system"
	"github.com/waaghals/sim-something/levels"
	"github.com/waaghals/sim-something/navigation"
	"github.com/waaghals/sim-something/prefabs"
)

// Simulation wires a world, its navigation state and the per-tick systems.
// It is driven from a single goroutine: the ebiten loop or the headless runner.
type Simulation struct {
	Spec      *prefabs.SimSpec
	World     *ecs.World
	Nav       *system.Navigation
	Script    *system.DestinationScript
	Spawn     *system.SpawnSystem
	Wander    *system.WanderSystem
	Telemetry *system.TelemetrySystem

	steering system.SteeringParams
	agent    system.AgentParams
	logger   *slog.Logger
}

// NewSimulation builds a simulation from spec. mapOverride, when set, replaces spec.Map.
func NewSimulation(ctx context.Context, spec *prefabs.SimSpec, mapOverride string, logger *slog.Logger) (*Simulation, error) {
	if mapOverride != "" {
		spec.Map = mapOverride
	}

	grid, err := levels.LoadMap(spec.Map, spec.MapSize)
	if err != nil {
		return nil, err
	}

	boid, err := prefabs.LoadBoidSpec(spec.Actors.Prefab)
	if err != nil {
		return nil, err
	}

	script, err := system.LoadDestinationScript(spec.Actors.DestinationScript)
	if err != nil {
		return nil, err
	}

	solver := navigation.NewSolver(
		navigation.NewPool(spec.Navigation.Workers),
		navigation.WithBudget(spec.Navigation.SearchBudget()),
		navigation.WithTieBreak(*spec.Navigation.TieBreaker),
	)
	nav := system.NewNavigation(grid, navigation.NewGeometry(spec.TileSize), solver, logger)

	if spec.Navigation.PrebuildMesh {
		if err := nav.Mesh().Prebuild(ctx); err != nil {
			return nil, fmt.Errorf("sim: prebuild mesh: %w", err)
		}
		logger.Info("navigation: mesh prebuilt", "cells", nav.Mesh().Explored(), "edges", nav.Mesh().Edges())
	}

	s := &Simulation{
		Spec:   spec,
		World:  ecs.NewWorld(),
		Nav:    nav,
		Script: script,
		agent: system.AgentParams{
			MaxSpeed:     boid.MaxSpeed,
			MaxForce:     boid.MaxForce,
			InitialSpeed: boid.InitialSpeed,
		},
		logger: logger,
	}
	s.applySteering(spec.Steering)

	s.Spawn = system.NewSpawnSystem(nav, script, &s.agent, spec.Seed, logger)
	s.Wander = system.NewWanderSystem(nav, script, spec.Actors.IdleTicks, logger)
	s.Telemetry = system.NewTelemetrySystem(nav, logger, uint64(spec.TickRate)*5)

	for _, sys := range []ecs.System{
		s.Spawn,
		s.Wander,
		system.NewScheduleSearchesSystem(nav),
		system.NewPollSearchesSystem(nav),
		system.NewTranslatePathsSystem(nav, &s.steering),
		system.NewFollowPathSystem(&s.steering),
		system.NewSeekSystem(),
		system.NewIntegrateSystem(),
		s.Telemetry,
	} {
		s.World.AddSystem(sys)
	}

	s.Spawn.RequestRandom(spec.Actors.Count)
	logger.Info("sim: ready", "map", spec.Map, "agents", spec.Actors.Count, "workers", spec.Navigation.Workers)
	return s, nil
}

// Step advances the simulation by one tick.
func (s *Simulation) Step() {
	s.World.Update()
}

// Close waits for searches still running.
func (s *Simulation) Close() {
	s.Nav.Wait()
}

func (s *Simulation) applySteering(spec prefabs.SteeringSpec) {
	s.steering = system.SteeringParams{
		PathWidth:       spec.PathWidth,
		Lookahead:       spec.Lookahead,
		TargetAhead:     spec.TargetAhead,
		ArrivalRadius:   spec.ArrivalRadius,
		ArriveTolerance: spec.ArriveTolerance,
	}
}
