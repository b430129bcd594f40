package system

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/waaghals/sim-something/ecs"
	"github.com/waaghals/sim-something/ecs/component"
)

// AgentParams describe a freshly spawned agent.
type AgentParams struct {
	MaxSpeed     float64
	MaxForce     float64
	InitialSpeed float64
}

func DefaultAgentParams() AgentParams {
	return AgentParams{MaxSpeed: 1, MaxForce: 0.5, InitialSpeed: 0.5}
}

// SpawnSystem creates agents requested since the last tick and sends each
// one toward a scripted destination.
type SpawnSystem struct {
	nav     *Navigation
	script  *DestinationScript
	params  *AgentParams
	rng     *rand.Rand
	logger  *slog.Logger
	pending []cp.Vector
}

func NewSpawnSystem(nav *Navigation, script *DestinationScript, params *AgentParams, seed uint64, logger *slog.Logger) *SpawnSystem {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SpawnSystem{
		nav:    nav,
		script: script,
		params: params,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		logger: logger,
	}
}

// Request queues an agent to be spawned at pos on the next update.
func (s *SpawnSystem) Request(pos cp.Vector) {
	s.pending = append(s.pending, pos)
}

// RequestRandom queues n agents on random walkable tiles.
func (s *SpawnSystem) RequestRandom(n int) {
	cells := walkableCells(s.nav.Grid())
	if len(cells) == 0 {
		return
	}
	for i := 0; i < n; i++ {
		c := cells[s.rng.IntN(len(cells))]
		s.Request(s.nav.geometry.GridToWorld(c))
	}
}

func (s *SpawnSystem) Update(w *ecs.World) {
	if s == nil || w == nil || len(s.pending) == 0 {
		return
	}
	pending := s.pending
	s.pending = nil
	for _, pos := range pending {
		if _, err := s.Spawn(w, pos); err != nil {
			s.logger.Error("spawn: agent", "pos", pos, "err", err)
		}
	}
}

// Spawn creates one agent at pos with a random Dna seed and heading, and
// submits its first destination when a script is configured.
func (s *SpawnSystem) Spawn(w *ecs.World, pos cp.Vector) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	seed := s.rng.Uint64()
	heading := cp.ForAngle(s.rng.Float64() * 2 * math.Pi)

	p := DefaultAgentParams()
	if s.params != nil {
		p = *s.params
	}

	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y}); err != nil {
		return e, fmt.Errorf("spawn: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.BoidComponent.Kind(), &component.Boid{
		Velocity: heading.Mult(p.InitialSpeed),
		MaxSpeed: p.MaxSpeed,
		MaxForce: p.MaxForce,
	}); err != nil {
		return e, fmt.Errorf("spawn: add boid: %w", err)
	}
	if err := ecs.Add(w, e, component.DnaComponent.Kind(), &component.Dna{Seed: seed}); err != nil {
		return e, fmt.Errorf("spawn: add dna: %w", err)
	}
	if err := ecs.Add(w, e, component.NavigationComponent.Kind(), &component.Navigation{}); err != nil {
		return e, fmt.Errorf("spawn: add navigation: %w", err)
	}

	if s.script == nil {
		return e, nil
	}
	dest, err := s.script.Pick(seed, s.nav.Grid())
	if err != nil {
		s.logger.Debug("spawn: no destination", "entity", e, "err", err)
		return e, nil
	}
	return e, s.nav.SubmitDestination(w, e, dest)
}

// Pending returns how many spawns wait for the next update.
func (s *SpawnSystem) Pending() int {
	return len(s.pending)
}
