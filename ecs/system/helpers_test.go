package system

import (
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/require"
	"github.com/waaghals/sim-something/ecs"
	"github.com/waaghals/sim-something/ecs/component"
	"github.com/waaghals/sim-something/navigation"
)

const tile = 16.0

type harness struct {
	w      *ecs.World
	nav    *Navigation
	params *SteeringParams
}

func newHarness(t *testing.T, grid navigation.WalkabilityGrid) *harness {
	t.Helper()
	params := DefaultSteeringParams()
	h := &harness{
		w:      ecs.NewWorld(),
		nav:    NewNavigation(grid, navigation.NewGeometry(tile), navigation.NewSolver(navigation.NewPool(8), navigation.WithBudget(time.Minute)), nil),
		params: &params,
	}
	t.Cleanup(h.nav.Wait)
	return h
}

func (h *harness) agentAt(t *testing.T, cell navigation.Cell) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(h.w)
	pos := h.nav.Geometry().GridToWorld(cell)
	require.NoError(t, ecs.Add(h.w, e, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y}))
	require.NoError(t, ecs.Add(h.w, e, component.BoidComponent.Kind(), &component.Boid{MaxSpeed: 1, MaxForce: 0.5}))
	require.NoError(t, ecs.Add(h.w, e, component.DnaComponent.Kind(), &component.Dna{Seed: 7}))
	require.NoError(t, ecs.Add(h.w, e, component.NavigationComponent.Kind(), &component.Navigation{}))
	return e
}

func (h *harness) navOf(t *testing.T, e ecs.Entity) *component.Navigation {
	t.Helper()
	nav, ok := ecs.Get(h.w, e, component.NavigationComponent.Kind())
	require.True(t, ok)
	return nav
}

// resolve runs one schedule and poll pass, waiting for the searches in between.
func (h *harness) resolve() {
	NewScheduleSearchesSystem(h.nav).Update(h.w)
	h.nav.Wait()
	NewPollSearchesSystem(h.nav).Update(h.w)
}

func (h *harness) events() []ecs.NavigationEventKind {
	var kinds []ecs.NavigationEventKind
	for _, evt := range h.w.Events().Drain() {
		if nav, ok := evt.AsNavigation(); ok {
			kinds = append(kinds, nav.Kind)
		}
	}
	return kinds
}

func openGrid(w, h uint32) *navigation.TileGrid {
	return navigation.NewTileGrid(w, h, navigation.TileFloor)
}

func vec(x, y float64) cp.Vector { return cp.Vector{X: x, Y: y} }
