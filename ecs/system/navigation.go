package system

import (
	"fmt"
	"log/slog"

	"github.com/waaghals/sim-something/ecs"
	"github.com/waaghals/sim-something/ecs/component"
	"github.com/waaghals/sim-something/navigation"
)

// Navigation owns the shared navigation state of one world: the nav-mesh,
// the pending request queue and the solver. Only the tick loop touches it.
type Navigation struct {
	mesh     *navigation.NavMesh
	geometry navigation.Geometry
	queue    *navigation.RequestQueue[ecs.Entity]
	solver   *navigation.Solver
	logger   *slog.Logger
}

func NewNavigation(grid navigation.WalkabilityGrid, geometry navigation.Geometry, solver *navigation.Solver, logger *slog.Logger) *Navigation {
	if solver == nil {
		solver = navigation.NewSolver(nil)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Navigation{
		mesh:     navigation.NewNavMesh(grid),
		geometry: geometry,
		queue:    navigation.NewRequestQueue[ecs.Entity](),
		solver:   solver,
		logger:   logger,
	}
}

func (n *Navigation) Mesh() *navigation.NavMesh {
	return n.mesh
}

func (n *Navigation) Grid() navigation.WalkabilityGrid {
	return n.mesh.Grid()
}

func (n *Navigation) Geometry() navigation.Geometry {
	return n.geometry
}

func (n *Navigation) Solver() *navigation.Solver {
	return n.solver
}

// Pending returns how many requests wait for a search slot.
func (n *Navigation) Pending() int {
	return n.queue.Len()
}

// ReplaceGrid swaps in a fresh mesh over grid. Searches already running keep
// the mesh they started with; paths already found are left alone.
func (n *Navigation) ReplaceGrid(grid navigation.WalkabilityGrid) {
	n.mesh = navigation.NewNavMesh(grid)
}

// Wait blocks until every running search has finished. Used at shutdown and in tests.
func (n *Navigation) Wait() {
	n.solver.Wait()
}

// SubmitDestination asks for e to walk to dest, superseding any earlier
// destination. The agent keeps following its current path, if any, until the
// new search resolves.
func (n *Navigation) SubmitDestination(w *ecs.World, e ecs.Entity, dest navigation.Cell) error {
	if !ecs.IsAlive(w, e) {
		return fmt.Errorf("navigation: submit %s: %w", e, component.ErrEntityNotAlive)
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return fmt.Errorf("navigation: submit %s: no transform", e)
	}
	nav, ok := ecs.Get(w, e, component.NavigationComponent.Kind())
	if !ok {
		nav = &component.Navigation{}
		if err := ecs.Add(w, e, component.NavigationComponent.Kind(), nav); err != nil {
			return fmt.Errorf("navigation: submit %s: %w", e, err)
		}
	}

	var seed uint64
	if dna, ok := ecs.Get(w, e, component.DnaComponent.Kind()); ok {
		seed = dna.Seed
	}

	nav.Generation++
	nav.Destination = dest
	nav.Path = nil
	nav.IdleTicks = 0
	req := navigation.Request{
		From:       n.geometry.WorldToGrid(t.Vec()),
		To:         dest,
		Seed:       seed,
		Generation: nav.Generation,
	}

	grid := n.mesh.Grid()
	if !grid.Contains(req.From) || !grid.Contains(req.To) {
		n.queue.Cancel(e)
		nav.Search = navigation.Resolved(req, navigation.Result{})
		nav.SearchGeneration = nav.Generation
		nav.State = component.NavSearching
		return nil
	}

	n.queue.Submit(e, req)
	nav.State = component.NavRequested
	return nil
}
