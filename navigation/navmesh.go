package navigation

import (
	"context"
	"sync"
)

// Move is one outgoing nav-mesh edge.
type Move struct {
	Destination Cell
	Cost        uint32
}

// Graph is what a search walks.
type Graph interface {
	Neighbors(c Cell) []Move
}

// NavMesh is a lazily populated adjacency cache over a WalkabilityGrid.
// A missing key means "not explored yet". Once explored, a cell's edges never
// change for the lifetime of the mesh; swap the whole mesh to pick up new terrain.
type NavMesh struct {
	grid WalkabilityGrid

	mu    sync.Mutex
	edges map[Cell][]Move
	count int
}

func NewNavMesh(grid WalkabilityGrid) *NavMesh {
	return &NavMesh{
		grid:  grid,
		edges: make(map[Cell][]Move),
	}
}

// Grid returns the grid the mesh explores.
func (m *NavMesh) Grid() WalkabilityGrid {
	return m.grid
}

// Neighbors returns the walkable neighbours of c with their costs. The first
// call for a walkable cell scans the grid and caches the result; lookup and
// insert share one critical section so racing searches never see a partial set.
// Non-walkable or out-of-bounds cells yield nothing and are not cached.
// The returned slice must not be modified.
func (m *NavMesh) Neighbors(c Cell) []Move {
	m.mu.Lock()
	defer m.mu.Unlock()

	if moves, ok := m.edges[c]; ok {
		return moves
	}
	if !m.grid.IsWalkable(c) {
		return nil
	}
	moves := scanNeighbors(m.grid, c)
	m.edges[c] = moves
	m.count += len(moves)
	return moves
}

// Cached returns the cached edges of c without exploring.
func (m *NavMesh) Cached(c Cell) ([]Move, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	moves, ok := m.edges[c]
	return moves, ok
}

// Prebuild explores every walkable cell up front.
func (m *NavMesh) Prebuild(ctx context.Context) error {
	w, h := m.grid.Size()
	for y := uint32(0); y < h; y++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for x := uint32(0); x < w; x++ {
			m.Neighbors(Cell{X: x, Y: y})
		}
	}
	return nil
}

// Explored returns how many cells have cached edge sets.
func (m *NavMesh) Explored() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.edges)
}

// Edges returns the total number of cached edges.
func (m *NavMesh) Edges() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.count
}

func scanNeighbors(g WalkabilityGrid, c Cell) []Move {
	moves := make([]Move, 0, 8)
	for _, n := range NeighborPositions(g, c) {
		if !n.OK || !g.IsWalkable(n.Cell) {
			continue
		}
		moves = append(moves, Move{Destination: n.Cell, Cost: n.Cost})
	}
	return moves
}
