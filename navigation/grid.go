package navigation

import (
	"errors"
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/waaghals/sim-something/common"
)

var (
	ErrEmptyMap    = errors.New("navigation: map has no tiles")
	ErrMapTooLarge = errors.New("navigation: map exceeds map size")
	ErrOutOfBounds = errors.New("navigation: cell out of bounds")
)

// Cell is an unsigned tile address; the key of every graph and request structure.
type Cell struct {
	X uint32
	Y uint32
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// WalkabilityGrid is the tile map as seen by the navigation core.
// Contains must hold for every cell that has backing tile data.
type WalkabilityGrid interface {
	Size() (width, height uint32)
	Contains(c Cell) bool
	IsWalkable(c Cell) bool
}

// Neighbor is one slot of a cell's eight-connected neighbourhood.
// OK is false when the slot falls off the map.
type Neighbor struct {
	Cell     Cell
	Cost     uint32
	Diagonal bool
	OK       bool
}

type neighborOffset struct {
	dx, dy   int
	diagonal bool
}

// Order: N, S, W, E, NW, NE, SW, SE. North is +Y.
var neighborOffsets = [8]neighborOffset{
	{dx: 0, dy: 1},
	{dx: 0, dy: -1},
	{dx: -1, dy: 0},
	{dx: 1, dy: 0},
	{dx: -1, dy: 1, diagonal: true},
	{dx: 1, dy: 1, diagonal: true},
	{dx: -1, dy: -1, diagonal: true},
	{dx: 1, dy: -1, diagonal: true},
}

// NeighborPositions returns the eight adjacent slots of c, straight ones first.
func NeighborPositions(g WalkabilityGrid, c Cell) [8]Neighbor {
	var out [8]Neighbor
	for i, off := range neighborOffsets {
		nx := int64(c.X) + int64(off.dx)
		ny := int64(c.Y) + int64(off.dy)
		if nx < 0 || ny < 0 || nx > math.MaxUint32 || ny > math.MaxUint32 {
			continue
		}
		n := Cell{X: uint32(nx), Y: uint32(ny)}
		if !g.Contains(n) {
			continue
		}
		cost := common.StraightCost
		if off.diagonal {
			cost = common.DiagonalCost
		}
		out[i] = Neighbor{Cell: n, Cost: cost, Diagonal: off.diagonal, OK: true}
	}
	return out
}

// Geometry converts between world space and grid space.
type Geometry struct {
	TileSize float64
}

func NewGeometry(tileSize float64) Geometry {
	if tileSize <= 0 {
		tileSize = common.TileSize
	}
	return Geometry{TileSize: tileSize}
}

// WorldToGrid floors p onto the tile grid. Negative coordinates clamp to zero.
func (g Geometry) WorldToGrid(p cp.Vector) Cell {
	return Cell{X: toTile(p.X, g.TileSize), Y: toTile(p.Y, g.TileSize)}
}

// GridToWorld returns the centre of c.
func (g Geometry) GridToWorld(c Cell) cp.Vector {
	half := g.TileSize / 2
	return cp.Vector{
		X: float64(c.X)*g.TileSize + half,
		Y: float64(c.Y)*g.TileSize + half,
	}
}

func toTile(v, size float64) uint32 {
	t := math.Floor(v / size)
	if t <= 0 || math.IsNaN(t) {
		return 0
	}
	if t >= math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(t)
}
