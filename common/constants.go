package common

// Movement costs on the nav-mesh. Integers keep the A* priority queue free of
// floating point; 140/100 approximates sqrt(2).
const (
	StraightCost uint32 = 100
	DiagonalCost uint32 = 140
)

const (
	// TileSize is the edge length of one tile in world units.
	TileSize = 16.0
	// MapSize bounds both map dimensions.
	MapSize = 255
)
