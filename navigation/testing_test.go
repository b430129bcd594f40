package navigation

import (
	"strings"
	"testing"
)

// gridFromRows builds a grid where rows[0] is y=0.
func gridFromRows(rows ...string) *TileGrid {
	g, err := ParseTileMap(strings.NewReader(strings.Join(rows, "\n")), 0)
	if err != nil {
		panic(err)
	}
	return g
}

func openGrid(w, h uint32) *TileGrid {
	return NewTileGrid(w, h, TileFloor)
}

func pathCost(t testing.TB, g Graph, path []Cell) (uint32, bool) {
	t.Helper()
	var total uint32
	for i := 1; i < len(path); i++ {
		found := false
		for _, mv := range g.Neighbors(path[i-1]) {
			if mv.Destination == path[i] {
				total += mv.Cost
				found = true
				break
			}
		}
		if !found {
			return 0, false
		}
	}
	return total, true
}
