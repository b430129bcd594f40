package navigation

import (
	"strings"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTileMap(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		max     uint32
		wantW   uint32
		wantH   uint32
		wantErr error
	}{
		{name: "rectangle", input: "...\n.W.\n...", wantW: 3, wantH: 3},
		{name: "ragged_rows_padded", input: "....\n.\n..", wantW: 4, wantH: 3},
		{name: "trailing_blank_lines", input: "..\n..\n\n\n", wantW: 2, wantH: 2},
		{name: "crlf", input: "..\r\n..\r\n", wantW: 2, wantH: 2},
		{name: "empty", input: "", wantErr: ErrEmptyMap},
		{name: "blank_only", input: "\n\n", wantErr: ErrEmptyMap},
		{name: "too_wide", input: "......", max: 5, wantErr: ErrMapTooLarge},
		{name: "too_tall", input: ".\n.\n.", max: 2, wantErr: ErrMapTooLarge},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := ParseTileMap(strings.NewReader(tc.input), tc.max)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			w, h := g.Size()
			assert.Equal(t, tc.wantW, w)
			assert.Equal(t, tc.wantH, h)
		})
	}
}

func TestTileGridWalkability(t *testing.T) {
	g := gridFromRows(
		".WUD",
		".",
	)

	assert.True(t, g.IsWalkable(Cell{0, 0}))
	assert.False(t, g.IsWalkable(Cell{1, 0}), "wall")
	assert.False(t, g.IsWalkable(Cell{2, 0}), "stairs up")
	assert.False(t, g.IsWalkable(Cell{3, 0}), "stairs down")
	assert.True(t, g.IsWalkable(Cell{0, 1}))

	tile, ok := g.Tile(Cell{3, 1})
	require.True(t, ok, "padded cells still have tile data")
	assert.Equal(t, TileVoid, tile)
	assert.False(t, g.IsWalkable(Cell{3, 1}))

	assert.False(t, g.Contains(Cell{4, 0}))
	assert.False(t, g.IsWalkable(Cell{0, 2}))

	require.NoError(t, g.SetTile(Cell{1, 0}, TileFloor))
	assert.True(t, g.IsWalkable(Cell{1, 0}))
	require.ErrorIs(t, g.SetTile(Cell{9, 9}, TileFloor), ErrOutOfBounds)

	assert.ElementsMatch(t, []Cell{{0, 0}, {1, 0}, {0, 1}}, g.WalkableCells())
}

func TestNeighborPositionsOrder(t *testing.T) {
	g := openGrid(3, 3)
	got := NeighborPositions(g, Cell{1, 1})

	want := []Cell{
		{1, 2}, {1, 0}, {0, 1}, {2, 1},
		{0, 2}, {2, 2}, {0, 0}, {2, 0},
	}
	for i, n := range got {
		require.True(t, n.OK, "slot %d", i)
		assert.Equal(t, want[i], n.Cell, "slot %d", i)
		assert.Equal(t, i >= 4, n.Diagonal, "slot %d", i)
	}

	corner := NeighborPositions(g, Cell{0, 0})
	var present int
	for _, n := range corner {
		if n.OK {
			present++
		}
	}
	assert.Equal(t, 3, present)
}

func TestGeometry(t *testing.T) {
	geo := NewGeometry(16)

	assert.Equal(t, cp.Vector{X: 8, Y: 8}, geo.GridToWorld(Cell{0, 0}))
	assert.Equal(t, cp.Vector{X: 40, Y: 24}, geo.GridToWorld(Cell{2, 1}))

	assert.Equal(t, Cell{2, 1}, geo.WorldToGrid(cp.Vector{X: 47.9, Y: 16}))
	assert.Equal(t, Cell{0, 0}, geo.WorldToGrid(cp.Vector{X: -5, Y: -100}))

	for _, c := range []Cell{{0, 0}, {3, 7}, {254, 254}} {
		assert.Equal(t, c, geo.WorldToGrid(geo.GridToWorld(c)))
	}

	assert.Equal(t, 16.0, NewGeometry(0).TileSize)
}
