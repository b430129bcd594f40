package navigation

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Tile symbols of the plain-text map format. Only floor is walkable.
const (
	TileFloor     byte = '.'
	TileWall      byte = 'W'
	TileStairUp   byte = 'U'
	TileStairDown byte = 'D'
	TileVoid      byte = ' '
)

// TileGrid is a fixed rectangle of tiles. Every in-bounds cell has a tile;
// rows shorter than the widest row are padded with TileVoid when loading.
type TileGrid struct {
	width  uint32
	height uint32
	tiles  []byte
}

// NewTileGrid returns a width×height grid filled with tile.
func NewTileGrid(width, height uint32, tile byte) *TileGrid {
	tiles := make([]byte, int(width)*int(height))
	for i := range tiles {
		tiles[i] = tile
	}
	return &TileGrid{width: width, height: height, tiles: tiles}
}

// ParseTileMap reads one row per line, first line is y=0. maxSize bounds both dimensions.
func ParseTileMap(r io.Reader, maxSize uint32) (*TileGrid, error) {
	var rows []string
	width := 0
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		rows = append(rows, line)
		if len(line) > width {
			width = len(line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("navigation: read map: %w", err)
	}
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 || width == 0 {
		return nil, ErrEmptyMap
	}
	if maxSize > 0 && (uint32(width) > maxSize || uint32(len(rows)) > maxSize) {
		return nil, fmt.Errorf("%w: %dx%d > %d", ErrMapTooLarge, width, len(rows), maxSize)
	}

	g := NewTileGrid(uint32(width), uint32(len(rows)), TileVoid)
	for y, line := range rows {
		copy(g.tiles[y*width:], line)
	}
	return g, nil
}

func (g *TileGrid) Size() (uint32, uint32) {
	return g.width, g.height
}

func (g *TileGrid) Contains(c Cell) bool {
	return g != nil && c.X < g.width && c.Y < g.height
}

func (g *TileGrid) IsWalkable(c Cell) bool {
	return g.Contains(c) && g.tiles[g.index(c)] == TileFloor
}

// Tile returns the symbol at c.
func (g *TileGrid) Tile(c Cell) (byte, bool) {
	if !g.Contains(c) {
		return 0, false
	}
	return g.tiles[g.index(c)], true
}

// SetTile overwrites the symbol at c. Meant for building grids before any
// search runs; a mesh never re-reads a cell it has explored.
func (g *TileGrid) SetTile(c Cell, tile byte) error {
	if !g.Contains(c) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	g.tiles[g.index(c)] = tile
	return nil
}

// WalkableCells lists every floor cell in row-major order.
func (g *TileGrid) WalkableCells() []Cell {
	out := make([]Cell, 0, len(g.tiles)/2)
	for y := uint32(0); y < g.height; y++ {
		for x := uint32(0); x < g.width; x++ {
			c := Cell{X: x, Y: y}
			if g.IsWalkable(c) {
				out = append(out, c)
			}
		}
	}
	return out
}

func (g *TileGrid) index(c Cell) int {
	return int(c.Y)*int(g.width) + int(c.X)
}
