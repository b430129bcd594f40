package levels

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/waaghals/sim-something/navigation"
)

//go:embed *.txt
var LevelsFS embed.FS

// Dir is where maps are looked up on disk before falling back to the embedded copies.
const Dir = "levels"

// LoadMap reads and parses a plain-text map.
func LoadMap(name string, maxSize uint32) (*navigation.TileGrid, error) {
	data, err := ReadMap(name)
	if err != nil {
		return nil, err
	}
	grid, err := navigation.ParseTileMap(bytes.NewReader(data), maxSize)
	if err != nil {
		return nil, fmt.Errorf("levels: parse %s: %w", name, err)
	}
	return grid, nil
}

// ReadMap returns the raw bytes of a map, disk first.
func ReadMap(name string) ([]byte, error) {
	clean := cleanLevelPath(name)
	if data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	data, err := fs.ReadFile(LevelsFS, clean)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	return data, nil
}

// Names lists the embedded maps.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

func cleanLevelPath(path string) string {
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, Dir+"/"); ok {
		return after
	}
	return s
}
