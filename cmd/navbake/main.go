// Command navbake loads a map, explores its whole nav-mesh and reports on it.
// With -from and -to it also solves one query and prints the path.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/waaghals/sim-something/levels"
	"github.com/waaghals/sim-something/navigation"
)

func main() {
	mapName := flag.String("map", "floor1.txt", "map file in levels/")
	maxSize := flag.Uint("max", 255, "largest allowed map dimension")
	from := flag.String("from", "", "start cell as x,y")
	to := flag.String("to", "", "goal cell as x,y")
	seed := flag.Uint64("seed", 0, "tie-breaker seed")
	tieBreak := flag.Uint("tiebreak", uint(navigation.DefaultTieBreak), "max tie-breaker perturbation, 0 disables")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	maxDim, err := uint32Flag("max", *maxSize)
	if err != nil {
		logger.Error("navbake", "err", err)
		os.Exit(2)
	}
	tb, err := uint32Flag("tiebreak", *tieBreak)
	if err != nil {
		logger.Error("navbake", "err", err)
		os.Exit(2)
	}
	if err := run(os.Stdout, *mapName, maxDim, *from, *to, *seed, tb); err != nil {
		logger.Error("navbake", "err", err)
		os.Exit(1)
	}
}

// uint32Flag rejects flag values that do not fit the 32-bit cell and cost types.
func uint32Flag(name string, v uint) (uint32, error) {
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("navbake: -%s %d exceeds %d", name, v, uint64(math.MaxUint32))
	}
	return uint32(v), nil
}

func run(out io.Writer, mapName string, maxSize uint32, from, to string, seed uint64, tieBreak uint32) error {
	grid, err := levels.LoadMap(mapName, maxSize)
	if err != nil {
		return err
	}

	mesh := navigation.NewNavMesh(grid)
	start := time.Now()
	if err := mesh.Prebuild(context.Background()); err != nil {
		return err
	}
	w, h := grid.Size()
	fmt.Fprintf(out, "map %s: %dx%d, %d walkable cells, %d edges, built in %s\n",
		mapName, w, h, mesh.Explored(), mesh.Edges(), time.Since(start))

	if from == "" && to == "" {
		return nil
	}
	a, err := parseCell(from)
	if err != nil {
		return fmt.Errorf("navbake: -from: %w", err)
	}
	b, err := parseCell(to)
	if err != nil {
		return fmt.Errorf("navbake: -to: %w", err)
	}

	start = time.Now()
	res := navigation.FindPath(mesh, navigation.Request{From: a, To: b, Seed: seed}, navigation.SearchOptions{TieBreak: tieBreak})
	if !res.Found {
		fmt.Fprintf(out, "%s -> %s: unreachable (%d expanded, %s)\n", a, b, res.Expanded, time.Since(start))
		return nil
	}
	cells := make([]string, len(res.Path))
	for i, c := range res.Path {
		cells[i] = c.String()
	}
	fmt.Fprintf(out, "%s -> %s: cost %d, %d cells, %d expanded, %s\n%s\n",
		a, b, res.Cost, len(res.Path), res.Expanded, time.Since(start), strings.Join(cells, " "))
	return nil
}

func parseCell(s string) (navigation.Cell, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return navigation.Cell{}, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.ParseUint(strings.TrimSpace(xs), 10, 32)
	if err != nil {
		return navigation.Cell{}, err
	}
	y, err := strconv.ParseUint(strings.TrimSpace(ys), 10, 32)
	if err != nil {
		return navigation.Cell{}, err
	}
	return navigation.Cell{X: uint32(x), Y: uint32(y)}, nil
}
