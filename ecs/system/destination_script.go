package system

import (
	"errors"
	"fmt"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/waaghals/sim-something/navigation"
	"github.com/waaghals/sim-something/prefabs"
)

// ErrNoDestination is returned when the script leaves destination undefined.
var ErrNoDestination = errors.New("system: script picked no destination")

// DestinationScript runs a tengo script that picks a destination tile.
//
// The script sees the globals seed, width, height and walkable(x, y) and must
// set the global destination to an [x, y] array, or leave it undefined.
type DestinationScript struct {
	mu       sync.Mutex
	path     string
	compiled *tengo.Compiled
}

// LoadDestinationScript compiles the named script from prefabs/scripts.
func LoadDestinationScript(name string) (*DestinationScript, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("system: load destination script %s: %w", name, err)
	}
	ds := &DestinationScript{path: name}
	if err := ds.Reload(src); err != nil {
		return nil, err
	}
	return ds, nil
}

// NewDestinationScript compiles src directly.
func NewDestinationScript(src []byte) (*DestinationScript, error) {
	ds := &DestinationScript{}
	if err := ds.Reload(src); err != nil {
		return nil, err
	}
	return ds, nil
}

// Path returns the script name it was loaded from, if any.
func (d *DestinationScript) Path() string {
	return d.path
}

// Reload recompiles the script. On error the previous script stays active.
func (d *DestinationScript) Reload(src []byte) error {
	script := tengo.NewScript(src)
	// Placeholders so the compiler knows the names; Pick sets the real values.
	vars := []struct {
		name  string
		value any
	}{
		{"seed", 0},
		{"width", 0},
		{"height", 0},
		{"walkable", &tengo.UserFunction{Name: "walkable", Value: func(args ...tengo.Object) (tengo.Object, error) {
			return tengo.FalseValue, nil
		}}},
	}
	for _, v := range vars {
		if err := script.Add(v.name, v.value); err != nil {
			return fmt.Errorf("system: destination script var %s: %w", v.name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return fmt.Errorf("system: compile destination script: %w", err)
	}

	d.mu.Lock()
	d.compiled = compiled
	d.mu.Unlock()
	return nil
}

// Pick runs the script for one agent.
func (d *DestinationScript) Pick(seed uint64, grid navigation.WalkabilityGrid) (navigation.Cell, error) {
	d.mu.Lock()
	base := d.compiled
	d.mu.Unlock()
	if base == nil {
		return navigation.Cell{}, ErrNoDestination
	}

	c := base.Clone()
	width, height := grid.Size()
	if err := c.Set("seed", int64(seed>>1)); err != nil {
		return navigation.Cell{}, err
	}
	if err := c.Set("width", int64(width)); err != nil {
		return navigation.Cell{}, err
	}
	if err := c.Set("height", int64(height)); err != nil {
		return navigation.Cell{}, err
	}
	if err := c.Set("walkable", walkableFunc(grid)); err != nil {
		return navigation.Cell{}, err
	}
	if err := c.Run(); err != nil {
		return navigation.Cell{}, fmt.Errorf("system: run destination script: %w", err)
	}

	if !c.IsDefined("destination") {
		return navigation.Cell{}, ErrNoDestination
	}
	xy := c.Get("destination").Array()
	if len(xy) != 2 {
		return navigation.Cell{}, fmt.Errorf("system: destination must be [x, y], got %v", xy)
	}
	x, okX := xy[0].(int64)
	y, okY := xy[1].(int64)
	if !okX || !okY || x < 0 || y < 0 {
		return navigation.Cell{}, fmt.Errorf("system: destination must be non-negative ints, got %v", xy)
	}
	return navigation.Cell{X: uint32(x), Y: uint32(y)}, nil
}

func walkableFunc(grid navigation.WalkabilityGrid) *tengo.UserFunction {
	return &tengo.UserFunction{Name: "walkable", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		x, okX := tengo.ToInt64(args[0])
		y, okY := tengo.ToInt64(args[1])
		if !okX || !okY || x < 0 || y < 0 {
			return tengo.FalseValue, nil
		}
		if grid.IsWalkable(navigation.Cell{X: uint32(x), Y: uint32(y)}) {
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	}}
}
