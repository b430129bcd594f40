package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// EntityBuildSpec is a prefab: a name plus raw per-component settings.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type BoidComponentSpec struct {
	MaxSpeed     float64 `yaml:"max_speed"`
	MaxForce     float64 `yaml:"max_force"`
	InitialSpeed float64 `yaml:"initial_speed"`
}

// LoadBoidSpec reads the boid settings of an agent prefab.
func LoadBoidSpec(filename string) (BoidComponentSpec, error) {
	spec, err := LoadEntityBuildSpec(filename)
	if err != nil {
		return BoidComponentSpec{}, err
	}
	boid, err := DecodeComponentSpec[BoidComponentSpec](spec.Components["boid"])
	if err != nil {
		return BoidComponentSpec{}, fmt.Errorf("prefabs: %s: decode boid: %w", filename, err)
	}
	if boid.MaxSpeed <= 0 || boid.MaxForce <= 0 || boid.InitialSpeed < 0 {
		return BoidComponentSpec{}, fmt.Errorf("%w: %s: boid speeds must be positive", ErrInvalidSpec, filename)
	}
	return boid, nil
}
