package prefabs

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

const SimSpecFile = "sim.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// SimSpec is the simulation configuration.
type SimSpec struct {
	Map      string  `yaml:"map"`
	TileSize float64 `yaml:"tile_size"`
	MapSize  uint32  `yaml:"map_size"`
	TickRate int     `yaml:"tick_rate"`
	Seed     uint64  `yaml:"seed"`

	Navigation NavigationSpec `yaml:"navigation"`
	Steering   SteeringSpec   `yaml:"steering"`
	Actors     ActorsSpec     `yaml:"actors"`
}

type NavigationSpec struct {
	SearchBudgetMs float64 `yaml:"search_budget_ms"`
	Workers        int     `yaml:"workers"`
	// TieBreaker is the maximum per-edge perturbation; 0 disables it.
	TieBreaker   *uint32 `yaml:"tie_breaker"`
	PrebuildMesh bool    `yaml:"prebuild_mesh"`
}

// SearchBudget returns the per-tick dispatch budget.
func (n NavigationSpec) SearchBudget() time.Duration {
	return time.Duration(n.SearchBudgetMs * float64(time.Millisecond))
}

type SteeringSpec struct {
	PathWidth       float64 `yaml:"path_width"`
	Lookahead       float64 `yaml:"lookahead"`
	TargetAhead     float64 `yaml:"target_ahead"`
	ArrivalRadius   float64 `yaml:"arrival_radius"`
	ArriveTolerance float64 `yaml:"arrive_tolerance"`
}

type ActorsSpec struct {
	Count             int    `yaml:"count"`
	Prefab            string `yaml:"prefab"`
	IdleTicks         int    `yaml:"idle_ticks"`
	DestinationScript string `yaml:"destination_script"`
}

// LoadSimSpec loads, validates and defaults a simulation spec.
func LoadSimSpec(filename string) (*SimSpec, error) {
	data, err := Load(filename)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	spec, err := ParseSimSpec(data)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return spec, nil
}

// ParseSimSpec validates data against the embedded schema and applies defaults.
func ParseSimSpec(data []byte) (*SimSpec, error) {
	if err := ValidateSimSpec(data); err != nil {
		return nil, err
	}
	var spec SimSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	spec.applyDefaults()
	return &spec, nil
}

func (s *SimSpec) applyDefaults() {
	if s.Map == "" {
		s.Map = "floor1.txt"
	}
	if s.TileSize <= 0 {
		s.TileSize = 16
	}
	if s.MapSize == 0 {
		s.MapSize = 255
	}
	if s.TickRate <= 0 {
		s.TickRate = 60
	}
	if s.Navigation.SearchBudgetMs <= 0 {
		s.Navigation.SearchBudgetMs = 1
	}
	if s.Navigation.Workers <= 0 {
		s.Navigation.Workers = 4
	}
	if s.Navigation.TieBreaker == nil {
		tb := uint32(10)
		s.Navigation.TieBreaker = &tb
	}
	if s.Steering.PathWidth <= 0 {
		s.Steering.PathWidth = 2
	}
	if s.Steering.Lookahead <= 0 {
		s.Steering.Lookahead = 4
	}
	if s.Steering.TargetAhead < 0 {
		s.Steering.TargetAhead = 0
	}
	if s.Steering.ArriveTolerance <= 0 {
		s.Steering.ArriveTolerance = 1
	}
	if s.Actors.Prefab == "" {
		s.Actors.Prefab = "agent.yaml"
	}
	if s.Actors.DestinationScript == "" {
		s.Actors.DestinationScript = "destination.tengo"
	}
}
