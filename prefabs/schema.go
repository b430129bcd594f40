package prefabs

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

const simSchemaFile = "sim.schema.json"

var (
	simSchemaOnce sync.Once
	simSchema     *jsonschema.Schema
	simSchemaErr  error
)

func loadSimSchema() (*jsonschema.Schema, error) {
	simSchemaOnce.Do(func() {
		raw, err := PrefabsFS.ReadFile(simSchemaFile)
		if err != nil {
			simSchemaErr = fmt.Errorf("prefabs: read %s: %w", simSchemaFile, err)
			return
		}
		simSchema, simSchemaErr = jsonschema.CompileString(simSchemaFile, string(raw))
	})
	return simSchema, simSchemaErr
}

// ValidateSimSpec checks a YAML document against the simulation schema.
func ValidateSimSpec(data []byte) error {
	schema, err := loadSimSchema()
	if err != nil {
		return err
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}
	if doc == nil {
		doc = map[string]any{}
	}

	// The validator wants JSON-shaped values; round-trip through encoding/json.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}
	return nil
}
