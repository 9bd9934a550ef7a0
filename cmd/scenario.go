package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/tandem-sim/tandem-sim/sim"
)

// LoadScenario reads a scenario YAML file on top of the reference scenario:
// sections or fields missing from the file keep their default values.
// Unknown fields are rejected so that typos cause errors instead of silent defaults.
func LoadScenario(path string) (sim.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sim.Config{}, fmt.Errorf("reading scenario file: %w", err)
	}
	return parseScenario(data)
}

func parseScenario(data []byte) (sim.Config, error) {
	cfg := sim.DefaultConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return sim.Config{}, fmt.Errorf("parsing scenario YAML: %w", err)
	}
	return cfg, nil
}
