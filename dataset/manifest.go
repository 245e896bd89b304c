package dataset

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Manifest describes what a job directory contains.
type Manifest struct {
	RunID     string    `yaml:"run_id"`
	CreatedAt time.Time `yaml:"created_at"`

	Basis     string  `yaml:"basis"`
	Distance  int     `yaml:"distance"`
	Rounds    int     `yaml:"rounds"`
	ErrorRate float64 `yaml:"error_rate"`

	Shots  int    `yaml:"shots,omitempty"`
	Format string `yaml:"format"`
	Sweep  string `yaml:"sweep,omitempty"`
	Seed   uint64 `yaml:"seed,omitempty"`

	Qubits       int `yaml:"qubits"`
	Measurements int `yaml:"measurements"`
	Detectors    int `yaml:"detectors"`
	Observables  int `yaml:"observables"`

	Files []string `yaml:"files"`
}

// WriteManifest stores m as YAML at path.
func WriteManifest(path string, m Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("WriteManifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("WriteManifest: %w", err)
	}
	return nil
}

// ReadManifest loads a manifest written by WriteManifest.
func ReadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("ReadManifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("ReadManifest %s: %w", path, err)
	}
	return m, nil
}
