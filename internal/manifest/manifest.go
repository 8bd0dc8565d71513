// Package manifest records what a generation run produced.
package manifest

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Table is one generated table: its row count and where the exported
// Parquet file landed.
type Table struct {
	Name        string `yaml:"name"`
	Rows        int64  `yaml:"rows"`
	ParquetFile string `yaml:"parquet_file"`
}

// Manifest summarizes a generation run.
type Manifest struct {
	RunID       string    `yaml:"run_id"`
	Benchmark   string    `yaml:"benchmark"`
	ScaleFactor float64   `yaml:"scale_factor"`
	StartedAt   time.Time `yaml:"started_at"`
	FinishedAt  time.Time `yaml:"finished_at"`
	Tables      []Table   `yaml:"tables"`
}

// New returns a manifest for a run starting now, with a fresh run ID.
func New(benchmark string, scaleFactor float64) *Manifest {
	return &Manifest{
		RunID:       uuid.NewString(),
		Benchmark:   benchmark,
		ScaleFactor: scaleFactor,
		StartedAt:   time.Now().UTC(),
	}
}

// Add records one generated table.
func (m *Manifest) Add(name string, rows int64, parquetFile string) {
	m.Tables = append(m.Tables, Table{Name: name, Rows: rows, ParquetFile: parquetFile})
}

// Write marks the run finished and writes the manifest as YAML at path.
func (m *Manifest) Write(path string) error {
	m.FinishedAt = time.Now().UTC()
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// Read loads a manifest from path.
func Read(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}
