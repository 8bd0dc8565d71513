// Package export orchestrates a generation run: it drives the engine,
// writes the Parquet files, and emits the Hive DDL, loader script, and
// run manifest.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"tpcgen/internal/dataset"
	"tpcgen/internal/duck"
	"tpcgen/internal/hive"
	"tpcgen/internal/manifest"
)

// Engine is the subset of the DuckDB client the exporter drives.
type Engine interface {
	InstallExtension(ctx context.Context, name string) error
	CallGenerator(ctx context.Context, proc string, scaleFactor float64) error
	Tables(ctx context.Context) ([]string, error)
	RowCount(ctx context.Context, table string) (int64, error)
	Describe(ctx context.Context, table string) ([]duck.Column, error)
	ExportParquet(ctx context.Context, table, path string) error
}

// Config holds the parameters of one generation run.
type Config struct {
	OutputDir   string  // root of all produced files
	ScaleFactor float64 // benchmark scale factor
	External    bool    // emit EXTERNAL tables
	Location    string  // storage location for external tables
}

// Exporter runs one benchmark generation end to end.
type Exporter struct {
	dataset dataset.Spec
	cfg     Config
	engine  Engine
	logger  *slog.Logger
}

// New creates an Exporter.
func New(ds dataset.Spec, cfg Config, eng Engine, logger *slog.Logger) *Exporter {
	return &Exporter{dataset: ds, cfg: cfg, engine: eng, logger: logger}
}

// Run generates the dataset and writes every output file. Tables are
// processed sequentially in engine order, fail-fast: the first error
// aborts the run and already written files are left in place.
func (e *Exporter) Run(ctx context.Context) error {
	start := time.Now()

	parquetDir := filepath.Join(e.cfg.OutputDir, "parquet")
	if err := os.MkdirAll(parquetDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	e.logger.Info("generating dataset",
		"benchmark", e.dataset.Name, "scale_factor", e.cfg.ScaleFactor)
	if err := e.engine.InstallExtension(ctx, e.dataset.Extension); err != nil {
		return err
	}
	if err := e.engine.CallGenerator(ctx, e.dataset.Procedure, e.cfg.ScaleFactor); err != nil {
		return err
	}

	tables, err := e.engine.Tables(ctx)
	if err != nil {
		return err
	}

	ddlPath := filepath.Join(e.cfg.OutputDir, e.dataset.DDLFileName())
	f, err := os.Create(ddlPath)
	if err != nil {
		return fmt.Errorf("create DDL file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteString(hive.FileHeader(e.dataset, e.cfg.ScaleFactor, time.Now())); err != nil {
		return fmt.Errorf("write DDL header: %w", err)
	}

	run := manifest.New(e.dataset.Name, e.cfg.ScaleFactor)
	for _, table := range tables {
		rows, err := e.engine.RowCount(ctx, table)
		if err != nil {
			return err
		}
		e.logger.Info("exporting table", "table", table, "rows", rows)

		tableDir := filepath.Join(parquetDir, table)
		if err := os.MkdirAll(tableDir, 0o755); err != nil {
			return fmt.Errorf("create table dir: %w", err)
		}
		parquetPath := filepath.Join(tableDir, table+".parquet")
		if err := e.engine.ExportParquet(ctx, table, parquetPath); err != nil {
			return err
		}

		cols, err := e.engine.Describe(ctx, table)
		if err != nil {
			return err
		}
		hiveCols := make([]hive.Column, 0, len(cols))
		for _, c := range cols {
			hiveCols = append(hiveCols, hive.Column{Name: c.Name, Type: hive.MapType(c.Type)})
		}

		block := hive.TableBlock(table, rows, hiveCols, e.cfg.External, e.cfg.Location)
		if _, err := f.WriteString(block); err != nil {
			return fmt.Errorf("write DDL for %s: %w", table, err)
		}

		run.Add(table, rows, parquetPath)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close DDL file: %w", err)
	}

	script, err := hive.LoadScript(e.dataset)
	if err != nil {
		return err
	}
	scriptPath := filepath.Join(e.cfg.OutputDir, e.dataset.LoadScriptName())
	if err := os.WriteFile(scriptPath, []byte(script), 0o755); err != nil {
		return fmt.Errorf("write load script: %w", err)
	}

	if err := run.Write(filepath.Join(e.cfg.OutputDir, "manifest.yaml")); err != nil {
		return err
	}

	e.logger.Info("run complete",
		"tables", len(tables),
		"duration", time.Since(start).Round(time.Millisecond),
		"output_dir", e.cfg.OutputDir)
	return nil
}

// Generate runs a full generation for one benchmark: it opens a scratch
// DuckDB database, runs the exporter against it, and removes the
// scratch directory on success. On failure the scratch files are left
// behind for inspection.
func Generate(ctx context.Context, ds dataset.Spec, cfg Config, logger *slog.Logger) error {
	scratchDir := ds.ScratchDir()
	if err := os.MkdirAll(scratchDir, 0o755); err != nil {
		return fmt.Errorf("create scratch dir: %w", err)
	}

	client, err := duck.Open(filepath.Join(scratchDir, ds.ScratchDBFile()))
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	version, err := client.Version(ctx)
	if err != nil {
		return err
	}
	logger.Debug("connected to duckdb", "version", version)

	if err := New(ds, cfg, client, logger).Run(ctx); err != nil {
		return err
	}

	if err := client.Close(); err != nil {
		return fmt.Errorf("close duckdb: %w", err)
	}
	if err := os.RemoveAll(scratchDir); err != nil {
		return fmt.Errorf("remove scratch dir: %w", err)
	}
	return nil
}
