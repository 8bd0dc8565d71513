// Package duck drives the embedded DuckDB engine: it installs the
// benchmark generator extensions, runs them, and reads back the
// generated tables for export.
package duck

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	_ "github.com/duckdb/duckdb-go/v2"
)

// Column is one column of a generated table, carrying the type name
// DuckDB reports for it (e.g. VARCHAR(25), DECIMAL(15,2)).
type Column struct {
	Name string
	Type string
}

// Client owns the DuckDB connection for one generation run.
type Client struct {
	db *sql.DB
}

// Open opens a DuckDB database at path. An empty path opens an
// in-memory database.
func Open(path string) (*Client, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	return &Client{db: db}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.db.Close()
}

// Version returns the DuckDB version string.
func (c *Client) Version(ctx context.Context) (string, error) {
	var version string
	if err := c.db.QueryRowContext(ctx, "SELECT version()").Scan(&version); err != nil {
		return "", fmt.Errorf("query version: %w", err)
	}
	return version, nil
}

// InstallExtension installs and loads a DuckDB extension. Safe to call
// when the extension is already installed.
func (c *Client) InstallExtension(ctx context.Context, name string) error {
	if err := ValidateIdentifier(name); err != nil {
		return fmt.Errorf("invalid extension name: %w", err)
	}
	stmt := fmt.Sprintf("INSTALL %s; LOAD %s;", name, name)
	if _, err := c.db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("extension setup (%s): %w", name, err)
	}
	return nil
}

// CallGenerator invokes a dataset generator procedure (dbgen, dsdgen)
// at the given scale factor. The generated tables land in the current
// database.
func (c *Client) CallGenerator(ctx context.Context, proc string, scaleFactor float64) error {
	stmt, err := generatorCall(proc, scaleFactor)
	if err != nil {
		return err
	}
	if _, err := c.db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("%s(sf=%s): %w", proc, formatScaleFactor(scaleFactor), err)
	}
	return nil
}

// Tables lists the tables in the current database, in DuckDB's
// reporting order.
func (c *Client) Tables(ctx context.Context) ([]string, error) {
	rows, err := c.db.QueryContext(ctx, "SHOW TABLES")
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan table name: %w", err)
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

// RowCount returns the number of rows in a table.
func (c *Client) RowCount(ctx context.Context, table string) (int64, error) {
	stmt, err := rowCountQuery(table)
	if err != nil {
		return 0, err
	}
	var n int64
	if err := c.db.QueryRowContext(ctx, stmt).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

// Describe returns a table's columns in definition order, with the type
// names DuckDB reports.
func (c *Client) Describe(ctx context.Context, table string) ([]Column, error) {
	stmt, err := describeQuery(table)
	if err != nil {
		return nil, err
	}
	rows, err := c.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("describe %s: %w", table, err)
	}
	defer func() { _ = rows.Close() }()

	var cols []Column
	for rows.Next() {
		var col Column
		if err := rows.Scan(&col.Name, &col.Type); err != nil {
			return nil, fmt.Errorf("scan column: %w", err)
		}
		cols = append(cols, col)
	}
	return cols, rows.Err()
}

// ExportParquet writes the full table contents to a single Parquet file
// at path.
func (c *Client) ExportParquet(ctx context.Context, table, path string) error {
	stmt, err := copyStatement(table, path)
	if err != nil {
		return err
	}
	if _, err := c.db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("export %s: %w", table, err)
	}
	return nil
}

// generatorCall builds the CALL statement for a generator procedure.
func generatorCall(proc string, scaleFactor float64) (string, error) {
	if err := ValidateIdentifier(proc); err != nil {
		return "", fmt.Errorf("invalid procedure name: %w", err)
	}
	return fmt.Sprintf("CALL %s(sf = %s)", proc, formatScaleFactor(scaleFactor)), nil
}

// rowCountQuery builds the count query for a table.
func rowCountQuery(table string) (string, error) {
	if err := ValidateIdentifier(table); err != nil {
		return "", fmt.Errorf("invalid table name: %w", err)
	}
	return fmt.Sprintf("SELECT count(*) FROM %s", QuoteIdentifier(table)), nil
}

// describeQuery builds the column-metadata query for a table. DESCRIBE
// reports columns in definition order.
func describeQuery(table string) (string, error) {
	if err := ValidateIdentifier(table); err != nil {
		return "", fmt.Errorf("invalid table name: %w", err)
	}
	return fmt.Sprintf("SELECT column_name, column_type FROM (DESCRIBE %s)", QuoteIdentifier(table)), nil
}

// copyStatement builds the COPY ... TO statement exporting a table to
// Parquet.
func copyStatement(table, path string) (string, error) {
	if err := ValidateIdentifier(table); err != nil {
		return "", fmt.Errorf("invalid table name: %w", err)
	}
	if path == "" {
		return "", fmt.Errorf("output path is required")
	}
	return fmt.Sprintf("COPY %s TO %s (FORMAT PARQUET)", QuoteIdentifier(table), QuoteLiteral(path)), nil
}

// formatScaleFactor renders a scale factor without a trailing decimal
// point, so sf=1.0 appears as 1 and sf=0.1 as 0.1.
func formatScaleFactor(sf float64) string {
	return strconv.FormatFloat(sf, 'f', -1, 64)
}
