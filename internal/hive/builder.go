package hive

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"tpcgen/internal/dataset"
)

// Column is one Hive column definition: a name plus an already-mapped
// Hive type.
type Column struct {
	Name string
	Type string
}

// BuildCreateTable returns a CREATE TABLE statement for a
// Parquet-backed Hive table. Columns appear in input order: the Parquet
// files are written in table-definition order and Hive matches them
// positionally on load. When external is true the table is declared
// EXTERNAL, and a LOCATION clause is added if location is non-empty.
func BuildCreateTable(table string, cols []Column, external bool, location string) string {
	tableType := ""
	if external {
		tableType = "EXTERNAL"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "CREATE %s TABLE IF NOT EXISTS %s (\n", tableType, table)

	defs := make([]string, 0, len(cols))
	for _, c := range cols {
		defs = append(defs, fmt.Sprintf("  %s %s", c.Name, c.Type))
	}
	b.WriteString(strings.Join(defs, ",\n"))

	b.WriteString("\n)\nSTORED AS PARQUET")
	if external && location != "" {
		fmt.Fprintf(&b, "\nLOCATION '%s/%s'", location, table)
	}
	b.WriteString(";")

	return b.String()
}

// FileHeader returns the fixed preamble of a DDL file: the benchmark
// comment, the generation timestamp, and the database creation
// statements.
func FileHeader(ds dataset.Spec, scaleFactor float64, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "-- Hive DDL for %s SF%s\n", ds.Display, FormatScale(scaleFactor))
	fmt.Fprintf(&b, "-- Generated: %s\n\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "CREATE DATABASE IF NOT EXISTS %s;\n", ds.Database)
	fmt.Fprintf(&b, "USE %s;\n\n", ds.Database)
	return b.String()
}

// TableBlock returns one DDL block: the row-count comment followed by
// the CREATE TABLE statement and a trailing blank line.
func TableBlock(table string, rows int64, cols []Column, external bool, location string) string {
	return fmt.Sprintf("-- Table: %s (%d rows)\n%s\n\n",
		table, rows, BuildCreateTable(table, cols, external, location))
}

// FormatScale renders a scale factor without a trailing decimal point,
// so 1.0 appears as 1 and 0.1 as 0.1.
func FormatScale(sf float64) string {
	return strconv.FormatFloat(sf, 'f', -1, 64)
}
