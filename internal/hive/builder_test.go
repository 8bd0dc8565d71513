package hive

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tpcgen/internal/dataset"
)

func TestBuildCreateTable(t *testing.T) {
	tests := []struct {
		name     string
		table    string
		cols     []Column
		external bool
		location string
		want     string
	}{
		{
			name:  "managed_table",
			table: "t1",
			cols:  []Column{{Name: "a", Type: "INT"}, {Name: "b", Type: "STRING"}},
			want:  "CREATE  TABLE IF NOT EXISTS t1 (\n  a INT,\n  b STRING\n)\nSTORED AS PARQUET;",
		},
		{
			name:     "external_with_location",
			table:    "t1",
			cols:     []Column{{Name: "a", Type: "INT"}},
			external: true,
			location: "/data",
			want:     "CREATE EXTERNAL TABLE IF NOT EXISTS t1 (\n  a INT\n)\nSTORED AS PARQUET\nLOCATION '/data/t1';",
		},
		{
			name:     "external_without_location",
			table:    "t1",
			cols:     []Column{{Name: "a", Type: "INT"}},
			external: true,
			want:     "CREATE EXTERNAL TABLE IF NOT EXISTS t1 (\n  a INT\n)\nSTORED AS PARQUET;",
		},
		{
			name:     "location_ignored_for_managed_table",
			table:    "t1",
			cols:     []Column{{Name: "a", Type: "INT"}},
			location: "/data",
			want:     "CREATE  TABLE IF NOT EXISTS t1 (\n  a INT\n)\nSTORED AS PARQUET;",
		},
		{
			name:  "decimal_precision_preserved",
			table: "lineitem",
			cols:  []Column{{Name: "l_quantity", Type: "DECIMAL(15,2)"}},
			want:  "CREATE  TABLE IF NOT EXISTS lineitem (\n  l_quantity DECIMAL(15,2)\n)\nSTORED AS PARQUET;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildCreateTable(tt.table, tt.cols, tt.external, tt.location)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildCreateTablePreservesColumnOrder(t *testing.T) {
	cols := []Column{
		{Name: "zeta", Type: "INT"},
		{Name: "alpha", Type: "STRING"},
		{Name: "mid", Type: "DATE"},
	}
	got := BuildCreateTable("t", cols, false, "")

	zi := strings.Index(got, "zeta INT")
	ai := strings.Index(got, "alpha STRING")
	mi := strings.Index(got, "mid DATE")
	require.NotEqual(t, -1, zi)
	require.NotEqual(t, -1, ai)
	require.NotEqual(t, -1, mi)
	assert.Less(t, zi, ai)
	assert.Less(t, ai, mi)
}

func TestTableBlock(t *testing.T) {
	got := TableBlock("region", 5, []Column{
		{Name: "r_regionkey", Type: "INT"},
		{Name: "r_name", Type: "STRING"},
	}, false, "")

	assert.True(t, strings.HasPrefix(got, "-- Table: region (5 rows)\n"))
	assert.Contains(t, got, "CREATE  TABLE IF NOT EXISTS region (")
	assert.Contains(t, got, "r_regionkey INT")
	assert.Contains(t, got, "r_name STRING")
	assert.True(t, strings.HasSuffix(got, ";\n\n"))
}

func TestFileHeader(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	got := FileHeader(dataset.TPCH, 1, now)
	assert.True(t, strings.HasPrefix(got, "-- Hive DDL for TPC-H SF1\n"))
	assert.Contains(t, got, "-- Generated: 2026-03-14 09:30:00\n")
	assert.Contains(t, got, "CREATE DATABASE IF NOT EXISTS tpch_sf1;\nUSE tpch_sf1;\n\n")

	got = FileHeader(dataset.TPCDS, 0.1, now)
	assert.True(t, strings.HasPrefix(got, "-- Hive DDL for TPC-DS SF0.1\n"))
	assert.Contains(t, got, "CREATE DATABASE IF NOT EXISTS tpcds_sf1;")
}

func TestFormatScale(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{name: "one", input: 1, want: "1"},
		{name: "fraction", input: 0.1, want: "0.1"},
		{name: "hundred", input: 100, want: "100"},
		{name: "ten_point_five", input: 10.5, want: "10.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatScale(tt.input))
		})
	}
}
