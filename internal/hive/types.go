// Package hive translates DuckDB schemas into the Hive dialect: it maps
// DuckDB type names onto Hive's type vocabulary and emits the CREATE
// TABLE statements and loader script consumed by the Hive CLI.
package hive

import "strings"

// typeMapping maps upper-cased DuckDB base type names to Hive types.
// Hive has no bounded string type and no TIME type, so those collapse
// to STRING.
var typeMapping = map[string]string{
	"INTEGER":   "INT",
	"INT":       "INT",
	"BIGINT":    "BIGINT",
	"SMALLINT":  "SMALLINT",
	"TINYINT":   "TINYINT",
	"DECIMAL":   "DECIMAL",
	"NUMERIC":   "DECIMAL",
	"REAL":      "FLOAT",
	"FLOAT":     "FLOAT",
	"DOUBLE":    "DOUBLE",
	"VARCHAR":   "STRING",
	"CHAR":      "STRING",
	"TEXT":      "STRING",
	"STRING":    "STRING",
	"BOOLEAN":   "BOOLEAN",
	"DATE":      "DATE",
	"TIMESTAMP": "TIMESTAMP",
	"TIME":      "STRING",
	"BLOB":      "BINARY",
	"BINARY":    "BINARY",
}

// MapType converts a DuckDB column type name to its Hive equivalent.
// DECIMAL precision and scale are preserved verbatim; VARCHAR and CHAR
// lengths are dropped because Hive strings are unbounded. Unrecognized
// types fall back to STRING rather than failing the run, so the
// function is total over all inputs.
func MapType(duckType string) string {
	t := strings.ToUpper(duckType)

	if strings.Contains(t, "DECIMAL") && strings.Contains(t, "(") {
		return t
	}
	if strings.Contains(t, "VARCHAR") && strings.Contains(t, "(") {
		return "STRING"
	}
	if strings.Contains(t, "CHAR") && strings.Contains(t, "(") {
		return "STRING"
	}

	if mapped, ok := typeMapping[t]; ok {
		return mapped
	}
	return "STRING"
}
