package hive

import (
	"fmt"
	"strings"
	"text/template"

	"tpcgen/internal/dataset"
)

// loadScriptTmpl is the loader shell script. It takes the data
// directory as its only argument, creates the tables from the DDL file,
// then stages each Parquet file through HDFS and loads it into the
// matching Hive table.
var loadScriptTmpl = template.Must(template.New("load").Parse(`#!/bin/bash

# Loads the exported {{.Display}} Parquet files into Hive.

DATA_DIR="$1"

if [ -z "$DATA_DIR" ]; then
    echo "usage: ./{{.ScriptName}} /path/to/{{.Name}}/data"
    exit 1
fi

echo "Creating Hive tables..."
hive -f "$DATA_DIR/{{.DDLFile}}"

echo "Loading data into Hive tables..."
for table_dir in "$DATA_DIR/parquet"/*; do
    table_name=$(basename "$table_dir")
    parquet_file="$table_dir/$table_name.parquet"
    echo "Loading $table_name..."
    hdfs dfs -mkdir -p {{.StagingDir}}
    hdfs dfs -put -f "$parquet_file" {{.StagingDir}}/
    hive -e "LOAD DATA INPATH '{{.StagingDir}}/$table_name.parquet' OVERWRITE INTO TABLE {{.Database}}.$table_name;"
done

echo "Cleaning up staging files..."
hdfs dfs -rm -r -skipTrash {{.StagingDir}}

echo "Done."
`))

// LoadScript renders the loader shell script for one benchmark.
func LoadScript(ds dataset.Spec) (string, error) {
	var b strings.Builder
	err := loadScriptTmpl.Execute(&b, struct {
		Name       string
		Display    string
		Database   string
		DDLFile    string
		ScriptName string
		StagingDir string
	}{
		Name:       ds.Name,
		Display:    ds.Display,
		Database:   ds.Database,
		DDLFile:    ds.DDLFileName(),
		ScriptName: ds.LoadScriptName(),
		StagingDir: ds.StagingDir(),
	})
	if err != nil {
		return "", fmt.Errorf("render load script: %w", err)
	}
	return b.String(), nil
}
