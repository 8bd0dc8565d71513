// Package dataset describes the benchmark variants the generator can produce.
package dataset

import "fmt"

// Spec describes one benchmark variant: which DuckDB extension generates
// it, how the generator procedure is called, and how the Hive side names
// the resulting database.
type Spec struct {
	// Name identifies the benchmark ("tpch", "tpcds"). It doubles as the
	// default output directory and appears in all produced file names.
	Name string

	// Display is the human-readable benchmark name used in comments and
	// log output ("TPC-H", "TPC-DS").
	Display string

	// Extension is the DuckDB extension that provides the generator.
	Extension string

	// Procedure is the table function that populates the tables,
	// invoked as CALL <Procedure>(sf = <n>).
	Procedure string

	// Database is the Hive database the DDL file creates and uses.
	Database string

	// ExternalTables reports whether this variant can emit EXTERNAL
	// Hive tables with a LOCATION clause.
	ExternalTables bool
}

// TPCH is the TPC-H decision-support benchmark, generated by dbgen.
// It is the external-table-capable variant.
var TPCH = Spec{
	Name:           "tpch",
	Display:        "TPC-H",
	Extension:      "tpch",
	Procedure:      "dbgen",
	Database:       "tpch_sf1",
	ExternalTables: true,
}

// TPCDS is the TPC-DS decision-support benchmark, generated by dsdgen.
// It always produces managed tables.
var TPCDS = Spec{
	Name:      "tpcds",
	Display:   "TPC-DS",
	Extension: "tpcds",
	Procedure: "dsdgen",
	Database:  "tpcds_sf1",
}

// ByName returns the spec for a benchmark name.
func ByName(name string) (Spec, error) {
	switch name {
	case TPCH.Name:
		return TPCH, nil
	case TPCDS.Name:
		return TPCDS, nil
	}
	return Spec{}, fmt.Errorf("unknown benchmark %q", name)
}

// DDLFileName returns the name of the Hive DDL file for this benchmark.
// The sf1 token is part of the historical file name and does not track
// the actual scale factor.
func (s Spec) DDLFileName() string {
	return s.Name + "_sf1_hive.hql"
}

// LoadScriptName returns the name of the generated loader shell script.
func (s Spec) LoadScriptName() string {
	return "load_" + s.Name + "_data.sh"
}

// StagingDir returns the HDFS staging directory the loader script uses.
func (s Spec) StagingDir() string {
	return "/tmp/" + s.Name + "_load"
}

// ScratchDir returns the scratch directory holding the temporary DuckDB
// database during a run.
func (s Spec) ScratchDir() string {
	return "temp_" + s.Name
}

// ScratchDBFile returns the temporary DuckDB database file name.
func (s Spec) ScratchDBFile() string {
	return s.Name + "_sf1.db"
}
