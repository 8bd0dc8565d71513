package manifest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	m := New("tpch", 1)

	assert.NotEmpty(t, m.RunID)
	assert.Equal(t, "tpch", m.Benchmark)
	assert.Equal(t, float64(1), m.ScaleFactor)
	assert.False(t, m.StartedAt.IsZero())
	assert.True(t, m.FinishedAt.IsZero())

	// Run IDs are unique per run.
	assert.NotEqual(t, m.RunID, New("tpch", 1).RunID)
}

func TestWriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.yaml")

	m := New("tpcds", 0.1)
	m.Add("store_sales", 2880404, "tpcds/parquet/store_sales/store_sales.parquet")
	m.Add("item", 18000, "tpcds/parquet/item/item.parquet")
	require.NoError(t, m.Write(path))
	assert.False(t, m.FinishedAt.IsZero())

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, m.RunID, got.RunID)
	assert.Equal(t, "tpcds", got.Benchmark)
	assert.Equal(t, 0.1, got.ScaleFactor)
	require.Len(t, got.Tables, 2)
	assert.Equal(t, "store_sales", got.Tables[0].Name)
	assert.Equal(t, int64(2880404), got.Tables[0].Rows)
	assert.Equal(t, "tpcds/parquet/item/item.parquet", got.Tables[1].ParquetFile)
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read manifest")
}
