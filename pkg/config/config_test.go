// Copyright 2020 PingCAP, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	c := Init()
	require.NoError(t, c.Validate())
	assert.Equal(t, "FatSchemaTestDatabase", c.Database)
	assert.Equal(t, Workload{Tables: 10, ColumnsPerTable: 5, IndexesPerTable: 3, Rows: 1}, c.Workload)
	assert.Equal(t, 10000, c.Words.MaxRetries)
	assert.True(t, c.Compat.InclusiveIndexCap)
	assert.True(t, c.Compat.LegacyTrailingBatch)

	c.Workload.Tables = 99
	assert.Equal(t, 10, Init().Workload.Tables)
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fatschema.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
database = "Perf"
seed = 42

[workload]
tables = 3
rows = 1000

[compat]
legacy-trailing-batch = false
`), 0644))

	c := Init()
	require.NoError(t, c.Load(path))
	assert.Equal(t, "Perf", c.Database)
	assert.Equal(t, int64(42), c.Seed)
	assert.Equal(t, 3, c.Workload.Tables)
	assert.Equal(t, 5, c.Workload.ColumnsPerTable)
	assert.Equal(t, 1000, c.Workload.Rows)
	assert.True(t, c.Compat.InclusiveIndexCap)
	assert.False(t, c.Compat.LegacyTrailingBatch)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fatschema.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
workload:
  columns-per-table: 8
output:
  dir: /tmp/scripts
  viewer: code
log:
  level: debug
`), 0644))

	c := Init()
	require.NoError(t, c.Load(path))
	assert.Equal(t, 8, c.Workload.ColumnsPerTable)
	assert.Equal(t, 10, c.Workload.Tables)
	assert.Equal(t, "/tmp/scripts", c.Output.Dir)
	assert.Equal(t, "code", c.Output.Viewer)
	assert.Equal(t, "debug", c.Log.Level)
	require.NoError(t, c.Validate())
}

func TestLoadErrors(t *testing.T) {
	c := Init()
	assert.Error(t, c.Load(filepath.Join(t.TempDir(), "missing.toml")))

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[workload\n"), 0644))
	assert.Error(t, c.Load(path))
}

func TestValidate(t *testing.T) {
	c := Init()
	c.Database = ""
	c.Workload.Tables = 0
	c.Workload.IndexesPerTable = -1
	c.Log.Level = "loud"

	err := c.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsNotValid(err))
	for _, field := range []string{"database", "workload.tables", "workload.indexes-per-table", "log.level"} {
		assert.Contains(t, err.Error(), field)
	}
	assert.NotContains(t, err.Error(), "workload.rows")
}

func TestValidateDatabaseName(t *testing.T) {
	for _, name := range []string{"My DB", "Db]; DROP", "1Db", "Db-1"} {
		c := Init()
		c.Database = name
		err := c.Validate()
		require.Error(t, err, name)
		assert.True(t, errors.IsNotValid(err))
		assert.Contains(t, err.Error(), "database")
	}
	for _, name := range []string{"Perf", "perf_2", "FatSchemaTestDatabase"} {
		c := Init()
		c.Database = name
		assert.NoError(t, c.Validate(), name)
	}
}

func TestOptions(t *testing.T) {
	c := Init()
	c.Compat.InclusiveIndexCap = false
	opts := c.Options()
	assert.Equal(t, c.Database, opts.Database)
	assert.Equal(t, 10, opts.NumTables)
	assert.Equal(t, 5, opts.NumColumns)
	assert.Equal(t, 3, opts.NumIndexes)
	assert.Equal(t, 1, opts.NumRows)
	assert.False(t, opts.InclusiveIndexCap)
	assert.True(t, opts.LegacyTrailingBatch)
}

func TestEncodeRoundTrip(t *testing.T) {
	c := Init()
	c.Seed = 7
	c.Output.Viewer = "notepad"

	var buf bytes.Buffer
	require.NoError(t, c.Encode(&buf))
	assert.Contains(t, buf.String(), "[workload]")

	path := filepath.Join(t.TempDir(), "out.toml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	loaded := Init()
	require.NoError(t, loaded.Load(path))
	assert.Equal(t, c, loaded)
}
