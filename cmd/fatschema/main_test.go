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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	color.NoColor = true
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "generate",
		"--out", dir, "--tables", "2", "--columns", "3", "--indexes", "1", "--rows", "6",
		"--seed", "11", "--database", "CliDb", "--log-level", "warn")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Scripts generated")
	assert.Contains(t, out, "Tables: 2")
	assert.Contains(t, out, "Rows:   24")
	assert.Contains(t, out, "Random: 11")

	schemas, err := filepath.Glob(filepath.Join(dir, "fatschema-schema-*.sql"))
	require.NoError(t, err)
	require.Len(t, schemas, 1)
	seeds, err := filepath.Glob(filepath.Join(dir, "fatschema-seed-*.sql"))
	require.NoError(t, err)
	require.Len(t, seeds, 1)

	schema, err := os.ReadFile(schemas[0])
	require.NoError(t, err)
	assert.Contains(t, string(schema), "CREATE DATABASE CliDb")
	assert.Equal(t, 2, strings.Count(string(schema), "CREATE TABLE "))
}

func TestGenerateExactFlags(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "generate", "--out", dir, "--tables", "1", "--columns", "4", "--rows", "10",
		"--exact-trailing-batch", "--exact-index-cap", "--seed", "3", "--log-level", "error")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Rows:   10")
}

func TestGenerateInvalidFlags(t *testing.T) {
	_, err := execute(t, "generate", "--out", t.TempDir(), "--tables", "0", "--log-level", "error")
	assert.Error(t, err)

	dir := t.TempDir()
	_, err = execute(t, "generate", "--out", dir, "--database", "My DB", "--log-level", "error")
	assert.Error(t, err)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestConfigCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fatschema.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workload:\n  tables: 4\n"), 0644))

	out, err := execute(t, "config", "--config", path, "--rows", "500", "--exact-index-cap")
	require.NoError(t, err, out)
	assert.Contains(t, out, "tables = 4")
	assert.Contains(t, out, "rows = 500")
	assert.Contains(t, out, "inclusive-index-cap = false")
	assert.Contains(t, out, "legacy-trailing-batch = true")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Git Commit Hash:")
}
