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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"
	"github.com/juju/errors"
	"github.com/mohae/deepcopy"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/pingcap/fatschema/pkg/namegen"
	"github.com/pingcap/fatschema/pkg/script"
)

// Workload struct
type Workload struct {
	Tables          int `toml:"tables" yaml:"tables"`
	ColumnsPerTable int `toml:"columns-per-table" yaml:"columns-per-table"`
	IndexesPerTable int `toml:"indexes-per-table" yaml:"indexes-per-table"`
	Rows            int `toml:"rows" yaml:"rows"`
}

// Words points at the word lists, empty paths mean the embedded lists
type Words struct {
	Adjectives string `toml:"adjectives" yaml:"adjectives"`
	Animals    string `toml:"animals" yaml:"animals"`
	MaxRetries int    `toml:"max-retries" yaml:"max-retries"`
}

// Output struct
type Output struct {
	Dir        string `toml:"dir" yaml:"dir"`
	SchemaFile string `toml:"schema-file" yaml:"schema-file"`
	SeedFile   string `toml:"seed-file" yaml:"seed-file"`
	Viewer     string `toml:"viewer" yaml:"viewer"`
}

// Compat toggles behaviors kept for compatibility with existing scripts
type Compat struct {
	InclusiveIndexCap   bool `toml:"inclusive-index-cap" yaml:"inclusive-index-cap"`
	LegacyTrailingBatch bool `toml:"legacy-trailing-batch" yaml:"legacy-trailing-batch"`
}

// Log struct
type Log struct {
	Level string `toml:"level" yaml:"level"`
	File  string `toml:"file" yaml:"file"`
}

// Config struct
type Config struct {
	Database string   `toml:"database" yaml:"database"`
	Seed     int64    `toml:"seed" yaml:"seed"`
	Workload Workload `toml:"workload" yaml:"workload"`
	Words    Words    `toml:"words" yaml:"words"`
	Output   Output   `toml:"output" yaml:"output"`
	Compat   Compat   `toml:"compat" yaml:"compat"`
	Log      Log      `toml:"log" yaml:"log"`
}

var initConfig = Config{
	Database: script.DefaultDatabase,
	Workload: Workload{
		Tables:          10,
		ColumnsPerTable: 5,
		IndexesPerTable: 3,
		Rows:            1,
	},
	Words: Words{
		MaxRetries: namegen.DefaultMaxRetries,
	},
	Output: Output{
		SchemaFile: script.DefaultSchemaFile,
		SeedFile:   script.DefaultSeedFile,
	},
	Compat: Compat{
		InclusiveIndexCap:   true,
		LegacyTrailingBatch: true,
	},
	Log: Log{
		Level: "info",
	},
}

// Init get default Config
func Init() *Config {
	return initConfig.Copy()
}

// Load config from file, YAML if the extension says so and TOML otherwise
func (c *Config) Load(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return errors.Trace(err)
		}
		return errors.Annotatef(yaml.Unmarshal(data, c), "decode %s", path)
	default:
		_, err := toml.DecodeFile(path, c)
		return errors.Annotatef(err, "decode %s", path)
	}
}

// Copy Config struct
func (c *Config) Copy() *Config {
	return deepcopy.Copy(c).(*Config)
}

// Validate reports every invalid field at once
func (c *Config) Validate() error {
	var result *multierror.Error
	check := func(ok bool, format string, args ...interface{}) {
		if !ok {
			result = multierror.Append(result, fmt.Errorf(format, args...))
		}
	}
	check(namegen.IsIdentifier(c.Database), "database %q must be a letter followed by letters, digits or underscores", c.Database)
	check(c.Workload.Tables >= 1, "workload.tables must be at least 1, got %d", c.Workload.Tables)
	check(c.Workload.ColumnsPerTable >= 1, "workload.columns-per-table must be at least 1, got %d", c.Workload.ColumnsPerTable)
	check(c.Workload.IndexesPerTable >= 0, "workload.indexes-per-table must not be negative, got %d", c.Workload.IndexesPerTable)
	check(c.Workload.Rows >= 0, "workload.rows must not be negative, got %d", c.Workload.Rows)
	check(c.Words.MaxRetries >= 1, "words.max-retries must be at least 1, got %d", c.Words.MaxRetries)
	var level zapcore.Level
	check(level.UnmarshalText([]byte(c.Log.Level)) == nil, "log.level %q is unknown", c.Log.Level)

	if err := result.ErrorOrNil(); err != nil {
		return errors.NewNotValid(err, "config")
	}
	return nil
}

// Options returns the workload shape the assembler runs with
func (c *Config) Options() script.Options {
	return script.Options{
		Database:            c.Database,
		NumTables:           c.Workload.Tables,
		NumColumns:          c.Workload.ColumnsPerTable,
		NumIndexes:          c.Workload.IndexesPerTable,
		NumRows:             c.Workload.Rows,
		InclusiveIndexCap:   c.Compat.InclusiveIndexCap,
		LegacyTrailingBatch: c.Compat.LegacyTrailingBatch,
	}
}

// Encode writes the config as TOML
func (c *Config) Encode(w io.Writer) error {
	return errors.Trace(toml.NewEncoder(w).Encode(c))
}
