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
	"github.com/juju/errors"
	"github.com/spf13/cobra"

	"github.com/pingcap/fatschema/pkg/config"
	"github.com/pingcap/fatschema/util"
)

const defaultConfigFile = "fatschema.toml"

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return cfg.Encode(cmd.OutOrStdout())
		},
	}
	addWorkloadFlags(cmd)
	return cmd
}

func addWorkloadFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntP("tables", "t", 0, "number of tables")
	fs.Int("columns", 0, "columns per table, including the key column")
	fs.Int("indexes", 0, "nonclustered indexes per table")
	fs.IntP("rows", "r", 0, "rows per table")
	fs.Int64("seed", 0, "random seed, 0 picks one from the clock")
	fs.StringP("out", "o", "", "output directory (default OS temp dir)")
	fs.String("viewer", "", "program that opens the generated scripts")
	fs.String("database", "", "database the scripts recreate")
	fs.String("adjectives", "", "adjective list, one word per line")
	fs.String("animals", "", "animal list, one word per line")
	fs.Bool("exact-index-cap", false, "create at most --indexes indexes instead of --indexes+1")
	fs.Bool("exact-trailing-batch", false, "size the last INSERT batch to the rows actually left")
}

// loadConfig reads the config file and applies the flags the user set
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	fs := cmd.Flags()
	cfg := config.Init()

	path, err := fs.GetString("config")
	if err != nil {
		return nil, errors.Trace(err)
	}
	if path == "" && util.IsFileExist(defaultConfigFile) {
		path = defaultConfigFile
	}
	if path != "" {
		if err := cfg.Load(path); err != nil {
			return nil, errors.Trace(err)
		}
	}

	ints := map[string]*int{
		"tables":  &cfg.Workload.Tables,
		"columns": &cfg.Workload.ColumnsPerTable,
		"indexes": &cfg.Workload.IndexesPerTable,
		"rows":    &cfg.Workload.Rows,
	}
	for name, dst := range ints {
		if !fs.Changed(name) {
			continue
		}
		if *dst, err = fs.GetInt(name); err != nil {
			return nil, errors.Trace(err)
		}
	}

	strs := map[string]*string{
		"out":        &cfg.Output.Dir,
		"viewer":     &cfg.Output.Viewer,
		"database":   &cfg.Database,
		"adjectives": &cfg.Words.Adjectives,
		"animals":    &cfg.Words.Animals,
		"log-level":  &cfg.Log.Level,
		"log-file":   &cfg.Log.File,
	}
	for name, dst := range strs {
		if !fs.Changed(name) {
			continue
		}
		if *dst, err = fs.GetString(name); err != nil {
			return nil, errors.Trace(err)
		}
	}

	if fs.Changed("seed") {
		if cfg.Seed, err = fs.GetInt64("seed"); err != nil {
			return nil, errors.Trace(err)
		}
	}
	bools := map[string]*bool{
		"exact-index-cap":      &cfg.Compat.InclusiveIndexCap,
		"exact-trailing-batch": &cfg.Compat.LegacyTrailingBatch,
	}
	for name, dst := range bools {
		if !fs.Changed(name) {
			continue
		}
		exact, err := fs.GetBool(name)
		if err != nil {
			return nil, errors.Trace(err)
		}
		*dst = !exact
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return cfg, nil
}
