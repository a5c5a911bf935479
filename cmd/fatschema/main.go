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
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:          "fatschema",
		Short:        "Synthetic SQL Server schema and seed script generator",
		SilenceUsage: true,
	}
	fs := rootCmd.PersistentFlags()
	fs.StringP("config", "c", "", "config file, TOML or YAML (default ./fatschema.toml if present)")
	fs.String("log-level", "", "log level: debug, info, warn or error")
	fs.String("log-file", "", "also write logs to this rotated file")

	rootCmd.AddCommand(newGenerateCmd(), newConfigCmd(), newVersionCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
