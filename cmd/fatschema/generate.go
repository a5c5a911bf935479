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
	"context"
	"io"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/juju/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pingcap/fatschema/pkg/config"
	"github.com/pingcap/fatschema/pkg/logger"
	"github.com/pingcap/fatschema/pkg/namegen"
	"github.com/pingcap/fatschema/pkg/script"
	"github.com/pingcap/fatschema/util"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Short:   "Generate a schema script and a seed script",
		Example: "fatschema generate --tables 50 --columns 20 --rows 10000 --out ./scripts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if _, err := logger.InitGlobalLogger(cfg.Log.Level, cfg.Log.File); err != nil {
				return err
			}
			defer zap.L().Sync()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return generate(ctx, cfg, cmd.OutOrStdout())
		},
	}
	addWorkloadFlags(cmd)
	return cmd
}

func generate(ctx context.Context, cfg *config.Config, out io.Writer) error {
	r, seed := util.NewRand(cfg.Seed)
	zap.L().Info("start generating", zap.Int64("seed", seed), zap.Any("workload", cfg.Workload))

	vocab, err := namegen.LoadVocabulary(cfg.Words.Adjectives, cfg.Words.Animals)
	if err != nil {
		return errors.Trace(err)
	}
	names, err := namegen.New(r, vocab, cfg.Words.MaxRetries)
	if err != nil {
		return errors.Trace(err)
	}
	sink := script.NewFileSink(cfg.Output.Dir, cfg.Output.SchemaFile, cfg.Output.SeedFile)
	assembler := script.New(cfg.Options(), r, names, sink, script.NewLauncher(cfg.Output.Viewer))

	result, err := assembler.Run(ctx)
	if result != nil {
		// Scripts are on disk even if the viewer failed.
		printSummary(out, seed, names.Used(), result)
	}
	return errors.Trace(err)
}

func printSummary(w io.Writer, seed int64, names int, result *script.Result) {
	label := color.New(color.FgCyan, color.Bold)
	value := color.New(color.FgYellow)
	green := color.New(color.FgGreen, color.Bold)

	green.Fprintln(w, "Scripts generated")
	for _, line := range []struct {
		name  string
		value interface{}
	}{
		{"Schema: ", result.SchemaLocation},
		{"Seed:   ", result.SeedLocation},
		{"Tables: ", len(result.Tables)},
		{"Rows:   ", result.Rows},
		{"Names:  ", names},
		{"Random: ", seed},
	} {
		label.Fprint(w, line.name)
		value.Fprintln(w, line.value)
	}
}
