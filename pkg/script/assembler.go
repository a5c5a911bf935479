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

// Package script assembles the schema and seed scripts of a synthetic
// SQL Server workload and hands them to a sink.
package script

import (
	"context"
	"math"
	"math/rand"
	"strings"

	"github.com/juju/errors"
	"go.uber.org/zap"

	"github.com/pingcap/fatschema/pkg/dataset"
	"github.com/pingcap/fatschema/pkg/namegen"
	"github.com/pingcap/fatschema/pkg/schema"
)

// NameSupply hands out unique identifiers and knows how many are left
type NameSupply interface {
	schema.NameSource
	Remaining() uint64
}

// Options describes the workload shape
type Options struct {
	Database   string
	NumTables  int
	NumColumns int
	NumIndexes int
	NumRows    int
	// InclusiveIndexCap keeps NumIndexes+1 indexes per table.
	InclusiveIndexCap bool
	// LegacyTrailingBatch sizes the last batch of every table as NumRows%1000.
	LegacyTrailingBatch bool
}

func (o *Options) validate() error {
	switch {
	case o.Database == "":
		return errors.NotValidf("empty database name")
	case !namegen.IsIdentifier(o.Database):
		return errors.NotValidf("database name %q", o.Database)
	case o.NumTables < 1:
		return errors.NotValidf("table count %d", o.NumTables)
	case o.NumColumns < 1:
		return errors.NotValidf("column count %d", o.NumColumns)
	case o.NumIndexes < 0:
		return errors.NotValidf("index count %d", o.NumIndexes)
	case o.NumRows < 0:
		return errors.NotValidf("row count %d", o.NumRows)
	}
	return nil
}

// names returns how many identifiers the workload consumes.
// It saturates at math.MaxUint64.
func (o *Options) names() uint64 {
	tables, perTable := uint64(o.NumTables), uint64(o.NumColumns)+1
	if tables == 0 || perTable == 0 {
		return 0
	}
	if tables > math.MaxUint64/perTable {
		return math.MaxUint64
	}
	return tables * perTable
}

// Scripts is a fully generated workload
type Scripts struct {
	Tables []*schema.Table
	Schema string
	Seed   string
	Rows   int
}

// Result tells where the scripts went
type Result struct {
	*Scripts
	SchemaLocation string
	SeedLocation   string
}

// Assembler drives table and data generation for one run
type Assembler struct {
	opts     Options
	rand     *rand.Rand
	names    NameSupply
	tables   *schema.Generator
	sink     Sink
	launcher Launcher
}

// New creates an Assembler. rand and names are owned by the run and
// must not be shared with another Assembler.
func New(opts Options, r *rand.Rand, names NameSupply, sink Sink, launcher Launcher) *Assembler {
	if launcher == nil {
		launcher = NopLauncher{}
	}
	return &Assembler{
		opts:     opts,
		rand:     r,
		names:    names,
		tables:   schema.NewGenerator(r, names, opts.InclusiveIndexCap),
		sink:     sink,
		launcher: launcher,
	}
}

// Generate builds both scripts in memory
func (a *Assembler) Generate(ctx context.Context) (*Scripts, error) {
	if err := a.opts.validate(); err != nil {
		return nil, errors.Trace(err)
	}
	if need, left := a.opts.names(), a.names.Remaining(); need > left {
		return nil, errors.Annotatef(namegen.ErrVocabularyExhausted, "workload needs %d names, at most %d available", need, left)
	}

	tables := make([]*schema.Table, 0, a.opts.NumTables)
	for i := 0; i < a.opts.NumTables; i++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.Trace(err)
		}
		name, err := a.names.Next()
		if err != nil {
			return nil, errors.Annotatef(err, "table %d", i)
		}
		table, err := a.tables.Generate(name, a.opts.NumColumns, a.opts.NumIndexes)
		if err != nil {
			return nil, errors.Trace(err)
		}
		tables = append(tables, table)
	}

	scripts := &Scripts{
		Tables: tables,
		Schema: a.schemaScript(tables),
	}
	var seed strings.Builder
	plan := dataset.Plan(a.opts.NumRows, a.opts.NumColumns, a.opts.LegacyTrailingBatch)
	for _, table := range tables {
		if err := ctx.Err(); err != nil {
			return nil, errors.Trace(err)
		}
		rows, err := a.seedTable(&seed, table, plan)
		if err != nil {
			return nil, errors.Trace(err)
		}
		scripts.Rows += rows
	}
	scripts.Seed = seed.String()

	zap.L().Info("generate workload",
		zap.String("database", a.opts.Database),
		zap.Int("tables", len(tables)),
		zap.Ints("batches", plan),
		zap.Int("rows", scripts.Rows))
	return scripts, nil
}

func (a *Assembler) schemaScript(tables []*schema.Table) string {
	statements := make([]string, 0, len(tables))
	for _, table := range tables {
		statements = append(statements, table.CreateStatement())
	}
	return Preamble(a.opts.Database) + "\n" + strings.Join(statements, "\n")
}

func (a *Assembler) seedTable(b *strings.Builder, table *schema.Table, plan []int) (int, error) {
	columns := table.DataColumns()
	if len(columns) == 0 {
		zap.L().Warn("skip seeding table without data columns", zap.String("table", table.Name))
		return 0, nil
	}
	rows := 0
	for _, n := range plan {
		stmt, err := dataset.InsertBatch(a.rand, table.Name, columns, n)
		if err != nil {
			return 0, errors.Trace(err)
		}
		b.WriteString(stmt)
		rows += n
	}
	return rows, nil
}

// Run generates both scripts, persists them and opens them with the launcher.
// Either both scripts are persisted or none is.
func (a *Assembler) Run(ctx context.Context) (*Result, error) {
	scripts, err := a.Generate(ctx)
	if err != nil {
		return nil, errors.Trace(err)
	}

	result := &Result{Scripts: scripts}
	result.SchemaLocation, err = a.sink.Persist(KindSchema, scripts.Schema)
	if err != nil {
		return nil, errors.Annotatef(err, "persist %s script", KindSchema)
	}
	result.SeedLocation, err = a.sink.Persist(KindSeed, scripts.Seed)
	if err != nil {
		if derr := a.sink.Discard(result.SchemaLocation); derr != nil {
			zap.L().Warn("discard schema script", zap.String("location", result.SchemaLocation), zap.Error(derr))
		}
		return nil, errors.Annotatef(err, "persist %s script", KindSeed)
	}
	zap.L().Info("persist scripts",
		zap.String("schema", result.SchemaLocation),
		zap.String("seed", result.SeedLocation))

	for _, location := range []string{result.SchemaLocation, result.SeedLocation} {
		if err := a.launcher.Launch(ctx, location); err != nil {
			zap.L().Warn("open script", zap.String("location", location), zap.Error(err))
			return result, errors.Trace(err)
		}
	}
	return result, nil
}
