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

package schema

import (
	"math/rand"

	"github.com/cznic/mathutil"
	"github.com/juju/errors"
	"go.uber.org/zap"
)

// NameSource hands out unique identifiers
type NameSource interface {
	Next() (string, error)
}

// Generator synthesizes random tables
type Generator struct {
	rand  *rand.Rand
	names NameSource
	// inclusiveIndexCap keeps numIndexes+1 indexes instead of numIndexes.
	inclusiveIndexCap bool
}

// NewGenerator creates a Generator. Column names are drawn from names.
func NewGenerator(r *rand.Rand, names NameSource, inclusiveIndexCap bool) *Generator {
	return &Generator{
		rand:              r,
		names:             names,
		inclusiveIndexCap: inclusiveIndexCap,
	}
}

// Generate builds a table with numColumns columns, the first being an int identity key,
// and at most IndexLimit(numIndexes, numColumns-1) indexes over the remaining columns.
func (g *Generator) Generate(name string, numColumns, numIndexes int) (*Table, error) {
	if numColumns < 1 {
		return nil, errors.NotValidf("column count %d of table %s", numColumns, name)
	}
	if numIndexes < 0 {
		return nil, errors.NotValidf("index count %d of table %s", numIndexes, name)
	}

	table := &Table{
		Name:    name,
		Columns: make([]Column, 0, numColumns),
	}
	for i := 0; i < numColumns; i++ {
		columnName, err := g.names.Next()
		if err != nil {
			return nil, errors.Annotatef(err, "column %d of table %s", i, name)
		}
		column := Column{Name: columnName, Type: TypeInt, IsKey: i == 0}
		if i > 0 {
			column.Type = RdType(g.rand)
		}
		table.Columns = append(table.Columns, column)
	}

	data := table.DataColumns()
	limit := IndexLimit(numIndexes, len(data), g.inclusiveIndexCap)
	table.Indexes = make([]Index, 0, limit)
	for _, column := range data[:limit] {
		table.Indexes = append(table.Indexes, Index{
			Name:   IndexName(name, column.Name),
			Column: column.Name,
		})
	}

	zap.L().Debug("generate table",
		zap.String("table", name),
		zap.Int("columns", len(table.Columns)),
		zap.Int("indexes", len(table.Indexes)))
	return table, nil
}

// IndexLimit returns how many of the dataColumns get an index.
// The inclusive cap allows one more index than requested.
func IndexLimit(numIndexes, dataColumns int, inclusive bool) int {
	if inclusive {
		numIndexes++
	}
	return mathutil.Max(0, mathutil.Min(numIndexes, dataColumns))
}
