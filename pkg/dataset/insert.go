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

package dataset

import (
	"fmt"
	"math/rand"

	sq "github.com/Masterminds/squirrel"
	"github.com/juju/errors"

	"github.com/pingcap/fatschema/pkg/schema"
)

// InsertBatch renders one multi-row INSERT batch of numRows random rows into table.
// columns must not contain the identity key. Nothing is rendered for zero rows or columns.
func InsertBatch(r *rand.Rand, table string, columns []schema.Column, numRows int) (string, error) {
	if numRows <= 0 || len(columns) == 0 {
		return "", nil
	}

	names := make([]string, 0, len(columns))
	for _, column := range columns {
		names = append(names, quote(column.Name))
	}
	builder := sq.Insert(fmt.Sprintf("%s.%s", quote("dbo"), quote(table))).Columns(names...)
	for i := 0; i < numRows; i++ {
		row := make([]interface{}, 0, len(columns))
		for _, column := range columns {
			literal, err := Literal(r, column.Type)
			if err != nil {
				return "", errors.Annotatef(err, "column %s of table %s", column.Name, table)
			}
			row = append(row, sq.Expr(literal))
		}
		builder = builder.Values(row...)
	}

	stmt, _, err := builder.ToSql()
	if err != nil {
		return "", errors.Trace(err)
	}
	return stmt + "\n" + schema.BatchSeparator + "\n\n", nil
}

func quote(name string) string {
	return "[" + name + "]"
}
