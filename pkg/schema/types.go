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
	"fmt"
	"math/rand"
)

// ColumnType enums the column types a table may use
type ColumnType int

// Column types
const (
	TypeInt ColumnType = iota
	TypeSmallInt
	TypeBigInt
	TypeVarchar
	TypeBit
)

// ColumnTypes lists every ColumnType in declaration order
var ColumnTypes = []ColumnType{TypeInt, TypeSmallInt, TypeBigInt, TypeVarchar, TypeBit}

func (t ColumnType) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeSmallInt:
		return "smallint"
	case TypeBigInt:
		return "bigint"
	case TypeVarchar:
		return "varchar(255)"
	case TypeBit:
		return "bit"
	default:
		return fmt.Sprintf("ColumnType(%d)", int(t))
	}
}

// RdType picks a column type uniformly
func RdType(r *rand.Rand) ColumnType {
	return ColumnTypes[r.Intn(len(ColumnTypes))]
}

// Column defines a table column
type Column struct {
	Name  string
	Type  ColumnType
	IsKey bool
}

// Index defines a single column non-clustered index
type Index struct {
	Name   string
	Column string
}

// Table defines a generated table. Columns[0] is always the identity key.
type Table struct {
	Name    string
	Columns []Column
	Indexes []Index
}

// Key returns the identity key column
func (t *Table) Key() Column {
	return t.Columns[0]
}

// DataColumns returns the columns an INSERT has to provide values for
func (t *Table) DataColumns() []Column {
	if len(t.Columns) == 0 {
		return nil
	}
	return t.Columns[1:]
}

// PrimaryKeyName returns the name of the primary key constraint
func (t *Table) PrimaryKeyName() string {
	return "PK_" + t.Name
}

// IndexName returns the name of the index over column
func IndexName(table, column string) string {
	return fmt.Sprintf("IX_%s_%s", table, column)
}
