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
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pingcap/fatschema/pkg/schema"
)

var uuidLiteral = regexp.MustCompile(`^'[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}'$`)

func TestLiteral(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 2000; i++ {
		bit, err := Literal(r, schema.TypeBit)
		require.NoError(t, err)
		assert.Contains(t, []string{"0", "1"}, bit)

		small, err := Literal(r, schema.TypeSmallInt)
		require.NoError(t, err)
		n, err := strconv.Atoi(small)
		require.NoError(t, err)
		assert.True(t, n >= 0 && n <= 32767, small)

		for _, tp := range []schema.ColumnType{schema.TypeInt, schema.TypeBigInt} {
			lit, err := Literal(r, tp)
			require.NoError(t, err)
			v, err := strconv.ParseInt(lit, 10, 64)
			require.NoError(t, err)
			assert.True(t, v >= 0 && v <= 2147483647, lit)
		}

		varchar, err := Literal(r, schema.TypeVarchar)
		require.NoError(t, err)
		assert.Len(t, varchar, 38)
		assert.Regexp(t, uuidLiteral, varchar)
	}

	_, err := Literal(r, schema.ColumnType(42))
	assert.True(t, errors.IsNotSupported(err))
}

func TestLiteralBitTakesBothValues(t *testing.T) {
	r := rand.New(rand.NewSource(8))
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		lit, err := Literal(r, schema.TypeBit)
		require.NoError(t, err)
		seen[lit] = true
	}
	assert.True(t, seen["0"])
	assert.True(t, seen["1"])
}

func TestLiteralDeterministic(t *testing.T) {
	r1 := rand.New(rand.NewSource(21))
	r2 := rand.New(rand.NewSource(21))
	for _, tp := range schema.ColumnTypes {
		l1, err := Literal(r1, tp)
		require.NoError(t, err)
		l2, err := Literal(r2, tp)
		require.NoError(t, err)
		assert.Equal(t, l1, l2)
	}
}

func TestInsertBatch(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	columns := []schema.Column{
		{Name: "EagerOddOwl", Type: schema.TypeBit},
		{Name: "TinyWildYak", Type: schema.TypeVarchar},
	}
	stmt, err := InsertBatch(r, "BraveCalmOtter", columns, 3)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stmt, "INSERT INTO [dbo].[BraveCalmOtter] ([EagerOddOwl],[TinyWildYak]) VALUES ("), stmt)
	assert.True(t, strings.HasSuffix(stmt, "\nGO\n\n"), stmt)
	assert.Equal(t, 3, countRows(stmt))

	values := stmt[strings.Index(stmt, "VALUES ")+len("VALUES ") : strings.Index(stmt, "\nGO")]
	for _, row := range strings.Split(values, "),(") {
		fields := strings.Split(strings.Trim(row, "()"), ",")
		require.Len(t, fields, 2)
		assert.Contains(t, []string{"0", "1"}, fields[0])
		assert.Regexp(t, uuidLiteral, fields[1])
	}
}

func TestInsertBatchEmpty(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	stmt, err := InsertBatch(r, "t", []schema.Column{{Name: "c", Type: schema.TypeInt}}, 0)
	require.NoError(t, err)
	assert.Empty(t, stmt)

	stmt, err = InsertBatch(r, "t", nil, 5)
	require.NoError(t, err)
	assert.Empty(t, stmt)
}

func TestPlan(t *testing.T) {
	cases := []struct {
		rows    int
		columns int
		legacy  bool
		expect  []int
	}{
		{rows: 6, columns: 3, legacy: true, expect: []int{2, 2, 2, 6}},
		{rows: 6, columns: 3, legacy: false, expect: []int{2, 2, 2}},
		{rows: 7, columns: 3, legacy: false, expect: []int{2, 2, 2, 1}},
		{rows: 1, columns: 5, legacy: true, expect: []int{1}},
		{rows: 2, columns: 5, legacy: false, expect: []int{2}},
		{rows: 0, columns: 5, legacy: true, expect: nil},
		{rows: 5, columns: 0, legacy: true, expect: nil},
		{rows: 2000, columns: 5, legacy: true, expect: []int{400, 400, 400, 400, 400}},
		{rows: 1500, columns: 5, legacy: true, expect: []int{300, 300, 300, 300, 300, 500}},
		{rows: 10, columns: 4, legacy: false, expect: []int{2, 2, 2, 2, 2}},
	}
	for _, c := range cases {
		assert.Equal(t, c.expect, Plan(c.rows, c.columns, c.legacy), "%+v", c)
	}
}

func TestPlanExactTotal(t *testing.T) {
	for rows := 0; rows < 300; rows++ {
		for columns := 1; columns < 12; columns++ {
			assert.Equal(t, rows, Total(Plan(rows, columns, false)), "rows %d columns %d", rows, columns)
		}
	}
}

func countRows(stmt string) int {
	return strings.Count(stmt, "),(") + 1
}
