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
	"math"
	"math/rand"
	"strconv"

	"github.com/google/uuid"
	"github.com/juju/errors"

	"github.com/pingcap/fatschema/pkg/schema"
)

// Literal renders a random SQL literal for a column of type tp.
// bigint values stay in the 32-bit range, the same as int.
func Literal(r *rand.Rand, tp schema.ColumnType) (string, error) {
	switch tp {
	case schema.TypeInt, schema.TypeBigInt:
		return strconv.FormatInt(int64(r.Int31()), 10), nil
	case schema.TypeSmallInt:
		return strconv.Itoa(r.Intn(math.MaxInt16 + 1)), nil
	case schema.TypeVarchar:
		id, err := uuid.NewRandomFromReader(r)
		if err != nil {
			return "", errors.Trace(err)
		}
		return "'" + id.String() + "'", nil
	case schema.TypeBit:
		return strconv.Itoa(r.Intn(2)), nil
	}
	return "", errors.NotSupportedf("column type %s", tp)
}
