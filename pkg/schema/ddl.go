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
	"strings"
)

// BatchSeparator ends every T-SQL batch
const BatchSeparator = "GO"

// CreateStatement renders the CREATE TABLE batch of t:
//
//	CREATE TABLE BraveCalmOtter (
//	QuietBoldFox int NOT NULL IDENTITY(1,1)
//	,EagerOddOwl bit NOT NULL
//	,CONSTRAINT PK_BraveCalmOtter PRIMARY KEY CLUSTERED (QuietBoldFox)
//	,INDEX IX_BraveCalmOtter_EagerOddOwl NONCLUSTERED (EagerOddOwl)
//	);
//	GO
func (t *Table) CreateStatement() string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE %s (\n", t.Name)
	for i, column := range t.Columns {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%s %s NOT NULL", column.Name, column.Type)
		if column.IsKey {
			b.WriteString(" IDENTITY(1,1)")
		}
		b.WriteByte('\n')
	}
	if len(t.Columns) > 0 {
		fmt.Fprintf(&b, ",CONSTRAINT %s PRIMARY KEY CLUSTERED (%s)\n", t.PrimaryKeyName(), t.Key().Name)
	}
	for _, index := range t.Indexes {
		fmt.Fprintf(&b, ",INDEX %s NONCLUSTERED (%s)\n", index.Name, index.Column)
	}
	b.WriteString(");\n")
	b.WriteString(BatchSeparator)
	b.WriteString("\n")
	return b.String()
}
