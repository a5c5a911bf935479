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

package script

import "fmt"

// DefaultDatabase is the database the scripts drop and recreate
const DefaultDatabase = "FatSchemaTestDatabase"

const preambleTemplate = `
USE master
IF EXISTS(select * from sys.databases where name='%[1]s') BEGIN
ALTER DATABASE %[1]s SET SINGLE_USER WITH ROLLBACK IMMEDIATE;
DROP DATABASE %[1]s
END
GO
CREATE DATABASE %[1]s
GO
USE %[1]s
GO
`

// Preamble renders the batches that drop database if present, kicking out
// other sessions first, and create it again.
func Preamble(database string) string {
	return fmt.Sprintf(preambleTemplate, database)
}
