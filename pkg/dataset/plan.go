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

// legacyTrailingModulus sizes the trailing batch under the legacy policy
const legacyTrailingModulus = 1000

// Plan splits numRows into INSERT batch sizes for a table of numColumns columns.
//
// The chunk size is numRows/numColumns. When it is positive, numRows/chunk full
// batches are emitted first. The trailing batch holds numRows%1000 rows under the
// legacy policy, which may repeat rows already covered by the full batches, or
// exactly the rows left over otherwise. Empty batches are left out.
func Plan(numRows, numColumns int, legacyTrailing bool) []int {
	if numRows <= 0 || numColumns <= 0 {
		return nil
	}

	var (
		batches []int
		chunk   = numRows / numColumns
		full    int
	)
	if chunk > 0 {
		full = numRows / chunk
		for i := 0; i < full; i++ {
			batches = append(batches, chunk)
		}
	}

	trailing := numRows - full*chunk
	if legacyTrailing {
		trailing = numRows % legacyTrailingModulus
	}
	if trailing > 0 {
		batches = append(batches, trailing)
	}
	return batches
}

// Total sums the rows of a plan
func Total(batches []int) int {
	total := 0
	for _, n := range batches {
		total += n
	}
	return total
}
