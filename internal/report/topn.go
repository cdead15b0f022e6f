// Copyright 2025 EngFlow Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package report

import (
	"sort"

	"github.com/ccmetrics/ccmetrics/internal/collections"
	"github.com/ccmetrics/ccmetrics/internal/ucode"
)

// RankedFunction names the file a FunctionInfo was found in, since
// FunctionInfo itself carries no back-reference to its FileInformation.
type RankedFunction struct {
	Filename string
	Function *ucode.FunctionInfo
}

// rankedEntry orders RankedFunction by ascending complexity, so a bounded
// min-heap evicts the least complex entry first and what's left after
// TopComplexFunctions drains it is the N most complex, in descending order.
type rankedEntry RankedFunction

func (r rankedEntry) Less(other rankedEntry) bool {
	return r.Function.CyclomaticComplexity < other.Function.CyclomaticComplexity
}

// TopComplexFunctions returns the n functions with the highest cyclomatic
// complexity across files, most complex first. When the window is full, a
// function only displaces the current minimum if it is strictly more
// complex, so among equally complex functions the earlier ones are kept; the
// relative order of equally complex functions in the result is not defined.
func TopComplexFunctions(files []*ucode.FileInformation, n int) []RankedFunction {
	if n <= 0 {
		return nil
	}
	q := collections.NewEmptyPriorityQueue[rankedEntry]()
	size := 0
	for _, f := range files {
		for _, fn := range f.FunctionList {
			entry := rankedEntry{Filename: f.Filename, Function: fn}
			if size < n {
				q.Push(entry)
				size++
				continue
			}
			if q.Peek().Function.CyclomaticComplexity < fn.CyclomaticComplexity {
				q.Pop()
				q.Push(entry)
			}
		}
	}

	result := make([]RankedFunction, 0, size)
	for !q.Empty() {
		result = append(result, RankedFunction(q.Pop()))
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Function.CyclomaticComplexity > result[j].Function.CyclomaticComplexity
	})
	return result
}
