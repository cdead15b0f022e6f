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

// Package report renders a slice of analyzed files as the tabular report,
// the cppncss-compatible XML report, and the supplemented COCOMO cost
// estimate.
package report

import (
	"fmt"
	"io"

	"github.com/ccmetrics/ccmetrics/internal/ucode"
)

// Options controls which rows the tabular/warning report includes and what
// counts as a warning.
type Options struct {
	// CCNThreshold is the cyclomatic complexity above which a function is
	// reported as a warning.
	CCNThreshold int
	// ArgumentsThreshold is the parameter count above which a function is
	// reported as a warning.
	ArgumentsThreshold int
	// WarningsOnly suppresses the per-function/per-file detail tables and
	// the header banner, printing only the one-line warnings.
	WarningsOnly bool
	// Verbose prints each function's long name instead of its short name.
	Verbose bool
}

func functionHeader(w io.Writer) {
	fmt.Fprintln(w, "==============================================================")
	fmt.Fprintln(w, "  nloc    CCN  token  param    function@line@file")
	fmt.Fprintln(w, "--------------------------------------------------------------")
}

func printFunctionInfo(w io.Writer, fn *ucode.FunctionInfo, filename string, opts Options) {
	name := fn.Name
	if opts.Verbose {
		name = fn.LongName
	}
	if opts.WarningsOnly {
		fmt.Fprintf(w, "%s:%d: warning: %s has %d CCN and %d params (%d NLOC, %d tokens)\n",
			filename, fn.StartLine, name, fn.CyclomaticComplexity, fn.ParameterCount, fn.NLOC, fn.TokenCount)
		return
	}
	fmt.Fprintf(w, "%6d %6d %6d %6d    %s@%d@%s\n",
		fn.NLOC, fn.CyclomaticComplexity, fn.TokenCount, fn.ParameterCount, name, fn.StartLine, filename)
}

// PrintDetails prints the per-function table, followed by the file-summary
// table, for every file (skipping files that failed to parse, i.e. nil
// entries are not expected here, callers filter those out first).
func PrintDetails(w io.Writer, files []*ucode.FileInformation, opts Options) {
	if opts.WarningsOnly {
		return
	}
	functionHeader(w)
	for _, f := range files {
		for _, fn := range f.FunctionList {
			printFunctionInfo(w, fn, f.Filename, opts)
		}
	}
	fmt.Fprintln(w, "--------------------------------------------------------------")
	fmt.Fprintf(w, "%d file analyzed.\n", len(files))
	fmt.Fprintln(w, "==============================================================")
	fmt.Fprintln(w, "NLOC    Avg.NLOC AvgCCN Avg.ttoken  function_cnt    file")
	fmt.Fprintln(w, "--------------------------------------------------------------")
	for _, f := range files {
		fmt.Fprintf(w, "%7d%7d%7d%10d%10d     %s\n",
			f.NLOC, int(f.AverageNLOC()), int(f.AverageCCN()), int(f.AverageToken()), len(f.FunctionList), f.Filename)
	}
}

// PrintWarnings prints every function whose complexity or parameter count
// exceeds opts' thresholds, and returns how many were printed. When
// opts.WarningsOnly is false it also prints the banner and header first.
func PrintWarnings(w io.Writer, files []*ucode.FileInformation, opts Options) int {
	if !opts.WarningsOnly {
		fmt.Fprintf(w, "\n======================================\n!!!! Warnings (CCN > %d) !!!!\n", opts.CCNThreshold)
		functionHeader(w)
	}
	count := 0
	for _, f := range files {
		for _, fn := range f.FunctionList {
			if fn.CyclomaticComplexity > opts.CCNThreshold || fn.ParameterCount > opts.ArgumentsThreshold {
				count++
				printFunctionInfo(w, fn, f.Filename, opts)
			}
		}
	}
	if count == 0 {
		fmt.Fprintln(w, "No warning found. Excellent!")
	}
	return count
}

// PrintTotal prints the aggregate summary line across every file, given the
// warning count PrintWarnings already computed.
func PrintTotal(w io.Writer, files []*ucode.FileInformation, warningCount int, opts Options) {
	if opts.WarningsOnly {
		return
	}
	var allFuncs []*ucode.FunctionInfo
	for _, f := range files {
		allFuncs = append(allFuncs, f.FunctionList...)
	}
	cnt := len(allFuncs)
	if cnt == 0 {
		cnt = 1
	}
	filesNLOC := 0
	for _, f := range files {
		filesNLOC += f.NLOC
	}
	functionsNLOC := 0
	ccnSum, tokenSum := 0, 0
	overThresholdNLOC := 0
	for _, fn := range allFuncs {
		functionsNLOC += fn.NLOC
		ccnSum += fn.CyclomaticComplexity
		tokenSum += fn.TokenCount
		if fn.CyclomaticComplexity > opts.CCNThreshold {
			overThresholdNLOC += fn.NLOC
		}
	}
	if functionsNLOC == 0 {
		functionsNLOC = 1
	}

	fmt.Fprintln(w, "=================================================================================")
	fmt.Fprintln(w, "Total nloc  Avg.nloc  Avg CCN  Avg token  Fun Cnt  Warning cnt   Fun Rt   nloc Rt  ")
	fmt.Fprintln(w, "--------------------------------------------------------------------------------")
	fmt.Fprintf(w, "%10d%10d%9.2f%11.2f%9d%13d%10.2f%8.2f\n",
		filesNLOC,
		functionsNLOC/cnt,
		float64(ccnSum)/float64(cnt),
		float64(tokenSum)/float64(cnt),
		cnt,
		warningCount,
		float64(warningCount)/float64(cnt),
		float64(overThresholdNLOC)/float64(functionsNLOC),
	)
}
