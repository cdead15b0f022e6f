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

// Command ccmetrics measures cyclomatic complexity and related size metrics
// for C, C++, Objective-C, and Java source files.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ccmetrics/ccmetrics/analyzer"
	"github.com/ccmetrics/ccmetrics/internal/discover"
	"github.com/ccmetrics/ccmetrics/internal/langselect"
	"github.com/ccmetrics/ccmetrics/internal/pool"
	"github.com/ccmetrics/ccmetrics/internal/report"
	"github.com/ccmetrics/ccmetrics/internal/ucode"
)

// version is set at release time; left as a placeholder for a dev build.
var version = "dev"

type cliFlags struct {
	ccn                 int
	arguments           int
	warningsOnly        bool
	ignoreWarnings      int
	exclude             []string
	xml                 bool
	noPreprocessorCount bool
	threads             int
	duplicates          bool
	files               bool
	unclassified        bool
	cocomo              bool
	json                bool
	verbose             bool
	listLanguages       bool
	top                 int
	version             bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	flags := &cliFlags{}
	cmd := &cobra.Command{
		Use:           "ccmetrics [paths...]",
		Short:         "Measure cyclomatic complexity for C/C++/Objective-C/Java sources",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, flags)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&flags.ccn, "ccn", "C", 15, "threshold for cyclomatic complexity number warning")
	f.IntVarP(&flags.arguments, "arguments", "a", 100, "limit for number of parameters")
	f.BoolVarP(&flags.warningsOnly, "warnings-only", "w", false, "show warnings only, skip the metric summary")
	f.IntVarP(&flags.ignoreWarnings, "ignore-warnings", "i", 0, "exit with code 0 if the warning count is no more than this number")
	f.StringSliceVarP(&flags.exclude, "exclude", "x", nil, "exclude files matching this glob pattern (repeatable)")
	f.BoolVarP(&flags.xml, "xml", "X", false, "print cppncss-compatible XML output")
	f.BoolVarP(&flags.noPreprocessorCount, "no-preprocessor-count", "P", false, "don't count #if/#elif as contributing to complexity")
	f.IntVarP(&flags.threads, "threads", "t", runtime.NumCPU(), "number of worker threads")
	f.BoolVarP(&flags.duplicates, "duplicates", "d", false, "skip files whose content duplicates one already seen")
	f.BoolVar(&flags.files, "files", false, "print the per-file summary table")
	f.BoolVarP(&flags.unclassified, "unclassified", "u", false, "list files that were found but not recognized")
	f.BoolVarP(&flags.cocomo, "cocomo", "c", false, "print a basic COCOMO cost estimate")
	f.BoolVarP(&flags.json, "json", "j", false, "print per-file results as JSON instead of the tabular report")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "use each function's long name instead of its short name")
	f.BoolVarP(&flags.listLanguages, "list-languages", "l", false, "list supported languages and exit")
	f.IntVarP(&flags.top, "top", "T", 0, "list the N most complex functions across all files")
	f.BoolVarP(&flags.version, "version", "V", false, "print version and exit")

	return cmd
}

func run(cmd *cobra.Command, args []string, flags *cliFlags) error {
	out := cmd.OutOrStdout()

	if flags.version {
		fmt.Fprintf(out, "ccmetrics %s\n", version)
		return nil
	}

	if flags.listLanguages {
		for _, lang := range []langselect.Language{langselect.CC, langselect.Java, langselect.ObjC} {
			fmt.Fprintln(out, lang)
		}
		return nil
	}

	roots := args
	if len(roots) == 0 {
		roots = []string{"."}
	}

	paths, unclassified, err := discover.Walk(roots, discover.Options{
		Excludes:   flags.exclude,
		Duplicates: flags.duplicates,
	})
	if err != nil {
		return fmt.Errorf("discovering source files: %w", err)
	}

	opts := analyzer.Options{NoPreprocessorCount: flags.noPreprocessorCount}
	outcomes, err := pool.Run(context.Background(), paths, flags.threads, func(_ context.Context, path string) (*ucode.FileInformation, error) {
		return analyzer.AnalyzeFile(path, opts)
	})
	if err != nil {
		return fmt.Errorf("analyzing source files: %w", err)
	}

	var results []*ucode.FileInformation
	for _, o := range outcomes {
		if o.Err != nil {
			log.Printf("%s: %v (%s)", o.Filename, o.Err, ucode.BugReportURL)
			continue
		}
		results = append(results, o.Result)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Filename < results[j].Filename })

	if flags.unclassified {
		for _, u := range unclassified {
			fmt.Fprintln(out, u)
		}
	}

	if flags.json {
		body, err := report.JSON(results)
		if err != nil {
			return fmt.Errorf("rendering JSON report: %w", err)
		}
		fmt.Fprintln(out, string(body))
		return nil
	}

	if flags.xml {
		body, err := report.XML(results, flags.verbose)
		if err != nil {
			return fmt.Errorf("rendering XML report: %w", err)
		}
		fmt.Fprintln(out, string(body))
		return nil
	}

	reportOpts := report.Options{
		CCNThreshold:       flags.ccn,
		ArgumentsThreshold: flags.arguments,
		WarningsOnly:       flags.warningsOnly,
		Verbose:            flags.verbose,
	}

	if flags.files {
		report.PrintDetails(out, results, reportOpts)
	}
	warningCount := report.PrintWarnings(out, results, reportOpts)
	report.PrintTotal(out, results, warningCount, reportOpts)

	if flags.top > 0 {
		fmt.Fprintf(out, "\nTop %d most complex functions:\n", flags.top)
		for _, rf := range report.TopComplexFunctions(results, flags.top) {
			fmt.Fprintf(out, "%6d  %s@%d@%s\n", rf.Function.CyclomaticComplexity, rf.Function.Name, rf.Function.StartLine, rf.Filename)
		}
	}

	if flags.cocomo {
		total := 0
		for _, r := range results {
			total += r.NLOC
		}
		report.PrintCOCOMO(out, report.COCOMOEstimate(total))
	}

	if warningCount > flags.ignoreWarnings {
		return fmt.Errorf("%d warning(s) exceed the allowed %d", warningCount, flags.ignoreWarnings)
	}
	return nil
}
