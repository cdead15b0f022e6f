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

package ucode

import (
	"fmt"
	"strings"
)

// BugReportURL is appended to every ParsingError message, pointing users at
// where to file a report when a reader state machine rejects valid input.
const BugReportURL = "please report this at https://github.com/ccmetrics/ccmetrics/issues"

// ParsingError is raised when a reader's state machine cannot make sense of
// a token stream. It carries enough context, filename, 1-based line, and
// the offending source, to print a readable one-line snippet.
type ParsingError struct {
	Filename string
	Line     int
	Source   string
	Cause    error
}

func (e *ParsingError) Error() string {
	line := ""
	if lines := strings.Split(e.Source, "\n"); e.Line >= 1 && e.Line <= len(lines) {
		line = lines[e.Line-1]
	}
	return fmt.Sprintf("%s:%d: failed to parse: %q: %v\n%s", e.Filename, e.Line, line, e.Cause, BugReportURL)
}

func (e *ParsingError) Unwrap() error { return e.Cause }
