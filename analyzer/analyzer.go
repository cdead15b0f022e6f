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

// Package analyzer is the File Analyzer façade: given a filename, it reads
// the file, selects a reader by language, tokenizes, and returns the
// resulting FileInformation. It is the package other Go programs embed
// ccmetrics through.
package analyzer

import (
	"os"

	"github.com/ccmetrics/ccmetrics/internal/langselect"
	"github.com/ccmetrics/ccmetrics/internal/reader"
	"github.com/ccmetrics/ccmetrics/internal/token"
	"github.com/ccmetrics/ccmetrics/internal/ucode"
)

// FunctionInfo and FileInformation are re-exported so callers never need to
// import internal/ucode directly.
type (
	FunctionInfo    = ucode.FunctionInfo
	FileInformation = ucode.FileInformation
)

// ParsingError is re-exported from internal/ucode for the same reason.
type ParsingError = ucode.ParsingError

// Options adjusts how AnalyzeFile reads a file.
type Options struct {
	// NoPreprocessorCount drops #if/#elif from the condition set a C-like
	// reader treats as complexity-contributing, per spec.md's
	// "-P/--no-preprocessor-count" flag.
	NoPreprocessorCount bool
}

// AnalyzeFile reads filename from disk, selects a reader by its suffix, and
// returns its FileInformation. I/O errors (missing file, permission denied)
// are returned directly, uninterpreted; a malformed token stream inside the
// file is returned as a *ucode.ParsingError.
func AnalyzeFile(filename string, opts Options) (*FileInformation, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return AnalyzeSource(filename, src, opts)
}

// AnalyzeSource runs the pipeline over in-memory source, for callers that
// already have the bytes (tests, or a caller reading from something other
// than a plain file).
func AnalyzeSource(filename string, src []byte, opts Options) (*FileInformation, error) {
	r := newReader(filename, opts)
	return r.Generate(filename, string(src), token.Tokenize(src))
}

func newReader(filename string, opts Options) *reader.Reader {
	if langselect.ReaderKindFor(filename) == langselect.KindObjC {
		return reader.NewObjC(opts.NoPreprocessorCount)
	}
	return reader.NewCLike(opts.NoPreprocessorCount)
}
