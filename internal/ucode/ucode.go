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

// Package ucode implements the UniversalCode intermediate representation:
// a language-neutral event sink that readers drive to build up per-function
// metrics without ever touching FunctionInfo fields directly.
package ucode

// FunctionInfo is the statistic record for a single function.
type FunctionInfo struct {
	Name                 string
	LongName             string
	StartLine            int
	CyclomaticComplexity int
	NLOC                 int
	TokenCount           int
	ParameterCount       int
	// Parameters is a best-effort ordered list of the raw tokens that made
	// up the parameter list (types and identifiers alike, comma tokens
	// excluded); it is not a clean list of variable names, since the reader
	// has no type/declarator grammar to separate them.
	Parameters []string
}

func newFunctionInfo(name string, startLine int) *FunctionInfo {
	return &FunctionInfo{
		Name:                 name,
		LongName:             name,
		StartLine:            startLine,
		CyclomaticComplexity: 1,
	}
}

func (f *FunctionInfo) addToName(text string) {
	f.Name += text
	f.LongName += text
}

func (f *FunctionInfo) addToLongName(text string) {
	f.LongName += text
}

func (f *FunctionInfo) addParameter(tok string) {
	f.addToLongName(" " + tok)
	if f.ParameterCount == 0 {
		f.ParameterCount = 1
	}
	if tok == "," {
		f.ParameterCount++
	} else {
		f.Parameters = append(f.Parameters, tok)
	}
}

// FileInformation is the statistic record for a whole source file: its
// file-level NLOC plus every function found in it, in source order.
type FileInformation struct {
	Filename     string
	NLOC         int
	FunctionList []*FunctionInfo
}

// AverageNLOC returns the mean per-function NLOC, or 0 for an empty file.
func (f *FileInformation) AverageNLOC() float64 { return f.functionsAverage(func(fi *FunctionInfo) int { return fi.NLOC }) }

// AverageToken returns the mean per-function token count, or 0 for an empty file.
func (f *FileInformation) AverageToken() float64 {
	return f.functionsAverage(func(fi *FunctionInfo) int { return fi.TokenCount })
}

// AverageCCN returns the mean per-function cyclomatic complexity, or 0 for an empty file.
func (f *FileInformation) AverageCCN() float64 {
	return f.functionsAverage(func(fi *FunctionInfo) int { return fi.CyclomaticComplexity })
}

// CCN returns the sum of every function's cyclomatic complexity in the file.
func (f *FileInformation) CCN() int {
	sum := 0
	for _, fi := range f.FunctionList {
		sum += fi.CyclomaticComplexity
	}
	return sum
}

func (f *FileInformation) functionsAverage(field func(*FunctionInfo) int) float64 {
	if len(f.FunctionList) == 0 {
		return 0
	}
	sum := 0
	for _, fi := range f.FunctionList {
		sum += field(fi)
	}
	return float64(sum) / float64(len(f.FunctionList))
}

// Builder is the UniversalCode accumulator: a single mutable "current
// function" cursor plus the running file-level NLOC, driven by the eight
// verbs below. It carries no language awareness; every reader, regardless
// of language, emits the same verb calls.
//
// The cursor is seeded with an anonymous placeholder function at line 0 so
// that TOKEN/CONDITION calls from code outside any function body have
// somewhere to go; the placeholder is discarded unless EndOfFunction is
// actually called while it is current (mirroring the reference
// implementation's behavior of appending whatever the cursor holds, even if
// nothing was ever added to it).
type Builder struct {
	current        *FunctionInfo
	functionList   []*FunctionInfo
	nloc           int
	newlinePending bool
}

// NewBuilder returns a Builder ready to receive verb calls. The newline
// flag starts pending so that the very first Token/Condition call, before
// any NewLine has fired, still counts its line, matching source that
// opens a function body on the same line it was declared.
func NewBuilder() *Builder {
	b := &Builder{newlinePending: true}
	b.StartNewFunction("", 0)
	return b
}

// StartNewFunction discards the current function cursor and replaces it
// with a fresh FunctionInfo.
func (b *Builder) StartNewFunction(name string, startLine int) {
	b.current = newFunctionInfo(name, startLine)
}

// AddToFunctionName appends text to both the short and long names of the
// current function.
func (b *Builder) AddToFunctionName(text string) {
	b.current.addToName(text)
}

// AddToLongFunctionName appends text to the long name only.
func (b *Builder) AddToLongFunctionName(text string) {
	b.current.addToLongName(text)
}

// Parameter records one parameter-list token: it bumps ParameterCount from
// 0 to 1 on first call and by one more on each subsequent "," token, and
// appends " "+tok to the long name.
func (b *Builder) Parameter(tok string) {
	b.current.addParameter(tok)
}

// Token records a non-condition token: if a newline is pending it first
// bumps the current function's NLOC and clears the pending flag, then
// always bumps its token count.
func (b *Builder) Token() {
	if b.newlinePending {
		b.current.NLOC++
		b.newlinePending = false
	}
	b.current.TokenCount++
}

// Condition is Token plus a cyclomatic-complexity increment.
func (b *Builder) Condition() {
	b.Token()
	b.current.CyclomaticComplexity++
}

// NewLine bumps the file-level NLOC and marks a newline as pending for the
// next Token/Condition call.
func (b *Builder) NewLine() {
	b.nloc++
	b.newlinePending = true
}

// EndOfFunction freezes the current function cursor into the function
// list and resets the cursor to a fresh placeholder.
func (b *Builder) EndOfFunction() {
	b.functionList = append(b.functionList, b.current)
	b.StartNewFunction("", 0)
}

// FileInformation assembles the accumulated state into a FileInformation
// for filename. The placeholder cursor seeded at construction time is
// never included unless EndOfFunction was called while it was current.
func (b *Builder) FileInformation(filename string) *FileInformation {
	return &FileInformation{
		Filename:     filename,
		NLOC:         b.nloc,
		FunctionList: b.functionList,
	}
}
