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

// Package reader implements the per-language state machines that consume
// tokenizer output and drive a ucode.Builder. There are two readers, C-like
// (C, C++, Java) and Objective-C; Objective-C reuses every C-like state and
// overrides only DEC_TO_IMP, adding four states of its own.
package reader

import (
	"fmt"

	"github.com/ccmetrics/ccmetrics/internal/token"
	"github.com/ccmetrics/ccmetrics/internal/ucode"
)

// state names the C-like/Objective-C reader state machine's states.
type state int

const (
	stateGlobal state = iota
	stateNamespace
	stateOperator
	stateDec
	stateDecToImp
	stateCtorInitList
	stateImp
	stateObjCDecBegin
	stateObjCDec
	stateObjCParamType
	stateObjCParam
)

// Kind distinguishes the two reader specializations.
type Kind int

const (
	// CLike reads C, C++, and Java.
	CLike Kind = iota
	// ObjC reads Objective-C, specializing CLike's DEC_TO_IMP transition.
	ObjC
)

var baseConditions = map[string]bool{
	"if": true, "for": true, "while": true, "&&": true, "||": true,
	"case": true, "?": true, "#if": true, "#elif": true, "catch": true,
}

// Reader is a per-language C-like/Objective-C state machine. A Reader is
// single-use: construct a fresh one per file via NewCLike/NewObjC.
type Reader struct {
	kind             Kind
	state            state
	builder          *ucode.Builder
	currentLine      int
	conditions       map[string]bool
	bracketLevel     int
	brCount          int
	lastPreprocessor string
}

// NewCLike returns a reader for C, C++, and Java source.
func NewCLike(noPreprocessorCount bool) *Reader {
	return newReader(CLike, noPreprocessorCount)
}

// NewObjC returns a reader for Objective-C source.
func NewObjC(noPreprocessorCount bool) *Reader {
	return newReader(ObjC, noPreprocessorCount)
}

func newReader(kind Kind, noPreprocessorCount bool) *Reader {
	conditions := make(map[string]bool, len(baseConditions))
	for k, v := range baseConditions {
		if noPreprocessorCount && (k == "#if" || k == "#elif") {
			continue
		}
		conditions[k] = v
	}
	return &Reader{
		kind:       kind,
		state:      stateGlobal,
		builder:    ucode.NewBuilder(),
		conditions: conditions,
	}
}

// Generate runs the full tokenizer output through the reader, returning the
// assembled FileInformation. A malformed token stream is reported as a
// *ucode.ParsingError tagged with filename/line/source.
func (r *Reader) Generate(filename, source string, tokens func(yield func(token.Token) bool)) (fi *ucode.FileInformation, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			recErr, ok := rec.(error)
			if !ok {
				recErr = fmt.Errorf("%v", rec)
			}
			err = &ucode.ParsingError{Filename: filename, Line: r.currentLine, Source: source, Cause: recErr}
		}
	}()

	for tok := range tokens {
		r.currentLine = tok.Line
		if tok.Lexeme == "\n" {
			r.builder.NewLine()
			continue
		}
		r.feed(tok.Lexeme)
	}
	return r.builder.FileInformation(filename), nil
}

func (r *Reader) isCondition(tok string) bool { return r.conditions[tok] }

// feed dispatches a single non-newline token to the current state.
func (r *Reader) feed(tok string) {
	if len(tok) > 0 && tok[0] == '#' && r.state != stateImp {
		return
	}
	switch r.state {
	case stateGlobal:
		r.global(tok)
	case stateNamespace:
		r.namespace(tok)
	case stateOperator:
		r.operator(tok)
	case stateDec:
		r.dec(tok)
	case stateDecToImp:
		if r.kind == ObjC {
			r.objCDecToImp(tok)
		} else {
			r.decToImp(tok)
		}
	case stateCtorInitList:
		r.ctorInitList(tok)
	case stateImp:
		r.imp(tok)
	case stateObjCDecBegin:
		r.objCDecBegin(tok)
	case stateObjCDec:
		r.objCDec(tok)
	case stateObjCParamType:
		r.objCParamType(tok)
	case stateObjCParam:
		r.objCParam(tok)
	}
}

func (r *Reader) global(tok string) {
	switch tok {
	case "(":
		r.bracketLevel = 1
		r.state = stateDec
		r.builder.AddToLongFunctionName(tok)
	case "::":
		r.state = stateNamespace
	default:
		r.builder.StartNewFunction(tok, r.currentLine)
		if tok == "operator" {
			r.state = stateOperator
		}
	}
}

func (r *Reader) operator(tok string) {
	if tok != "(" {
		r.state = stateGlobal
	}
	r.builder.AddToFunctionName(" " + tok)
}

func (r *Reader) namespace(tok string) {
	if tok == "operator" {
		r.state = stateOperator
	} else {
		r.state = stateGlobal
	}
	r.builder.AddToFunctionName("::" + tok)
}

func (r *Reader) dec(tok string) {
	switch {
	case tok == "(" || tok == "<":
		r.bracketLevel++
		r.builder.AddToLongFunctionName(tok)
	case tok == ")" || tok == ">":
		r.bracketLevel--
		if r.bracketLevel == 0 {
			r.state = stateDecToImp
		}
		r.builder.AddToLongFunctionName(tok)
	case r.bracketLevel == 1:
		r.builder.Parameter(tok)
	default:
		r.builder.AddToLongFunctionName(" " + tok)
	}
}

func (r *Reader) decToImp(tok string) {
	switch tok {
	case "const", "noexcept":
		r.builder.AddToLongFunctionName(" " + tok)
	case "{":
		r.brCount = 1
		r.state = stateImp
	case ":":
		r.state = stateCtorInitList
	default:
		r.state = stateGlobal
	}
}

func (r *Reader) ctorInitList(tok string) {
	if tok == "{" {
		r.brCount = 1
		r.state = stateImp
	}
}

func (r *Reader) imp(tok string) {
	if tok == "#else" || tok == "#if" || tok == "#endif" {
		r.lastPreprocessor = tok
	}
	if r.lastPreprocessor != "#else" {
		switch tok {
		case "{":
			r.brCount++
		case "}":
			r.brCount--
			if r.brCount == 0 {
				r.state = stateGlobal
				r.builder.EndOfFunction()
				return
			}
		}
	}
	if r.isCondition(tok) {
		r.builder.Condition()
	} else {
		r.builder.Token()
	}
}
