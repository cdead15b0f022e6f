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

// Package langselect maps a filename's suffix to the reader.Kind that
// should analyze it.
package langselect

import "strings"

// Language names a recognized source language family.
type Language string

const (
	CC    Language = "c/c++"
	Java  Language = "java"
	ObjC  Language = "objc"
	Other Language = ""
)

var extensions = map[string]Language{
	".c":    CC,
	".cpp":  CC,
	".cc":   CC,
	".cxx":  CC,
	".h":    CC,
	".hpp":  CC,
	".mm":   CC,
	".java": Java,
	".m":    ObjC,
}

// ByFilename returns the recognized Language for filename's suffix, or
// Other if no suffix matches.
func ByFilename(filename string) Language {
	ext := strings.ToLower(extFromName(filename))
	if lang, ok := extensions[ext]; ok {
		return lang
	}
	return Other
}

// IsRecognized reports whether filename has a suffix the analyzer knows how
// to read. Used by the discovery walk to skip everything else up front.
func IsRecognized(filename string) bool {
	_, ok := extensions[strings.ToLower(extFromName(filename))]
	return ok
}

func extFromName(filename string) string {
	i := strings.LastIndexByte(filename, '.')
	if i < 0 {
		return ""
	}
	return filename[i:]
}

// ReaderKindFor returns the reader.Kind appropriate for filename, defaulting
// to C-like when the suffix is unrecognized (matching the reference
// implementation's "otherwise default to c/c++" behavior).
func ReaderKindFor(filename string) Kind {
	if ByFilename(filename) == ObjC {
		return KindObjC
	}
	return KindCLike
}

// Kind mirrors reader.Kind without importing internal/reader, so that
// internal/discover (which has no business constructing readers) can depend
// on langselect alone.
type Kind int

const (
	KindCLike Kind = iota
	KindObjC
)
