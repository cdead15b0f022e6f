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

package reader

// objCDecToImp overrides the C-like DEC_TO_IMP transition: a leading '+'
// or '-' signals an Objective-C method definition, so control reverts to
// GLOBAL and the selector name gets captured as the function name by the
// selector-building states below.
func (r *Reader) objCDecToImp(tok string) {
	if tok == "+" || tok == "-" {
		r.state = stateGlobal
		return
	}
	r.decToImp(tok)
	if r.state == stateGlobal {
		r.state = stateObjCDecBegin
		r.builder.StartNewFunction(tok, r.currentLine)
	}
}

func (r *Reader) objCDecBegin(tok string) {
	switch tok {
	case ":":
		r.state = stateObjCDec
		r.builder.AddToFunctionName(tok)
	case "{":
		r.brCount = 1
		r.state = stateImp
	default:
		r.state = stateGlobal
	}
}

func (r *Reader) objCDec(tok string) {
	switch tok {
	case "(":
		r.state = stateObjCParamType
		r.builder.AddToLongFunctionName(tok)
	case ",":
		// ignored
	case "{":
		r.brCount = 1
		r.state = stateImp
	default:
		r.state = stateObjCDecBegin
		r.builder.AddToFunctionName(" " + tok)
	}
}

func (r *Reader) objCParamType(tok string) {
	if tok == ")" {
		r.state = stateObjCParam
	}
	r.builder.AddToLongFunctionName(" " + tok)
}

func (r *Reader) objCParam(string) {
	r.state = stateObjCDec
}
