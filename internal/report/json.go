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
	"encoding/json"

	"github.com/ccmetrics/ccmetrics/internal/ucode"
)

type jsonFunction struct {
	Name                 string   `json:"name"`
	LongName             string   `json:"long_name"`
	StartLine            int      `json:"start_line"`
	CyclomaticComplexity int      `json:"cyclomatic_complexity"`
	NLOC                 int      `json:"nloc"`
	TokenCount           int      `json:"token_count"`
	ParameterCount       int      `json:"parameter_count"`
	Parameters           []string `json:"parameters"`
}

type jsonFile struct {
	Filename  string         `json:"filename"`
	NLOC      int            `json:"nloc"`
	Functions []jsonFunction `json:"functions"`
}

// JSON renders files as a list of per-file objects, one per analyzed file,
// each carrying its function list. Marshaled with indentation for
// readability on the "-j/--json" flag's output.
func JSON(files []*ucode.FileInformation) ([]byte, error) {
	out := make([]jsonFile, len(files))
	for i, f := range files {
		jf := jsonFile{Filename: f.Filename, NLOC: f.NLOC, Functions: make([]jsonFunction, len(f.FunctionList))}
		for j, fn := range f.FunctionList {
			jf.Functions[j] = jsonFunction{
				Name:                 fn.Name,
				LongName:             fn.LongName,
				StartLine:            fn.StartLine,
				CyclomaticComplexity: fn.CyclomaticComplexity,
				NLOC:                 fn.NLOC,
				TokenCount:           fn.TokenCount,
				ParameterCount:       fn.ParameterCount,
				Parameters:           fn.Parameters,
			}
		}
		out[i] = jf
	}
	return json.MarshalIndent(out, "", "  ")
}
