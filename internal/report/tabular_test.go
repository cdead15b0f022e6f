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
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ccmetrics/ccmetrics/internal/ucode"
)

func sampleFiles() []*ucode.FileInformation {
	b := ucode.NewBuilder()
	b.StartNewFunction("fun", 1)
	b.NewLine()
	b.Token()
	b.Condition()
	b.EndOfFunction()
	return []*ucode.FileInformation{b.FileInformation("a.c")}
}

func TestPrintDetailsHeaderAndRow(t *testing.T) {
	var buf bytes.Buffer
	PrintDetails(&buf, sampleFiles(), Options{})
	out := buf.String()
	assert.Contains(t, out, "  nloc    CCN  token  param    function@line@file")
	assert.Contains(t, out, "fun@1@a.c")
	assert.Contains(t, out, "1 file analyzed.")
}

func TestPrintDetailsSkippedWhenWarningsOnly(t *testing.T) {
	var buf bytes.Buffer
	PrintDetails(&buf, sampleFiles(), Options{WarningsOnly: true})
	assert.Empty(t, buf.String())
}

func TestPrintWarningsFlagsOverThreshold(t *testing.T) {
	var buf bytes.Buffer
	count := PrintWarnings(&buf, sampleFiles(), Options{CCNThreshold: 1})
	assert.Equal(t, 1, count)
	assert.Contains(t, buf.String(), "Warnings (CCN > 1)")
}

func TestPrintWarningsNoneFound(t *testing.T) {
	var buf bytes.Buffer
	count := PrintWarnings(&buf, sampleFiles(), Options{CCNThreshold: 100})
	assert.Equal(t, 0, count)
	assert.True(t, strings.Contains(buf.String(), "No warning found. Excellent!"))
}

func TestPrintWarningsOnlyLineFormat(t *testing.T) {
	var buf bytes.Buffer
	PrintWarnings(&buf, sampleFiles(), Options{CCNThreshold: 1, WarningsOnly: true})
	out := buf.String()
	assert.Contains(t, out, "a.c:1: warning: fun has 2 CCN and 0 params")
	assert.NotContains(t, out, "Warnings (CCN")
}

func TestPrintTotalSkippedWhenWarningsOnly(t *testing.T) {
	var buf bytes.Buffer
	PrintTotal(&buf, sampleFiles(), 0, Options{WarningsOnly: true})
	assert.Empty(t, buf.String())
}

func TestPrintTotalReportsCounts(t *testing.T) {
	var buf bytes.Buffer
	PrintTotal(&buf, sampleFiles(), 1, Options{CCNThreshold: 1})
	out := buf.String()
	assert.Contains(t, out, "Total nloc  Avg.nloc  Avg CCN  Avg token  Fun Cnt  Warning cnt   Fun Rt   nloc Rt  ")
}
