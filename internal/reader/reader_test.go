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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccmetrics/ccmetrics/internal/token"
)

func TestScenario1_EmptyFunction(t *testing.T) {
	r := NewCLike(false)
	fi, err := r.Generate("t.c", "int fun(){}\n", token.Tokenize([]byte("int fun(){}\n")))
	require.NoError(t, err)
	require.Len(t, fi.FunctionList, 1)
	fn := fi.FunctionList[0]
	assert.Equal(t, "fun", fn.Name)
	assert.Equal(t, 1, fn.CyclomaticComplexity)
	assert.Equal(t, 0, fn.ParameterCount)
	assert.Equal(t, 1, fi.NLOC) // file-level: one source line
}

func TestScenario2_Parameters(t *testing.T) {
	src := "int fun(aa * bb, cc dd){}\n"
	r := NewCLike(false)
	fi, err := r.Generate("t.c", src, token.Tokenize([]byte(src)))
	require.NoError(t, err)
	require.Len(t, fi.FunctionList, 1)
	fn := fi.FunctionList[0]
	assert.Equal(t, 2, fn.ParameterCount)
	assert.Equal(t, "fun( aa * bb , cc dd)", fn.LongName)
}

func TestScenario3_ComplexityFromConditions(t *testing.T) {
	src := "int fun(){if(a&&b){c;}}\n"
	r := NewCLike(false)
	fi, err := r.Generate("t.c", src, token.Tokenize([]byte(src)))
	require.NoError(t, err)
	require.Len(t, fi.FunctionList, 1)
	assert.Equal(t, 3, fi.FunctionList[0].CyclomaticComplexity)
}

func TestScenario4_DestructorAndFreeFunction(t *testing.T) {
	src := "class c {~c(){}}; int d(){}\n"
	r := NewCLike(false)
	fi, err := r.Generate("t.cc", src, token.Tokenize([]byte(src)))
	require.NoError(t, err)
	require.Len(t, fi.FunctionList, 2)
	// The destructor's name loses its "~" and any class qualifier: GLOBAL
	// replaces the cursor on every plain token (including "{" and "~"), so
	// only the last bare identifier before "(" survives as the name.
	assert.Equal(t, "c", fi.FunctionList[0].Name)
	assert.Equal(t, "d", fi.FunctionList[1].Name)
}

func TestScenario5_OperatorOverload(t *testing.T) {
	src := "bool TC::operator ()(int b){}\n"
	r := NewCLike(false)
	fi, err := r.Generate("t.cc", src, token.Tokenize([]byte(src)))
	require.NoError(t, err)
	require.Len(t, fi.FunctionList, 1)
	assert.Equal(t, "TC::operator ( )", fi.FunctionList[0].Name)
}

func TestScenario6_ConstructorInitializerList(t *testing.T) {
	src := "A::A():a(1),b{2}{}\n"
	r := NewCLike(false)
	fi, err := r.Generate("t.cc", src, token.Tokenize([]byte(src)))
	require.NoError(t, err)
	require.Len(t, fi.FunctionList, 1)
	assert.Equal(t, "A::A", fi.FunctionList[0].Name)
}

func TestScenario7_PreprocessorLinesCountTowardFileNLOC(t *testing.T) {
	src := "#ifdef X\n#endif\nvoid f(){}\n"
	r := NewCLike(false)
	fi, err := r.Generate("t.c", src, token.Tokenize([]byte(src)))
	require.NoError(t, err)
	require.Len(t, fi.FunctionList, 1)
	assert.Equal(t, "f", fi.FunctionList[0].Name)
	assert.Equal(t, 3, fi.NLOC)
}

func TestScenario8_DeclarationIsNotAFunction(t *testing.T) {
	src := "int fun() throw();void foo(){}\n"
	r := NewCLike(false)
	fi, err := r.Generate("t.cc", src, token.Tokenize([]byte(src)))
	require.NoError(t, err)
	require.Len(t, fi.FunctionList, 1)
	assert.Equal(t, "foo", fi.FunctionList[0].Name)
}

func TestScenario9_ObjCSimpleMethod(t *testing.T) {
	src := "-(void) foo {}\n"
	r := NewObjC(false)
	fi, err := r.Generate("t.m", src, token.Tokenize([]byte(src)))
	require.NoError(t, err)
	require.Len(t, fi.FunctionList, 1)
	assert.Equal(t, "foo", fi.FunctionList[0].Name)
}

func TestScenario10_ObjCMultiArgSelector(t *testing.T) {
	src := "- (BOOL)scanJSONObject:(id *)outObject error:(NSError **)outError {}\n"
	r := NewObjC(false)
	fi, err := r.Generate("t.m", src, token.Tokenize([]byte(src)))
	require.NoError(t, err)
	require.Len(t, fi.FunctionList, 1)
	assert.Equal(t, "scanJSONObject: error:", fi.FunctionList[0].Name)
}

func TestNoPreprocessorCountDropsIfElifFromConditions(t *testing.T) {
	src := "int fun(){if(a){b;}\n#if X\nc;\n#endif\n}\n"
	withCount := NewCLike(false)
	fiWith, err := withCount.Generate("t.c", src, token.Tokenize([]byte(src)))
	require.NoError(t, err)

	withoutCount := NewCLike(true)
	fiWithout, err := withoutCount.Generate("t.c", src, token.Tokenize([]byte(src)))
	require.NoError(t, err)

	require.Len(t, fiWith.FunctionList, 1)
	require.Len(t, fiWithout.FunctionList, 1)
	assert.Greater(t, fiWith.FunctionList[0].CyclomaticComplexity, fiWithout.FunctionList[0].CyclomaticComplexity)
}

func TestUnterminatedFunctionIsNotEmitted(t *testing.T) {
	src := "int fun(){\n"
	r := NewCLike(false)
	fi, err := r.Generate("t.c", src, token.Tokenize([]byte(src)))
	require.NoError(t, err)
	assert.Empty(t, fi.FunctionList)
}

func TestFunctionOrderingIsByClosingBrace(t *testing.T) {
	src := "int fun(){}\nint fun1(){}\n"
	r := NewCLike(false)
	fi, err := r.Generate("t.c", src, token.Tokenize([]byte(src)))
	require.NoError(t, err)
	require.Len(t, fi.FunctionList, 2)
	assert.Equal(t, "fun", fi.FunctionList[0].Name)
	assert.Equal(t, "fun1", fi.FunctionList[1].Name)
	assert.Equal(t, 1, fi.FunctionList[0].StartLine)
	assert.Equal(t, 2, fi.FunctionList[1].StartLine)
}
