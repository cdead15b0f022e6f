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

package pool

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPreservesInputOrder(t *testing.T) {
	files := []string{"a.c", "b.c", "c.c", "d.c"}
	outcomes, err := Run(context.Background(), files, 2, func(_ context.Context, f string) (int, error) {
		return len(f), nil
	})
	require.NoError(t, err)
	require.Len(t, outcomes, len(files))
	for i, f := range files {
		assert.Equal(t, f, outcomes[i].Filename)
		assert.NoError(t, outcomes[i].Err)
	}
}

func TestRunCarriesPerFileErrorsWithoutAbortingOthers(t *testing.T) {
	files := []string{"ok1.c", "bad.c", "ok2.c"}
	boom := errors.New("boom")
	outcomes, err := Run(context.Background(), files, 2, func(_ context.Context, f string) (string, error) {
		if f == "bad.c" {
			return "", boom
		}
		return f, nil
	})
	require.NoError(t, err)
	require.Len(t, outcomes, 3)
	assert.Equal(t, "ok1.c", outcomes[0].Result)
	assert.ErrorIs(t, outcomes[1].Err, boom)
	assert.Equal(t, "ok2.c", outcomes[2].Result)
}

func TestRunRespectsWorkerLimit(t *testing.T) {
	var current, maxSeen int32
	files := make([]string, 20)
	for i := range files {
		files[i] = "f.c"
	}
	_, err := Run(context.Background(), files, 3, func(_ context.Context, _ string) (struct{}, error) {
		n := atomic.AddInt32(&current, 1)
		for {
			old := atomic.LoadInt32(&maxSeen)
			if n <= old || atomic.CompareAndSwapInt32(&maxSeen, old, n) {
				break
			}
		}
		atomic.AddInt32(&current, -1)
		return struct{}{}, nil
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, int(maxSeen), 3)
}

func TestRunDefaultsWorkersWhenNonPositive(t *testing.T) {
	outcomes, err := Run(context.Background(), []string{"a.c"}, 0, func(_ context.Context, f string) (string, error) {
		return f, nil
	})
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, "a.c", outcomes[0].Result)
}
