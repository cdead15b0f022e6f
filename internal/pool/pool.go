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

// Package pool runs an analysis function over a list of filenames with a
// bounded number of concurrent workers. Each file gets its own tokenizer,
// reader, and builder: per spec.md's concurrency model, no state is shared
// across workers.
package pool

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Outcome pairs a filename with whatever its analysis produced: exactly one
// of Result or Err is set.
type Outcome[T any] struct {
	Filename string
	Result   T
	Err      error
}

// Run analyzes every filename with analyze, using at most workers concurrent
// goroutines (runtime.NumCPU() when workers <= 0). A per-file error does not
// abort the run; it is carried on that file's Outcome. The only error Run
// itself returns is ctx's cancellation, since analyze is expected to report
// failures through Outcome rather than through the group's error channel.
//
// Outcomes are returned in the order filenames were given, not completion
// order, so callers that want stable-for-humans output don't need to
// re-sort.
func Run[T any](ctx context.Context, filenames []string, workers int, analyze func(context.Context, string) (T, error)) ([]Outcome[T], error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	outcomes := make([]Outcome[T], len(filenames))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, filename := range filenames {
		g.Go(func() error {
			result, err := analyze(gctx, filename)
			outcomes[i] = Outcome[T]{Filename: filename, Result: result, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return outcomes, nil
}
