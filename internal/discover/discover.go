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

// Package discover walks a set of root paths and yields the source files
// ccmetrics should analyze: recursively, filtered by recognized extension,
// filtered by exclusion glob, and optionally de-duplicated by content hash.
package discover

import (
	"crypto/md5"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ccmetrics/ccmetrics/internal/collections"
	"github.com/ccmetrics/ccmetrics/internal/langselect"
)

// Options controls a Walk.
type Options struct {
	// Excludes are doublestar glob patterns matched against each
	// candidate's slash-separated path; a match excludes the file.
	Excludes []string
	// Duplicates, when true, skips files whose MD5 content hash duplicates
	// one already seen earlier in the walk.
	Duplicates bool
}

// Result is one discovered, or explicitly rejected-for-visibility, file.
type Result struct {
	Path string
	// Unclassified is true when the file's extension is not recognized by
	// internal/langselect; such files are reported only when the caller
	// asked for an unclassified listing, never analyzed.
	Unclassified bool
	// Hash is the recognized file's MD5 content hash; zero for an
	// Unclassified result, which is never hashed.
	Hash [md5.Size]byte
}

// Walk recursively visits every root (file or directory), returning the
// recognized source files in sorted path order plus, separately, every
// unclassified file encountered (for the "-u/--unclassified" listing).
// A root that does not exist is reported as an error immediately; a file
// skipped by an exclusion glob or duplicate-hash check is silently omitted
// from both slices.
func Walk(roots []string, opts Options) (files []string, unclassified []string, err error) {
	excludeSet := make([]string, len(opts.Excludes))
	copy(excludeSet, opts.Excludes)

	var all []Result

	for _, root := range roots {
		walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			slashPath := filepath.ToSlash(path)
			for _, pattern := range excludeSet {
				matched, mErr := doublestar.Match(pattern, slashPath)
				if mErr != nil {
					return fmt.Errorf("invalid exclude pattern %q: %w", pattern, mErr)
				}
				if matched {
					return nil
				}
			}
			if !langselect.IsRecognized(path) {
				all = append(all, Result{Path: path, Unclassified: true})
				return nil
			}
			sum, hashErr := contentHash(path)
			if hashErr != nil {
				return hashErr
			}
			all = append(all, Result{Path: path, Hash: sum})
			return nil
		})
		if walkErr != nil {
			return nil, nil, walkErr
		}
	}

	// dupHashes holds every content hash that occurs more than once across
	// the walk; a file is only dropped once its hash has already been kept
	// by an earlier file, so the first copy of any duplicated content
	// always survives.
	recognized := collections.FilterSlice(all, func(r Result) bool { return !r.Unclassified })
	hashes := collections.MapSlice(recognized, func(r Result) [md5.Size]byte { return r.Hash })
	dupHashes := collections.ToSet(collections.FindDuplicates(hashes))
	kept := make(collections.Set[[md5.Size]byte])
	for _, r := range all {
		if r.Unclassified {
			unclassified = append(unclassified, r.Path)
			continue
		}
		if opts.Duplicates && dupHashes.Contains(r.Hash) && kept.Contains(r.Hash) {
			continue
		}
		kept.Add(r.Hash)
		files = append(files, r.Path)
	}
	sort.Strings(files)
	sort.Strings(unclassified)
	return files, unclassified, nil
}

// contentHash returns path's MD5 content hash, used to recognize duplicate
// source files regardless of their filename.
func contentHash(path string) ([md5.Size]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return [md5.Size]byte{}, err
	}
	return md5.Sum(content), nil
}
