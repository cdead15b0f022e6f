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

package collections

import "testing"

func TestFindDuplicatesReportsRepeatedHashes(t *testing.T) {
	hashes := []int{1, 2, 3, 2, 4, 1}
	expected := []int{2, 1}

	result := FindDuplicates(hashes)

	if len(result) != len(expected) {
		t.Fatalf("expected %d duplicates, got %d: %v", len(expected), len(result), result)
	}
	for i := range expected {
		if result[i] != expected[i] {
			t.Errorf("FindDuplicates[%d]: expected %d, got %d", i, expected[i], result[i])
		}
	}
}

func TestFindDuplicatesNilWhenAllUnique(t *testing.T) {
	if result := FindDuplicates([]int{1, 2, 3}); result != nil {
		t.Errorf("expected nil, got %v", result)
	}
}

func TestToSetDedupes(t *testing.T) {
	s := ToSet([]int{1, 2, 2, 3})

	if len(s) != 3 {
		t.Errorf("expected 3 distinct elements, got %d", len(s))
	}
	if !s.Contains(1) || !s.Contains(2) || !s.Contains(3) {
		t.Errorf("expected set to contain 1, 2, 3, got %v", s)
	}
}

// TestSetTracksFirstSeenDuplicate mirrors internal/discover's dedup loop: a
// hash already present in "kept" marks every later file with that hash as a
// duplicate to skip, while the first occurrence survives.
func TestSetTracksFirstSeenDuplicate(t *testing.T) {
	dupHashes := ToSet(FindDuplicates([]int{10, 20, 10}))
	kept := make(Set[int])

	var survivors []int
	for _, hash := range []int{10, 20, 10} {
		if dupHashes.Contains(hash) && kept.Contains(hash) {
			continue
		}
		kept.Add(hash)
		survivors = append(survivors, hash)
	}

	expected := []int{10, 20}
	if len(survivors) != len(expected) {
		t.Fatalf("expected survivors %v, got %v", expected, survivors)
	}
	for i := range expected {
		if survivors[i] != expected[i] {
			t.Errorf("survivors[%d]: expected %d, got %d", i, expected[i], survivors[i])
		}
	}
}
