// Copyright (c) 2019 Uber Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ranking

import "sort"

type lessFunc func(p1, p2 RankedEntity) bool

// multiKeySorter implements sort.Interface, ordering ranked entities by a
// prioritized list of less functions.
type multiKeySorter struct {
	entities []RankedEntity
	less     []lessFunc
}

// orderedBy returns a multiKeySorter that sorts using the less functions,
// "in order". Call its Sort method to sort the data.
func orderedBy(less ...lessFunc) *multiKeySorter {
	return &multiKeySorter{
		less: less,
	}
}

// Sort sorts the slice according to the less functions passed to orderedBy.
func (ms *multiKeySorter) Sort(entities []RankedEntity) {
	ms.entities = entities
	sort.Sort(ms)
}

// Len is part of sort.Interface.
func (ms *multiKeySorter) Len() int {
	return len(ms.entities)
}

// Swap is part of sort.Interface.
func (ms *multiKeySorter) Swap(i, j int) {
	ms.entities[i], ms.entities[j] = ms.entities[j], ms.entities[i]
}

// Less is part of sort.Interface. It is implemented by looping along the
// less functions until it finds a comparison that discriminates between
// the two entities (one is less than the other).
func (ms *multiKeySorter) Less(i, j int) bool {
	p, q := ms.entities[i], ms.entities[j]
	// Try all but the last comparison.
	var k int
	for k = 0; k < len(ms.less)-1; k++ {
		less := ms.less[k]
		switch {
		case less(p, q):
			// p < q, so we have a decision.
			return true
		case less(q, p):
			// p > q, so we have a decision.
			return false
		}
		// p == q; try the next comparison.
	}
	// All comparisons to here said "equal", so just return whatever
	// the final comparison reports.
	return ms.less[k](p, q)
}
