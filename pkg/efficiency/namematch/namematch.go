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

// Package namematch resolves a free text query against a candidate set of
// entity names by sequence similarity. It is a plain linear scan, which is
// all the intended candidate volumes of tens to low hundreds of names call
// for.
package namematch

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ErrEmptyCandidateSet marks a resolution attempt against no candidates.
// Callers translate it into their own no results response.
var ErrEmptyCandidateSet = errors.New("candidate set is empty")

// Ratio returns a similarity measure for two strings in [0.0, 1.0], where
// 1.0 means identical. It is the Ratcliff-Obershelp measure: twice the
// number of runes covered by the recursively found longest common
// substrings, divided by the combined length. Two empty strings count as
// identical.
func Ratio(query, candidate string) float64 {
	a, b := []rune(query), []rune(candidate)
	if len(a)+len(b) == 0 {
		return 1.0
	}
	return 2.0 * float64(matchingTotal(a, b)) / float64(len(a)+len(b))
}

// BestMatch returns the candidate most similar to query. The first
// candidate attaining the maximum ratio wins, so resolution is
// deterministic in the order the candidates were supplied.
func BestMatch(query string, candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", ErrEmptyCandidateSet
	}

	best := candidates[0]
	bestRatio := Ratio(query, best)
	for _, candidate := range candidates[1:] {
		if r := Ratio(query, candidate); r > bestRatio {
			best, bestRatio = candidate, r
		}
	}

	log.WithFields(log.Fields{
		"query": query,
		"match": best,
		"ratio": bestRatio,
	}).Debug("Resolved best matching name")
	return best, nil
}

// span is a window into both rune sequences still awaiting matching.
type span struct {
	alo, ahi int
	blo, bhi int
}

// matchingTotal counts the runes covered by the longest common substring
// of a and b plus, recursively, of the pieces to its left and right.
func matchingTotal(a, b []rune) int {
	b2j := make(map[rune][]int, len(b))
	for j, r := range b {
		b2j[r] = append(b2j[r], j)
	}

	total := 0
	queue := []span{{0, len(a), 0, len(b)}}
	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		besti, bestj, bestsize := longestMatch(a, b2j, s)
		if bestsize == 0 {
			continue
		}
		total += bestsize
		queue = append(queue,
			span{s.alo, besti, s.blo, bestj},
			span{besti + bestsize, s.ahi, bestj + bestsize, s.bhi})
	}
	return total
}

// longestMatch finds the longest block of matching runes inside the given
// window. Ties go to the match starting earliest in a, then earliest in b,
// which keeps resolution deterministic.
func longestMatch(a []rune, b2j map[rune][]int, s span) (besti, bestj, bestsize int) {
	besti, bestj = s.alo, s.blo

	// j2len[j] holds the length of the match ending at a[i-1] and b[j],
	// rebuilt for every i.
	j2len := make(map[int]int)
	for i := s.alo; i < s.ahi; i++ {
		newj2len := make(map[int]int)
		for _, j := range b2j[a[i]] {
			if j < s.blo {
				continue
			}
			if j >= s.bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}
	return besti, bestj, bestsize
}
