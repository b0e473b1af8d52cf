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

import (
	"github.com/uber/jobstats/pkg/efficiency/scoring"
	"github.com/uber/jobstats/pkg/efficiency/usage"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"
)

// Entity pairs an entity name with its aggregated usage over the window
// being ranked.
type Entity struct {
	Name  string
	Usage usage.Record
}

// RankedEntity is one row of a ranking result. Rank is the 1-based position
// in the ordering. Rows are constructed fresh per request and never
// persisted.
type RankedEntity struct {
	Rank       int
	Name       string
	Components scoring.Components
}

// Ranker orders entities by their efficiency score, most efficient first.
// It holds no mutable state beyond the calculator it scores with, so one
// instance serves any number of concurrent requests.
type Ranker struct {
	calc    *scoring.Calculator
	metrics *Metrics
}

// NewRanker builds a ranker scoring with the given calculator. Pass
// tally.NoopScope as parent when metrics are not wired up.
func NewRanker(calc *scoring.Calculator, parent tally.Scope) *Ranker {
	return &Ranker{
		calc:    calc,
		metrics: NewMetrics(parent.SubScope("ranking")),
	}
}

// TopN scores the eligible entities and returns the n most efficient, in
// descending order of total score with ties broken by name ascending. A
// non-positive n yields an empty result. Entities that requested no
// resources, and entities whose score arithmetic is undefined, are
// excluded rather than ranked at zero. The input slice is never mutated.
// Negative usage fields fail the whole call.
func (r *Ranker) TopN(entities []Entity, n int) ([]RankedEntity, error) {
	ranked, err := r.rank(entities)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		n = 0
	}
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked, nil
}

// RankAll is TopN without the cutoff, returning every eligible entity in
// ranked order.
func (r *Ranker) RankAll(entities []Entity) ([]RankedEntity, error) {
	return r.rank(entities)
}

func (r *Ranker) rank(entities []Entity) ([]RankedEntity, error) {
	ranked := make([]RankedEntity, 0, len(entities))
	for _, entity := range entities {
		if !entity.Usage.Eligible() {
			r.metrics.ExcludedIneligible.Inc(1)
			log.WithField("name", entity.Name).
				Debug("Excluding entity that requested no resources from ranking")
			continue
		}

		components, err := r.calc.ScoreDetailed(entity.Usage)
		if err != nil {
			if scoring.IsDivisionUndefined(err) {
				r.metrics.ExcludedUndefined.Inc(1)
				log.WithFields(log.Fields{
					"name":  entity.Name,
					"usage": entity.Usage.String(),
				}).Debug("Excluding entity with undefined score from ranking")
				continue
			}
			r.metrics.RankFail.Inc(1)
			return nil, errors.Wrapf(err, "cannot rank %q", entity.Name)
		}

		ranked = append(ranked, RankedEntity{
			Name:       entity.Name,
			Components: components,
		})
	}

	byScore := func(p1, p2 RankedEntity) bool {
		return p1.Components.Total > p2.Components.Total
	}
	byName := func(p1, p2 RankedEntity) bool {
		return p1.Name < p2.Name
	}
	orderedBy(byScore, byName).Sort(ranked)

	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	r.metrics.RankSuccess.Inc(1)
	r.metrics.Ranked.Update(float64(len(ranked)))
	return ranked, nil
}
