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

// Package aggregate merges per-day usage records into window totals and
// per-day score series. All functions are pure and carry no state, so they
// are safe for concurrent use.
package aggregate

import (
	"sort"
	"time"

	"github.com/uber/jobstats/pkg/common"
	"github.com/uber/jobstats/pkg/efficiency/scoring"
	"github.com/uber/jobstats/pkg/efficiency/usage"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// DateScore pairs one calendar day with the score components computed from
// that day's usage alone.
type DateScore struct {
	Date       time.Time
	Components scoring.Components
}

// Sum merges the window's records into one combined usage record. Field
// summation commutes, so input order never changes the result.
func Sum(records []usage.Dated) usage.Record {
	var total usage.Record
	for _, r := range records {
		total = total.Add(r.Usage)
	}
	return total
}

// Total sums the window and scores the combined record. An empty window,
// or one whose summed denominators stay zero, fails with the calculator's
// division error so callers can surface a not yet comparable result
// instead of a made up zero.
func Total(calc *scoring.Calculator, records []usage.Dated) (scoring.Components, error) {
	return calc.ScoreDetailed(Sum(records))
}

// ByDate groups the window's records by calendar day, sums records sharing
// a day, and scores each day independently. Days come back in ascending
// date order. A day with no recorded usage is absent data, not a zero
// efficiency day, and is left out. A day whose score arithmetic is
// undefined is likewise excluded rather than failing the entire window.
// Negative usage fields fail the call.
func ByDate(calc *scoring.Calculator, records []usage.Dated) ([]DateScore, error) {
	merged := make(map[time.Time]usage.Record)
	for _, r := range records {
		day := usage.Day(r.Date)
		merged[day] = merged[day].Add(r.Usage)
	}

	days := make([]time.Time, 0, len(merged))
	for day := range merged {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})

	var result []DateScore
	for _, day := range days {
		record := merged[day]
		if record.Empty() {
			continue
		}

		components, err := calc.ScoreDetailed(record)
		if err != nil {
			if scoring.IsDivisionUndefined(err) {
				log.WithFields(log.Fields{
					"date":  day.Format(common.DateLayout),
					"usage": record.String(),
				}).Debug("Excluding day with undefined score from date series")
				continue
			}
			return nil, errors.Wrapf(err, "invalid usage on %s", day.Format(common.DateLayout))
		}

		result = append(result, DateScore{Date: day, Components: components})
	}
	return result, nil
}
