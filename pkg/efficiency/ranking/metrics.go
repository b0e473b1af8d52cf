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
	"github.com/uber-go/tally"
)

// Metrics is a placeholder for all metrics in ranking.
type Metrics struct {
	RankSuccess tally.Counter
	RankFail    tally.Counter

	ExcludedIneligible tally.Counter
	ExcludedUndefined  tally.Counter

	// Ranked tracks how many entities the latest request actually ranked
	// after exclusions.
	Ranked tally.Gauge
}

// NewMetrics returns a new instance of ranking.Metrics.
func NewMetrics(scope tally.Scope) *Metrics {
	successScope := scope.Tagged(map[string]string{"result": "success"})
	failScope := scope.Tagged(map[string]string{"result": "fail"})
	excludedScope := scope.SubScope("excluded")

	return &Metrics{
		RankSuccess: successScope.Counter("rank"),
		RankFail:    failScope.Counter("rank"),

		ExcludedIneligible: excludedScope.Counter("ineligible"),
		ExcludedUndefined:  excludedScope.Counter("undefined"),

		Ranked: scope.Gauge("ranked"),
	}
}
