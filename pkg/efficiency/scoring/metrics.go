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

package scoring

import (
	"github.com/uber-go/tally"
)

// Metrics is a placeholder for all metrics in scoring.
type Metrics struct {
	ScoreSuccess tally.Counter
	ScoreFail    tally.Counter

	InvalidRecord     tally.Counter
	DivisionUndefined tally.Counter
}

// NewMetrics returns a new instance of scoring.Metrics.
func NewMetrics(scope tally.Scope) *Metrics {
	successScope := scope.Tagged(map[string]string{"result": "success"})
	failScope := scope.Tagged(map[string]string{"result": "fail"})

	return &Metrics{
		ScoreSuccess: successScope.Counter("score"),
		ScoreFail:    failScope.Counter("score"),

		InvalidRecord:     failScope.Counter("invalid_record"),
		DivisionUndefined: failScope.Counter("division_undefined"),
	}
}
