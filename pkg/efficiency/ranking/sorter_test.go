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
	"testing"

	"github.com/uber/jobstats/pkg/efficiency/scoring"

	"github.com/stretchr/testify/suite"
)

type MultiKeySorterTestSuite struct {
	suite.Suite
}

func TestMultiKeySorterTestSuite(t *testing.T) {
	suite.Run(t, new(MultiKeySorterTestSuite))
}

// TestSorting tests the sorting based on the order specified.
func (suite *MultiKeySorterTestSuite) TestSorting() {
	entities := []RankedEntity{
		{Name: "carol", Components: scoring.Components{Total: 50.0}},
		{Name: "alice", Components: scoring.Components{Total: 90.0}},
		{Name: "bob", Components: scoring.Components{Total: 50.0}},
		{Name: "dave", Components: scoring.Components{Total: 70.0}},
	}

	byScore := func(p1, p2 RankedEntity) bool {
		return p1.Components.Total > p2.Components.Total
	}
	byName := func(p1, p2 RankedEntity) bool {
		return p1.Name < p2.Name
	}

	orderedBy(byScore, byName).Sort(entities)

	suite.Equal("alice", entities[0].Name)
	suite.Equal("dave", entities[1].Name)
	suite.Equal("bob", entities[2].Name)
	suite.Equal("carol", entities[3].Name)
}

// TestSortingFallsThroughAllKeys verifies that every tied comparison defers
// to the next less function in order.
func (suite *MultiKeySorterTestSuite) TestSortingFallsThroughAllKeys() {
	entities := []RankedEntity{
		{Name: "bob", Components: scoring.Components{Total: 50.0, Memory: 0.5, CPU: 0.9}},
		{Name: "alice", Components: scoring.Components{Total: 50.0, Memory: 0.5, CPU: 0.9}},
		{Name: "carol", Components: scoring.Components{Total: 50.0, Memory: 0.5, CPU: 0.2}},
	}

	byScore := func(p1, p2 RankedEntity) bool {
		return p1.Components.Total > p2.Components.Total
	}
	byMemory := func(p1, p2 RankedEntity) bool {
		return p1.Components.Memory < p2.Components.Memory
	}
	byCPU := func(p1, p2 RankedEntity) bool {
		return p1.Components.CPU < p2.Components.CPU
	}
	byName := func(p1, p2 RankedEntity) bool {
		return p1.Name < p2.Name
	}

	orderedBy(byScore, byMemory, byCPU, byName).Sort(entities)

	suite.Equal("carol", entities[0].Name)
	suite.Equal("alice", entities[1].Name)
	suite.Equal("bob", entities[2].Name)
}
