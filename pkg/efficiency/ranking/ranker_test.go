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
	"github.com/uber/jobstats/pkg/efficiency/usage"

	"github.com/stretchr/testify/suite"
	"github.com/uber-go/tally"
)

type RankerTestSuite struct {
	suite.Suite

	ranker *Ranker
}

func TestRankerTestSuite(t *testing.T) {
	suite.Run(t, new(RankerTestSuite))
}

func (suite *RankerTestSuite) SetupTest() {
	calc, err := scoring.NewCalculator(scoring.Config{}, tally.NoopScope)
	suite.NoError(err)
	suite.ranker = NewRanker(calc, tally.NoopScope)
}

// ratioUsage builds a record scoring the given fraction on every component
// ratio, so its total lands on ratio*100.
func ratioUsage(ratio float64) usage.Record {
	timeUsed := 100 * ratio
	return usage.Record{
		MemoryUsed:      10 * ratio,
		MemoryRequested: 10,
		CPUTimeUsed:     timeUsed * ratio,
		CoresRequested:  1,
		TimeUsed:        timeUsed,
		TimeRequested:   100,
	}
}

func (suite *RankerTestSuite) TestTopNOrdersByScoreDescending() {
	entities := []Entity{
		{Name: "carol", Usage: ratioUsage(0.3)},
		{Name: "alice", Usage: ratioUsage(0.9)},
		{Name: "bob", Usage: ratioUsage(0.6)},
	}

	ranked, err := suite.ranker.TopN(entities, 3)
	suite.NoError(err)
	suite.Len(ranked, 3)

	suite.Equal("alice", ranked[0].Name)
	suite.Equal("bob", ranked[1].Name)
	suite.Equal("carol", ranked[2].Name)
	for i, re := range ranked {
		suite.Equal(i+1, re.Rank)
	}
	for i := 0; i < len(ranked)-1; i++ {
		suite.True(ranked[i].Components.Total >= ranked[i+1].Components.Total)
	}
}

func (suite *RankerTestSuite) TestTopNBreaksTiesByName() {
	entities := []Entity{
		{Name: "carol", Usage: ratioUsage(0.5)},
		{Name: "bob", Usage: ratioUsage(0.5)},
		{Name: "dave", Usage: ratioUsage(0.2)},
		{Name: "alice", Usage: ratioUsage(0.5)},
	}

	ranked, err := suite.ranker.RankAll(entities)
	suite.NoError(err)
	suite.Len(ranked, 4)

	suite.Equal("alice", ranked[0].Name)
	suite.Equal("bob", ranked[1].Name)
	suite.Equal("carol", ranked[2].Name)
	suite.Equal("dave", ranked[3].Name)
}

func (suite *RankerTestSuite) TestTopNDeterministic() {
	entities := []Entity{
		{Name: "alice", Usage: ratioUsage(0.5)},
		{Name: "bob", Usage: ratioUsage(0.5)},
		{Name: "carol", Usage: ratioUsage(0.9)},
		{Name: "dave", Usage: ratioUsage(0.1)},
	}
	permuted := []Entity{entities[3], entities[1], entities[0], entities[2]}

	ranked, err := suite.ranker.TopN(entities, 4)
	suite.NoError(err)
	rankedPermuted, err := suite.ranker.TopN(permuted, 4)
	suite.NoError(err)

	suite.Equal(ranked, rankedPermuted)
}

func (suite *RankerTestSuite) TestTopNCutoff() {
	var entities []Entity
	for _, name := range []string{"alice", "bob", "carol", "dave", "eve"} {
		entities = append(entities, Entity{Name: name, Usage: ratioUsage(0.5)})
	}

	ranked, err := suite.ranker.TopN(entities, 2)
	suite.NoError(err)
	suite.Len(ranked, 2)

	ranked, err = suite.ranker.TopN(entities, 10)
	suite.NoError(err)
	suite.Len(ranked, 5)

	ranked, err = suite.ranker.TopN(entities, 0)
	suite.NoError(err)
	suite.Empty(ranked)

	ranked, err = suite.ranker.TopN(entities, -1)
	suite.NoError(err)
	suite.Empty(ranked)
}

func (suite *RankerTestSuite) TestTopNExcludesIneligible() {
	// carol consumed resources but requested none, so she is not yet
	// comparable rather than zero percent efficient.
	entities := []Entity{
		{Name: "alice", Usage: ratioUsage(0.9)},
		{Name: "bob", Usage: ratioUsage(0.5)},
		{Name: "carol", Usage: usage.Record{
			MemoryUsed:  3.0,
			CPUTimeUsed: 10.0,
			TimeUsed:    5.0,
		}},
	}

	ranked, err := suite.ranker.TopN(entities, 10)
	suite.NoError(err)
	suite.Len(ranked, 2)
	for _, re := range ranked {
		suite.NotEqual("carol", re.Name)
	}

	ranked, err = suite.ranker.RankAll(entities)
	suite.NoError(err)
	suite.Len(ranked, 2)
	for _, re := range ranked {
		suite.NotEqual("carol", re.Name)
	}
}

func (suite *RankerTestSuite) TestTopNExcludesUndefinedScores() {
	// bob requested resources but never ran, leaving his cpu ratio a zero
	// by zero division. He drops out without failing the request.
	entities := []Entity{
		{Name: "alice", Usage: ratioUsage(0.9)},
		{Name: "bob", Usage: usage.Record{
			MemoryRequested: 10.0,
			CoresRequested:  1.0,
			TimeRequested:   100.0,
		}},
	}

	ranked, err := suite.ranker.TopN(entities, 10)
	suite.NoError(err)
	suite.Len(ranked, 1)
	suite.Equal("alice", ranked[0].Name)
}

func (suite *RankerTestSuite) TestRankInvalidUsage() {
	bad := ratioUsage(0.5)
	bad.CPUTimeUsed = -1.0
	entities := []Entity{
		{Name: "alice", Usage: ratioUsage(0.9)},
		{Name: "bob", Usage: bad},
	}

	_, err := suite.ranker.TopN(entities, 10)
	suite.Error(err)
	suite.True(usage.IsInvalid(err))
	suite.Contains(err.Error(), "bob")
}

func (suite *RankerTestSuite) TestTopNDoesNotMutateInput() {
	entities := []Entity{
		{Name: "carol", Usage: ratioUsage(0.3)},
		{Name: "alice", Usage: ratioUsage(0.9)},
		{Name: "bob", Usage: ratioUsage(0.6)},
	}
	original := make([]Entity, len(entities))
	copy(original, entities)

	_, err := suite.ranker.TopN(entities, 2)
	suite.NoError(err)
	suite.Equal(original, entities)
}

// TestWeeklyAccountScenario ranks the aggregated week of three accounts.
// Account B's window record runs at 90 percent on every ratio, A's at 50
// percent, and C requested nothing at all.
func (suite *RankerTestSuite) TestWeeklyAccountScenario() {
	entities := []Entity{
		{Name: "A", Usage: ratioUsage(0.5)},
		{Name: "B", Usage: ratioUsage(0.9)},
		{Name: "C", Usage: usage.Record{
			MemoryUsed:  2.0,
			CPUTimeUsed: 8.0,
			TimeUsed:    4.0,
		}},
	}

	ranked, err := suite.ranker.TopN(entities, 2)
	suite.NoError(err)
	suite.Len(ranked, 2)

	suite.Equal(1, ranked[0].Rank)
	suite.Equal("B", ranked[0].Name)
	suite.InEpsilon(90.0, ranked[0].Components.Total, usage.Epsilon)

	suite.Equal(2, ranked[1].Rank)
	suite.Equal("A", ranked[1].Name)
	suite.InEpsilon(50.0, ranked[1].Components.Total, usage.Epsilon)
}
