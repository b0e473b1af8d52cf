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

package statssvc

import (
	"github.com/uber-go/tally"
)

// Metrics is a placeholder for all metrics in statssvc.
type Metrics struct {
	APITopEntities     tally.Counter
	TopEntitiesSuccess tally.Counter
	TopEntitiesFail    tally.Counter

	APIRankEntities     tally.Counter
	RankEntitiesSuccess tally.Counter
	RankEntitiesFail    tally.Counter

	APIEntityStats     tally.Counter
	EntityStatsSuccess tally.Counter
	EntityStatsFail    tally.Counter

	APIClusterStats     tally.Counter
	ClusterStatsSuccess tally.Counter
	ClusterStatsFail    tally.Counter

	APIResolveEntity     tally.Counter
	ResolveEntitySuccess tally.Counter
	ResolveEntityFail    tally.Counter
}

// NewMetrics returns a new instance of statssvc.Metrics.
func NewMetrics(scope tally.Scope) *Metrics {
	apiScope := scope.SubScope("api")
	successScope := scope.Tagged(map[string]string{"result": "success"})
	failScope := scope.Tagged(map[string]string{"result": "fail"})

	return &Metrics{
		APITopEntities:     apiScope.Counter("top_entities"),
		TopEntitiesSuccess: successScope.Counter("top_entities"),
		TopEntitiesFail:    failScope.Counter("top_entities"),

		APIRankEntities:     apiScope.Counter("rank_entities"),
		RankEntitiesSuccess: successScope.Counter("rank_entities"),
		RankEntitiesFail:    failScope.Counter("rank_entities"),

		APIEntityStats:     apiScope.Counter("entity_stats"),
		EntityStatsSuccess: successScope.Counter("entity_stats"),
		EntityStatsFail:    failScope.Counter("entity_stats"),

		APIClusterStats:     apiScope.Counter("cluster_stats"),
		ClusterStatsSuccess: successScope.Counter("cluster_stats"),
		ClusterStatsFail:    failScope.Counter("cluster_stats"),

		APIResolveEntity:     apiScope.Counter("resolve_entity"),
		ResolveEntitySuccess: successScope.Counter("resolve_entity"),
		ResolveEntityFail:    failScope.Counter("resolve_entity"),
	}
}
