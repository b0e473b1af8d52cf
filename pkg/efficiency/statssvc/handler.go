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

// Package statssvc serves efficiency statistics queries, top rankings,
// per entity breakdowns and cluster trends, on top of a usage store. It
// owns no state beyond its collaborators, so a single handler serves any
// number of concurrent requests.
package statssvc

import (
	"context"
	"time"

	"github.com/uber/jobstats/pkg/common"
	"github.com/uber/jobstats/pkg/efficiency/aggregate"
	"github.com/uber/jobstats/pkg/efficiency/namematch"
	"github.com/uber/jobstats/pkg/efficiency/ranking"
	"github.com/uber/jobstats/pkg/efficiency/scoring"
	"github.com/uber/jobstats/pkg/efficiency/timeframe"
	"github.com/uber/jobstats/pkg/storage"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"
)

// EntityKind selects which entity namespace a query runs against.
type EntityKind string

const (
	// Users ranks and resolves individual users.
	Users EntityKind = "users"
	// Accounts ranks and resolves billing accounts.
	Accounts EntityKind = "accounts"
)

// EntityStats is the full efficiency picture for one entity over a window,
// the window total plus the per day series. Score is nil when the window
// holds no comparable usage; the rendering layer shows its own placeholder
// for that case.
type EntityStats struct {
	Name   string
	Score  *scoring.Components
	ByDate []aggregate.DateScore
}

// ServiceHandler implements the jobstats statistics service.
type ServiceHandler struct {
	store   storage.UsageStore
	calc    *scoring.Calculator
	ranker  *ranking.Ranker
	metrics *Metrics
}

// NewServiceHandler creates a new ServiceHandler reading from the given
// store and scoring with the given calculator.
func NewServiceHandler(
	store storage.UsageStore,
	calc *scoring.Calculator,
	parent tally.Scope) *ServiceHandler {
	scope := parent.SubScope("statssvc")
	return &ServiceHandler{
		store:   store,
		calc:    calc,
		ranker:  ranking.NewRanker(calc, scope),
		metrics: NewMetrics(scope),
	}
}

// TopEntities returns the n most efficient entities of the given kind,
// judged on usage recorded since the given day.
func (h *ServiceHandler) TopEntities(
	ctx context.Context,
	kind EntityKind,
	n int,
	since time.Time) ([]ranking.RankedEntity, error) {
	h.metrics.APITopEntities.Inc(1)

	entities, err := h.assembleEntities(ctx, kind, since)
	if err != nil {
		h.metrics.TopEntitiesFail.Inc(1)
		return nil, err
	}

	ranked, err := h.ranker.TopN(entities, n)
	if err != nil {
		h.metrics.TopEntitiesFail.Inc(1)
		return nil, err
	}

	h.metrics.TopEntitiesSuccess.Inc(1)
	log.WithFields(log.Fields{
		"kind":     kind,
		"n":        n,
		"since":    since.Format(common.DateLayout),
		"returned": len(ranked),
	}).Debug("Served top entities")
	return ranked, nil
}

// RankEntities is TopEntities without the cutoff, returning the full
// ordering of every eligible entity of the kind.
func (h *ServiceHandler) RankEntities(
	ctx context.Context,
	kind EntityKind,
	since time.Time) ([]ranking.RankedEntity, error) {
	h.metrics.APIRankEntities.Inc(1)

	entities, err := h.assembleEntities(ctx, kind, since)
	if err != nil {
		h.metrics.RankEntitiesFail.Inc(1)
		return nil, err
	}

	ranked, err := h.ranker.RankAll(entities)
	if err != nil {
		h.metrics.RankEntitiesFail.Inc(1)
		return nil, err
	}

	h.metrics.RankEntitiesSuccess.Inc(1)
	return ranked, nil
}

// EntityStats returns the window total and the per day score series for
// one entity over the given timeframe. A window with no comparable usage
// yields a nil Score rather than an error.
func (h *ServiceHandler) EntityStats(
	ctx context.Context,
	kind EntityKind,
	name string,
	tf timeframe.Timeframe) (*EntityStats, error) {
	h.metrics.APIEntityStats.Inc(1)

	filter, err := filterFor(kind, name, tf.Since(time.Now()))
	if err != nil {
		h.metrics.EntityStatsFail.Inc(1)
		return nil, err
	}
	records, err := h.store.GetUsageByDate(ctx, filter)
	if err != nil {
		h.metrics.EntityStatsFail.Inc(1)
		return nil, errors.Wrapf(err, "failed to read usage for %s %q", kind, name)
	}

	stats := &EntityStats{Name: name}

	total, err := aggregate.Total(h.calc, records)
	switch {
	case err == nil:
		stats.Score = &total
	case scoring.IsDivisionUndefined(err):
		// Nothing comparable in the window. The score stays unset.
	default:
		h.metrics.EntityStatsFail.Inc(1)
		return nil, err
	}

	stats.ByDate, err = aggregate.ByDate(h.calc, records)
	if err != nil {
		h.metrics.EntityStatsFail.Inc(1)
		return nil, err
	}

	h.metrics.EntityStatsSuccess.Inc(1)
	return stats, nil
}

// ClusterStats returns the cluster wide per day score series over the
// given timeframe, with every entity's usage folded together day by day.
func (h *ServiceHandler) ClusterStats(
	ctx context.Context,
	tf timeframe.Timeframe) ([]aggregate.DateScore, error) {
	h.metrics.APIClusterStats.Inc(1)

	records, err := h.store.GetUsageByDate(
		ctx, storage.QueryFilter{Since: tf.Since(time.Now())})
	if err != nil {
		h.metrics.ClusterStatsFail.Inc(1)
		return nil, errors.Wrap(err, "failed to read cluster usage")
	}

	series, err := aggregate.ByDate(h.calc, records)
	if err != nil {
		h.metrics.ClusterStatsFail.Inc(1)
		return nil, err
	}

	h.metrics.ClusterStatsSuccess.Inc(1)
	return series, nil
}

// ResolveEntity finds the entity of the given kind whose name best matches
// a free text query. It fails with namematch.ErrEmptyCandidateSet when no
// names of the kind exist at all; callers fall back to their default view.
func (h *ServiceHandler) ResolveEntity(
	ctx context.Context,
	kind EntityKind,
	query string) (string, error) {
	h.metrics.APIResolveEntity.Inc(1)

	names, err := h.entityNames(ctx, kind, storage.QueryFilter{})
	if err != nil {
		h.metrics.ResolveEntityFail.Inc(1)
		return "", err
	}

	match, err := namematch.BestMatch(query, names)
	if err != nil {
		h.metrics.ResolveEntityFail.Inc(1)
		return "", err
	}

	h.metrics.ResolveEntitySuccess.Inc(1)
	return match, nil
}

// assembleEntities pairs every entity name active in the window with its
// combined usage over the window.
func (h *ServiceHandler) assembleEntities(
	ctx context.Context,
	kind EntityKind,
	since time.Time) ([]ranking.Entity, error) {
	names, err := h.entityNames(ctx, kind, storage.QueryFilter{Since: since})
	if err != nil {
		return nil, err
	}

	entities := make([]ranking.Entity, 0, len(names))
	for _, name := range names {
		filter, err := filterFor(kind, name, since)
		if err != nil {
			return nil, err
		}
		record, err := h.store.GetUsage(ctx, filter)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read usage for %s %q", kind, name)
		}
		entities = append(entities, ranking.Entity{Name: name, Usage: record})
	}
	return entities, nil
}

func (h *ServiceHandler) entityNames(
	ctx context.Context,
	kind EntityKind,
	filter storage.QueryFilter) ([]string, error) {
	switch kind {
	case Users:
		names, err := h.store.GetUsers(ctx, filter)
		return names, errors.Wrap(err, "failed to list users")
	case Accounts:
		names, err := h.store.GetAccounts(ctx, filter)
		return names, errors.Wrap(err, "failed to list accounts")
	}
	return nil, errors.Errorf("unknown entity kind %q", kind)
}

func filterFor(kind EntityKind, name string, since time.Time) (storage.QueryFilter, error) {
	switch kind {
	case Users:
		return storage.QueryFilter{User: name, Since: since}, nil
	case Accounts:
		return storage.QueryFilter{Account: name, Since: since}, nil
	}
	return storage.QueryFilter{}, errors.Errorf("unknown entity kind %q", kind)
}
