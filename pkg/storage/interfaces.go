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

package storage

import (
	"context"
	"time"

	"github.com/uber/jobstats/pkg/efficiency/usage"
)

// QueryFilter narrows a usage query. Zero values leave the corresponding
// dimension unconstrained, so the empty filter covers the whole cluster.
type QueryFilter struct {
	// User scopes the query to one user's jobs.
	User string

	// Account scopes the query to one account's jobs.
	Account string

	// Since bounds how far back records are visible, inclusive of the
	// day itself. The zero time imposes no bound.
	Since time.Time
}

// UsageStore is the interface to read recorded job usage. Backends must
// report zero valued fields, never absent ones, for metrics with no
// recorded activity, so that aggregation can tell an idle day apart from
// missing data.
type UsageStore interface {
	// GetUsers returns the names of users with recorded usage matching
	// the filter.
	GetUsers(ctx context.Context, filter QueryFilter) ([]string, error)

	// GetAccounts returns the names of accounts with recorded usage
	// matching the filter.
	GetAccounts(ctx context.Context, filter QueryFilter) ([]string, error)

	// GetUsage returns one combined usage record summed over every period
	// matching the filter.
	GetUsage(ctx context.Context, filter QueryFilter) (usage.Record, error)

	// GetUsageByDate returns one usage record per calendar day matching
	// the filter.
	GetUsageByDate(ctx context.Context, filter QueryFilter) ([]usage.Dated, error)
}
