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

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/uber/jobstats/pkg/common/buildversion"

	"github.com/stretchr/testify/assert"
)

func TestInitMetricScopeNoBackends(t *testing.T) {
	scope, closer, mux := InitMetricScope(&Config{}, "jobstats", 10*time.Millisecond)
	assert.NotNil(t, scope)
	assert.NotNil(t, mux)

	// Counters land in the noop statsd client without blowing up.
	scope.Counter("test_counter").Inc(1)
	scope.Gauge("test_gauge").Update(42.0)

	assert.NoError(t, closer.Close())
}

func TestInitMetricScopeHealthEndpoint(t *testing.T) {
	_, closer, mux := InitMetricScope(nil, "jobstats", 10*time.Millisecond)
	defer closer.Close()

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "OK")
}

func TestInitMetricScopeVersionEndpoint(t *testing.T) {
	_, closer, mux := InitMetricScope(nil, "jobstats", 10*time.Millisecond)
	defer closer.Close()

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/version", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, buildversion.Version, w.Body.String())
}

func TestInitMetricScopePrometheus(t *testing.T) {
	cfg := &Config{Prometheus: &prometheusConfig{Enable: true}}
	scope, closer, mux := InitMetricScope(cfg, "jobstats-test", 10*time.Millisecond)
	defer closer.Close()

	scope.Counter("test_counter").Inc(1)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInitMetricScopePrometheusEmitsCounters(t *testing.T) {
	cfg := &Config{Prometheus: &prometheusConfig{Enable: true}}
	scope, closer, mux := InitMetricScope(cfg, "jobstats", 10*time.Millisecond)
	defer closer.Close()

	scope.Counter("requests").Inc(1)

	// Counters allocated through the cached reporter surface on the
	// exposition endpoint after a flush tick.
	assert.Eventually(t, func() bool {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
		return strings.Contains(w.Body.String(), "jobstats_requests 1")
	}, 2*time.Second, 10*time.Millisecond,
		"counter never reached the exposition endpoint")
}
