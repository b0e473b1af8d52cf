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

package common

import "time"

const (
	// Jobstats is the service name, used to root metric scopes and to tag
	// log output.
	Jobstats = "jobstats"

	// DateLayout is the canonical calendar day format used in logs and
	// store queries.
	DateLayout = "2006-01-02"

	// MetricFlushInterval controls how often locally buffered metrics are
	// flushed to the configured reporter.
	MetricFlushInterval = 1 * time.Second
)
