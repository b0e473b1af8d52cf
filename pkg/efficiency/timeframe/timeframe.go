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

package timeframe

import (
	"time"

	"github.com/uber/jobstats/pkg/efficiency/usage"
)

// Timeframe selects how far back a usage query reaches.
type Timeframe string

const (
	// Week covers the trailing seven days and is the default view.
	Week Timeframe = "W"
	// Month covers the trailing thirty one days.
	Month Timeframe = "M"
	// Quarter covers the trailing hundred days.
	Quarter Timeframe = "Q"
)

// Parse maps a caller supplied timeframe string onto a known window.
// Anything unrecognized falls back to Week rather than failing, so a
// mistyped query still renders the default view.
func Parse(s string) Timeframe {
	switch Timeframe(s) {
	case Month:
		return Month
	case Quarter:
		return Quarter
	default:
		return Week
	}
}

// Days returns the number of trailing days the timeframe covers.
func (t Timeframe) Days() int {
	switch t {
	case Month:
		return 31
	case Quarter:
		return 100
	default:
		return 7
	}
}

// Since returns the inclusive lower bound of the window that ends on the
// calendar day of now.
func (t Timeframe) Since(now time.Time) time.Time {
	return usage.Day(now).AddDate(0, 0, -t.Days())
}

func (t Timeframe) String() string {
	return string(t)
}
