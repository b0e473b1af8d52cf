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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	testTable := []struct {
		input    string
		expected Timeframe
	}{
		{"W", Week},
		{"M", Month},
		{"Q", Quarter},
		{"", Week},
		{"m", Week},
		{"year", Week},
	}

	for _, tt := range testTable {
		assert.Equal(t, tt.expected, Parse(tt.input), "input %q", tt.input)
	}
}

func TestDays(t *testing.T) {
	assert.Equal(t, 7, Week.Days())
	assert.Equal(t, 31, Month.Days())
	assert.Equal(t, 100, Quarter.Days())
}

func TestSince(t *testing.T) {
	now := time.Date(2019, 7, 14, 15, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2019, 7, 7, 0, 0, 0, 0, time.UTC), Week.Since(now))
	assert.Equal(t, time.Date(2019, 6, 13, 0, 0, 0, 0, time.UTC), Month.Since(now))
	assert.Equal(t, time.Date(2019, 4, 5, 0, 0, 0, 0, time.UTC), Quarter.Since(now))
}

func TestString(t *testing.T) {
	assert.Equal(t, "W", Week.String())
	assert.Equal(t, "M", Month.String())
	assert.Equal(t, "Q", Quarter.String())
}
