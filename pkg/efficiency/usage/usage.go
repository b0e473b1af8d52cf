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

package usage

import (
	"fmt"
	"math"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Epsilon is the minimum quantity the engine recognizes as non-zero.
// Usage quantities below it are treated as absent data.
const Epsilon float64 = 0.0009

// ErrNegativeField marks a usage record carrying a negative quantity.
// Callers must not score such a record.
var ErrNegativeField = errors.New("usage field is negative")

// Record is a non-thread safe value struct holding one entity's resource
// consumption over a single period, either one day or a summed window.
// Units are opaque to the engine since ratios only ever divide like by like.
type Record struct {
	MemoryUsed      float64
	MemoryRequested float64
	CPUTimeUsed     float64
	CoresRequested  float64
	TimeUsed        float64
	TimeRequested   float64
}

// GetMemoryUsed returns the consumed memory quantity.
func (r Record) GetMemoryUsed() float64 {
	return r.MemoryUsed
}

// GetMemoryRequested returns the requested memory quantity.
func (r Record) GetMemoryRequested() float64 {
	return r.MemoryRequested
}

// GetCPUTimeUsed returns the consumed CPU time.
func (r Record) GetCPUTimeUsed() float64 {
	return r.CPUTimeUsed
}

// GetCoresRequested returns the requested core count.
func (r Record) GetCoresRequested() float64 {
	return r.CoresRequested
}

// GetTimeUsed returns the consumed wall-clock time.
func (r Record) GetTimeUsed() float64 {
	return r.TimeUsed
}

// GetTimeRequested returns the requested wall-clock time limit.
func (r Record) GetTimeRequested() float64 {
	return r.TimeRequested
}

// Add sums another usage record onto the current one field by field and
// returns the result as a new copy.
func (r Record) Add(other Record) Record {
	return Record{
		MemoryUsed:      r.MemoryUsed + other.MemoryUsed,
		MemoryRequested: r.MemoryRequested + other.MemoryRequested,
		CPUTimeUsed:     r.CPUTimeUsed + other.CPUTimeUsed,
		CoresRequested:  r.CoresRequested + other.CoresRequested,
		TimeUsed:        r.TimeUsed + other.TimeUsed,
		TimeRequested:   r.TimeRequested + other.TimeRequested,
	}
}

// Eligible reports whether the record can be scored at all. Every requested
// quantity must be positive; a record that requested nothing is not yet
// comparable, which is different from being zero percent efficient.
func (r Record) Eligible() bool {
	return r.MemoryRequested > Epsilon &&
		r.CoresRequested > Epsilon &&
		r.TimeRequested > Epsilon
}

// Validate checks every field for a negative quantity and reports all
// violations in one combined error. A nil return means the record is safe
// to hand to the score calculator.
func (r Record) Validate() error {
	var err error
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"memory_used", r.MemoryUsed},
		{"memory_requested", r.MemoryRequested},
		{"cpu_time_used", r.CPUTimeUsed},
		{"cores_requested", r.CoresRequested},
		{"time_used", r.TimeUsed},
		{"time_requested", r.TimeRequested},
	} {
		if f.value < 0 {
			err = multierr.Append(err, errors.Wrapf(ErrNegativeField, "%s = %v", f.name, f.value))
		}
	}
	return err
}

// IsInvalid reports whether err was caused by a negative usage field,
// unwrapping annotation layers and combined validation errors along the way.
func IsInvalid(err error) bool {
	for _, e := range multierr.Errors(errors.Cause(err)) {
		if errors.Cause(e) == ErrNegativeField {
			return true
		}
	}
	return false
}

// NonEmptyFields returns the names of fields holding a recognizable quantity.
func (r Record) NonEmptyFields() []string {
	var nonEmptyFields []string
	if math.Abs(r.MemoryUsed) > Epsilon {
		nonEmptyFields = append(nonEmptyFields, "memory_used")
	}
	if math.Abs(r.MemoryRequested) > Epsilon {
		nonEmptyFields = append(nonEmptyFields, "memory_requested")
	}
	if math.Abs(r.CPUTimeUsed) > Epsilon {
		nonEmptyFields = append(nonEmptyFields, "cpu_time_used")
	}
	if math.Abs(r.CoresRequested) > Epsilon {
		nonEmptyFields = append(nonEmptyFields, "cores_requested")
	}
	if math.Abs(r.TimeUsed) > Epsilon {
		nonEmptyFields = append(nonEmptyFields, "time_used")
	}
	if math.Abs(r.TimeRequested) > Epsilon {
		nonEmptyFields = append(nonEmptyFields, "time_requested")
	}

	return nonEmptyFields
}

// Empty returns whether all fields are empty now. An empty record stands for
// a day on which no job ran, not for a zero-efficiency day.
func (r Record) Empty() bool {
	return len(r.NonEmptyFields()) == 0
}

// String returns a formatted string for a usage record.
func (r Record) String() string {
	return fmt.Sprintf("MEM:%.2f/%.2f CPUTIME:%.2f CORES:%.2f TIME:%.2f/%.2f",
		r.GetMemoryUsed(), r.GetMemoryRequested(),
		r.GetCPUTimeUsed(), r.GetCoresRequested(),
		r.GetTimeUsed(), r.GetTimeRequested())
}

// Dated pairs a usage record with the calendar day it was recorded on.
type Dated struct {
	Date  time.Time
	Usage Record
}

// Day normalizes a timestamp to its UTC calendar day so records from the
// same day always group together regardless of the clock time they carry.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
