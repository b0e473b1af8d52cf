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

package scoring

import (
	"fmt"
	"math"

	"github.com/uber/jobstats/pkg/efficiency/usage"

	"github.com/pkg/errors"
	"github.com/uber-go/tally"
)

// ErrDivisionUndefined marks a score whose arithmetic hit a zero
// denominator. A zero numerator does not rescue it, zero by zero is
// undefined rather than zero efficiency.
var ErrDivisionUndefined = errors.New("division undefined: denominator is zero")

// Components holds the efficiency ratios derived from one usage record.
// The three component ratios are raw fractions, while Total carries the
// published 0-100 percentage scale, already normalized.
type Components struct {
	Memory    float64
	CPU       float64
	TimeLimit float64
	Total     float64
}

// String returns a formatted string for score components.
func (c Components) String() string {
	return fmt.Sprintf("TOTAL:%.1f MEM:%.3f CPU:%.3f TLIMIT:%.3f",
		c.Total, c.Memory, c.CPU, c.TimeLimit)
}

// Calculator converts usage records into efficiency scores. It captures the
// normalization divisor at construction and holds no other state, so a
// single instance is safe for concurrent use from any number of goroutines.
type Calculator struct {
	divisor float64
	metrics *Metrics
}

// NewCalculator builds a calculator from the given normalization config.
// Pass tally.NoopScope as parent when metrics are not wired up.
func NewCalculator(cfg Config, parent tally.Scope) (*Calculator, error) {
	if cfg.Normalize && cfg.IdealScore <= 0 {
		return nil, errors.Errorf(
			"ideal score must be positive when normalization is enabled, got %v",
			cfg.IdealScore)
	}
	return &Calculator{
		divisor: cfg.Divisor(),
		metrics: NewMetrics(parent.SubScope("scoring")),
	}, nil
}

// Divisor returns the normalization divisor the calculator applies.
func (c *Calculator) Divisor() float64 {
	return c.divisor
}

// Score converts one usage record into its total efficiency score on the
// 0-100 scale. It fails with a usage validation error for negative fields
// and with ErrDivisionUndefined when a required denominator is zero.
func (c *Calculator) Score(record usage.Record) (float64, error) {
	components, err := c.ScoreDetailed(record)
	if err != nil {
		return 0, err
	}
	return components.Total, nil
}

// ScoreDetailed converts one usage record into its total score plus the
// three named component ratios for display breakdown. It has no side
// effects beyond metric counters.
func (c *Calculator) ScoreDetailed(record usage.Record) (Components, error) {
	if err := record.Validate(); err != nil {
		c.metrics.InvalidRecord.Inc(1)
		c.metrics.ScoreFail.Inc(1)
		return Components{}, err
	}

	memory, err := ratio(record.MemoryUsed, record.MemoryRequested, "memory_requested")
	if err != nil {
		c.metrics.DivisionUndefined.Inc(1)
		c.metrics.ScoreFail.Inc(1)
		return Components{}, err
	}
	cpu, err := ratio(record.CPUTimeUsed, record.CoresRequested*record.TimeUsed, "cores_requested * time_used")
	if err != nil {
		c.metrics.DivisionUndefined.Inc(1)
		c.metrics.ScoreFail.Inc(1)
		return Components{}, err
	}
	timeLimit, err := ratio(record.TimeUsed, record.TimeRequested, "time_requested")
	if err != nil {
		c.metrics.DivisionUndefined.Inc(1)
		c.metrics.ScoreFail.Inc(1)
		return Components{}, err
	}

	mean := (memory + cpu + timeLimit) / 3
	c.metrics.ScoreSuccess.Inc(1)
	return Components{
		Memory:    memory,
		CPU:       cpu,
		TimeLimit: timeLimit,
		Total:     mean / c.divisor * 100,
	}, nil
}

// IsDivisionUndefined reports whether err was caused by a zero denominator.
func IsDivisionUndefined(err error) bool {
	return errors.Cause(err) == ErrDivisionUndefined
}

// ratio divides num by den, failing when the denominator is not a
// recognizable quantity.
func ratio(num, den float64, what string) (float64, error) {
	if math.Abs(den) < usage.Epsilon {
		return 0, errors.Wrapf(ErrDivisionUndefined, "%s is zero", what)
	}
	return num / den, nil
}
