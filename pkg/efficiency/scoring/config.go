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

// Config controls how the mean efficiency ratio is normalized into the
// published score. It is read once when the calculator is constructed and
// never consulted again, so a process can treat it as immutable after
// startup.
type Config struct {
	// Normalize enables dividing the mean ratio by IdealScore, so that a
	// job hitting the ideal ratio scores 100.
	Normalize bool `yaml:"normalize"`

	// IdealScore is the normalization divisor. It must be positive when
	// Normalize is set and is ignored otherwise.
	IdealScore float64 `yaml:"ideal_score" validate:"min=0"`
}

// Divisor derives the normalization divisor the calculator applies to the
// mean ratio. A disabled config divides by one.
func (c Config) Divisor() float64 {
	if !c.Normalize {
		return 1.0
	}
	return c.IdealScore
}
