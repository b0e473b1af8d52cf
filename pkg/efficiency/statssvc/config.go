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
	"github.com/uber/jobstats/pkg/common/config"
	"github.com/uber/jobstats/pkg/common/metrics"
	"github.com/uber/jobstats/pkg/efficiency/scoring"
)

// Config holds everything a jobstats deployment configures, the scoring
// normalization and the metrics backends. It is loaded once at startup.
type Config struct {
	Scoring scoring.Config `yaml:"scoring"`
	Metrics metrics.Config `yaml:"metrics"`
}

// LoadConfig reads service configuration from the given YAML files in
// order, later files overriding earlier ones.
func LoadConfig(configFiles ...string) (Config, error) {
	var cfg Config
	if err := config.Parse(&cfg, configFiles...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
