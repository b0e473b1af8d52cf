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

// Package buildversion exposes the build version of the running binary.
package buildversion

import (
	"fmt"
	"net/http"
)

const (
	// Get is the default endpoint for getting the jobstats version.
	Get = "/version"
)

// Version is the jobstats build version. Deployments stamp it at build
// time through -ldflags "-X .../pkg/common/buildversion.Version=...".
var Version = "unknown"

// Handler returns a handler serving the given version string, falling back
// to the stamped build version when given the empty string.
func Handler(version string) func(http.ResponseWriter, *http.Request) {
	if version == "" {
		version = Version
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, version)
	}
}
