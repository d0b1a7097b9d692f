// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package capture

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	snapshotBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "framesight_snapshot_build_duration_seconds",
			Help:    "Time taken to build a snapshot across all enabled providers",
			Buckets: []float64{.00001, .0001, .001, .005, .01, .05, .1},
		},
	)

	cacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "framesight_snapshot_cache_lookups_total",
			Help: "Snapshot cache lookups by outcome",
		},
		[]string{"outcome"}, // hit or miss
	)

	providerErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "framesight_provider_errors_total",
			Help: "Capture failures isolated by the fault barrier, per provider",
		},
		[]string{"provider"},
	)
)
