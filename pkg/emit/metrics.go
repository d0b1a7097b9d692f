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

package emit

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recordsEmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "framesight_records_emitted_total",
			Help: "Records that passed all gates and reached the sink",
		},
		[]string{"level"},
	)

	recordsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "framesight_records_dropped_total",
			Help: "Records dropped before the sink, by gate",
		},
		[]string{"level", "reason"}, // filter, sampled, rate_limited, sink_error
	)
)
