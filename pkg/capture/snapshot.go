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
	"math"
	"time"
)

// Snapshot is the aggregated, timestamped record produced by capturing
// all enabled units for one frame. Snapshots are value objects: never
// mutated after creation. The cache returns the same pointer to every
// caller within a frame, so callers must treat snapshots as immutable.
type Snapshot struct {
	// Frame is the frame number the snapshot was captured for.
	Frame int64 `json:"frame" yaml:"frame"`

	// DeltaTime is the frame delta in seconds, as reported by the
	// frame driver.
	DeltaTime float64 `json:"deltaTime" yaml:"deltaTime"`

	// Timestamp is the wall-clock time the snapshot was built.
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`

	// Performance holds values derived from DeltaTime.
	Performance Performance `json:"performance" yaml:"performance"`

	// Units maps each captured unit's name to its state or, for a
	// failed capture, an error placeholder.
	Units map[string]State `json:"units" yaml:"units"`
}

// Performance is the derived timing block carried by every snapshot.
type Performance struct {
	// FPS is round(1/deltaTime), or 0 when deltaTime is not positive.
	FPS int `json:"fps" yaml:"fps"`

	// FrameTime is the frame delta in milliseconds.
	FrameTime float64 `json:"frameTime" yaml:"frameTime"`
}

// Unit returns the captured state for a unit name, or nil when the
// unit is absent from the snapshot.
func (s *Snapshot) Unit(name string) State {
	return s.Units[name]
}

// HasUnit reports whether the snapshot carries an entry for name.
func (s *Snapshot) HasUnit(name string) bool {
	_, ok := s.Units[name]
	return ok
}

// derivePerformance computes the performance block for a frame delta.
func derivePerformance(dt float64) Performance {
	p := Performance{FrameTime: dt * 1000}
	if dt > 0 {
		p.FPS = int(math.Round(1 / dt))
	}
	return p
}
