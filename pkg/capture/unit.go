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
	"fmt"
	"runtime/debug"
	"time"
)

// Unit wraps a Provider with the framework bookkeeping the registry
// needs: the enabled flag, a monotonic capture counter, and the last
// successful capture. Concrete providers stay free of mutable framework
// state; all of it lives here.
type Unit struct {
	provider Provider

	enabled      bool
	captureCount uint64
	lastCapture  *LastCapture
}

// LastCapture records the most recent successful capture of a unit.
type LastCapture struct {
	Time  time.Time
	State State
}

// UnitStats is the per-unit statistics view returned by Unit.Stats.
type UnitStats struct {
	Name            string    `json:"name" yaml:"name"`
	Enabled         bool      `json:"enabled" yaml:"enabled"`
	CaptureCount    uint64    `json:"captureCount" yaml:"captureCount"`
	LastCaptureTime time.Time `json:"lastCaptureTime,omitempty" yaml:"lastCaptureTime,omitempty"`
}

// NewUnit wraps a provider in an enabled Unit.
func NewUnit(p Provider) *Unit {
	return &Unit{
		provider: p,
		enabled:  true,
	}
}

// Name returns the wrapped provider's stable identifier.
func (u *Unit) Name() string {
	return u.provider.Name()
}

// Capture invokes the provider's State under the fault barrier.
//
// Returns nil immediately when the unit is disabled. On success it
// records the last capture, increments the capture counter, and returns
// the state. On failure (error or panic from the provider) it returns
// an error placeholder and leaves the counter untouched. A failing
// provider never raises past Capture.
func (u *Unit) Capture() State {
	if !u.enabled {
		return nil
	}

	state, err := u.safeState()
	if err != nil {
		return State{
			KeyError:      err.Error(),
			KeyErrorStack: string(debug.Stack()),
		}
	}

	u.captureCount++
	u.lastCapture = &LastCapture{
		Time:  time.Now(),
		State: state,
	}
	return state
}

// safeState calls the provider's State converting panics into errors.
func (u *Unit) safeState() (state State, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("provider %s panicked: %v", u.Name(), r)
		}
	}()
	return u.provider.State()
}

// Enable includes the unit in future capture cycles.
func (u *Unit) Enable() { u.enabled = true }

// Disable excludes the unit from future capture cycles. The last
// capture and the counter are kept.
func (u *Unit) Disable() { u.enabled = false }

// IsEnabled reports whether the unit participates in capture cycles.
func (u *Unit) IsEnabled() bool { return u.enabled }

// LastCapture returns the most recent successful capture, or nil.
func (u *Unit) LastCapture() *LastCapture { return u.lastCapture }

// Stats returns the unit's bookkeeping counters.
func (u *Unit) Stats() UnitStats {
	s := UnitStats{
		Name:         u.Name(),
		Enabled:      u.enabled,
		CaptureCount: u.captureCount,
	}
	if u.lastCapture != nil {
		s.LastCaptureTime = u.lastCapture.Time
	}
	return s
}

// Reset clears the counter and the last capture without changing the
// enabled flag.
func (u *Unit) Reset() {
	u.captureCount = 0
	u.lastCapture = nil
}
