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

package providers

import "github.com/NVIDIA/framesight/pkg/errors"

// defaultTimingWindow is the number of recent frame deltas kept.
const defaultTimingWindow = 120

// Timing exposes a sliding window of recent frame deltas. The frame
// driver feeds it via Observe each tick; the capture path only reads.
type Timing struct {
	window []float64
	next   int
	count  int
}

// NewTiming creates a timing provider with the default window size.
func NewTiming() *Timing {
	return NewTimingWindow(defaultTimingWindow)
}

// NewTimingWindow creates a timing provider keeping the last n deltas.
func NewTimingWindow(n int) *Timing {
	if n < 1 {
		n = 1
	}
	return &Timing{window: make([]float64, n)}
}

// Observe records one frame delta in seconds. Called by the frame
// driver, on the same logical thread as capture.
func (p *Timing) Observe(dt float64) {
	p.window[p.next] = dt
	p.next = (p.next + 1) % len(p.window)
	if p.count < len(p.window) {
		p.count++
	}
}

// Name implements capture.Provider.
func (p *Timing) Name() string { return "timing" }

// State implements capture.Provider. It fails until at least one frame
// has been observed; the fault barrier upstream tolerates that.
func (p *Timing) State() (map[string]any, error) {
	if p.count == 0 {
		return nil, errors.New(errors.ErrCodeCaptureFailed, "no frames observed yet")
	}

	minDT, maxDT := p.window[0], 0.0
	var sum float64
	for i := 0; i < p.count; i++ {
		dt := p.window[i]
		if dt < minDT {
			minDT = dt
		}
		if dt > maxDT {
			maxDT = dt
		}
		sum += dt
	}
	avg := sum / float64(p.count)

	return map[string]any{
		"samples":  p.count,
		"avgDelta": avg,
		"minDelta": minDT,
		"maxDelta": maxDT,
		"jitter":   maxDT - minDT,
	}, nil
}
