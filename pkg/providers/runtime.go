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

import "runtime"

// Runtime exposes Go runtime statistics as a capture provider.
type Runtime struct{}

// NewRuntime creates a runtime statistics provider.
func NewRuntime() *Runtime {
	return &Runtime{}
}

// Name implements capture.Provider.
func (p *Runtime) Name() string { return "runtime" }

// State implements capture.Provider.
func (p *Runtime) State() (map[string]any, error) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return map[string]any{
		"goroutines":   runtime.NumGoroutine(),
		"heapAlloc":    m.HeapAlloc,
		"heapSys":      m.HeapSys,
		"numGC":        m.NumGC,
		"gcPauseTotal": m.PauseTotalNs,
		"goos":         runtime.GOOS,
		"goarch":       runtime.GOARCH,
	}, nil
}
