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

import (
	"os"
	"time"

	"github.com/NVIDIA/framesight/pkg/errors"
)

// Process exposes process identity and uptime as a capture provider.
type Process struct {
	start time.Time
}

// NewProcess creates a process provider anchored at the current time.
func NewProcess() *Process {
	return &Process{start: time.Now()}
}

// Name implements capture.Provider.
func (p *Process) Name() string { return "process" }

// State implements capture.Provider.
func (p *Process) State() (map[string]any, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeCaptureFailed, "reading hostname", err)
	}

	return map[string]any{
		"pid":           os.Getpid(),
		"hostname":      hostname,
		"uptimeSeconds": time.Since(p.start).Seconds(),
	}, nil
}
