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

// Provider is the contract a subsystem implements to expose diagnostic
// state. Implementations are ordinary read-only accessors: State must
// not mutate the subsystem it reads from.
type Provider interface {
	// Name returns the stable identifier for this provider. It is the
	// sole registry key and must not change over the provider's lifetime.
	Name() string

	// State returns a point-in-time read of the subsystem's state.
	// It may fail when the subsystem is in an unreadable state (e.g.
	// torn down); callers tolerate that failure rather than prevent it.
	State() (map[string]any, error)
}

// State is the captured payload of a single provider. The reserved keys
// KeyError and KeyErrorStack mark a failed capture.
type State = map[string]any

// Reserved placeholder keys recorded for a failed capture.
const (
	KeyError      = "_error"
	KeyErrorStack = "_errorStack"
)

// IsError reports whether a captured state is an error placeholder.
func IsError(s State) bool {
	if s == nil {
		return false
	}
	_, ok := s[KeyError]
	return ok
}
