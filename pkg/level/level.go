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

package level

import "strings"

// Level identifies the severity of a diagnostic record.
type Level string

const (
	Fatal Level = "fatal"
	Error Level = "error"
	Warn  Level = "warn"
	Info  Level = "info"
	Dev   Level = "dev"
)

// Levels lists all supported levels in decreasing priority order.
var Levels = []Level{Fatal, Error, Warn, Info, Dev}

// String returns the string representation of the Level.
func (l Level) String() string {
	return string(l)
}

var priorities = map[Level]int{
	Fatal: 5,
	Error: 4,
	Warn:  3,
	Info:  2,
	Dev:   1,
}

var sampleRates = map[Level]float64{
	Fatal: 1.0,
	Error: 1.0,
	Warn:  0.5,
	Info:  0.1,
	Dev:   0.01,
}

// Priority returns the numeric priority of a level. Higher is more
// severe. Unknown levels map to 0, below every defined level.
func Priority(l Level) int {
	return priorities[l]
}

// DefaultSampleRate returns the default sampling rate for a level in
// [0,1]. Unknown levels map to 0 (never sampled in).
func DefaultSampleRate(l Level) float64 {
	return sampleRates[l]
}

// ShouldLog reports whether a record at level l passes the active
// filter. This is the hard gate: it runs before any sampling roll.
func ShouldLog(l, filter Level) bool {
	return Priority(l) >= Priority(filter)
}

// Parse converts a raw string into a Level, case-insensitively.
// Unrecognized input normalizes to Info rather than failing; level
// parsing must never be fatal to the caller.
func Parse(raw string) Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "fatal":
		return Fatal
	case "error":
		return Error
	case "warn", "warning":
		return Warn
	case "info":
		return Info
	case "dev", "debug":
		return Dev
	default:
		return Info
	}
}
