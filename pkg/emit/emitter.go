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
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/NVIDIA/framesight/pkg/level"
)

// Record is a single diagnostic log record handed to the sink.
type Record struct {
	ID      string         `json:"id" yaml:"id"`
	Time    time.Time      `json:"time" yaml:"time"`
	Level   level.Level    `json:"level" yaml:"level"`
	Code    string         `json:"code" yaml:"code"`
	Payload map[string]any `json:"payload,omitempty" yaml:"payload,omitempty"`
}

// Emitter applies the level filter, the sampling gate, and an optional
// volume cap before handing records to a sink. Like the capture
// context, it runs on the host's single logical frame thread.
type Emitter struct {
	filter  level.Level
	rates   map[level.Level]float64
	randF   func() float64
	limiter *rate.Limiter
	sink    Sink
}

// Option configures an Emitter.
type Option func(*Emitter)

// WithFilter sets the active filter level. Records below it are dropped
// before sampling is evaluated.
func WithFilter(l level.Level) Option {
	return func(e *Emitter) { e.filter = l }
}

// WithSampleRate overrides the default sampling rate for one level.
// Rates are clamped to [0,1].
func WithSampleRate(l level.Level, r float64) Option {
	return func(e *Emitter) {
		e.rates[l] = min(max(r, 0), 1)
	}
}

// WithRateLimit caps absolute emission throughput at n records per
// second with the given burst. Zero or negative n disables the cap.
func WithRateLimit(n float64, burst int) Option {
	return func(e *Emitter) {
		if n <= 0 {
			e.limiter = nil
			return
		}
		e.limiter = rate.NewLimiter(rate.Limit(n), burst)
	}
}

// WithRandSource replaces the sampling randomness source. Used by tests
// to make sampling decisions deterministic.
func WithRandSource(f func() float64) Option {
	return func(e *Emitter) { e.randF = f }
}

// WithSink sets the destination for emitted records.
func WithSink(s Sink) Option {
	return func(e *Emitter) { e.sink = s }
}

// New creates an Emitter with the default level policy (filter dev,
// default sampling rates, no volume cap) writing to a slog sink.
func New(opts ...Option) *Emitter {
	e := &Emitter{
		filter: level.Dev,
		rates:  make(map[level.Level]float64, len(level.Levels)),
		randF:  rand.Float64,
		sink:   NewSlogSink(slog.Default()),
	}
	for _, l := range level.Levels {
		e.rates[l] = level.DefaultSampleRate(l)
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Filter returns the active filter level.
func (e *Emitter) Filter() level.Level { return e.filter }

// SetFilter changes the active filter level at runtime.
func (e *Emitter) SetFilter(l level.Level) { e.filter = l }

// Emit runs a record through the gates and, if it survives, hands it to
// the sink. It reports whether the record was emitted. Sink errors are
// logged and swallowed; emission never fails the caller.
func (e *Emitter) Emit(l level.Level, code string, payload map[string]any) bool {
	if !level.ShouldLog(l, e.filter) {
		recordsDropped.WithLabelValues(l.String(), "filter").Inc()
		return false
	}

	if e.randF() >= e.rates[l] {
		recordsDropped.WithLabelValues(l.String(), "sampled").Inc()
		return false
	}

	if e.limiter != nil && !e.limiter.Allow() {
		recordsDropped.WithLabelValues(l.String(), "rate_limited").Inc()
		return false
	}

	rec := Record{
		ID:      uuid.New().String(),
		Time:    time.Now(),
		Level:   l,
		Code:    code,
		Payload: payload,
	}

	if err := e.sink.Write(rec); err != nil {
		recordsDropped.WithLabelValues(l.String(), "sink_error").Inc()
		slog.Error("emission sink failed",
			slog.String("code", code),
			slog.String("error", err.Error()))
		return false
	}

	recordsEmitted.WithLabelValues(l.String()).Inc()
	return true
}
