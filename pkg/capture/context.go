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
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// noCacheFrame is the sentinel meaning "no valid cache slot".
const noCacheFrame int64 = -1

// Reporter receives warning-level events from the context (currently
// only duplicate registrations). When the context is wired into an
// emission pipeline the report is subject to its level and sampling
// policy like any other record.
type Reporter func(code string, payload map[string]any)

// Stats holds the context's aggregate counters.
type Stats struct {
	TotalSnapshots uint64 `json:"totalSnapshots" yaml:"totalSnapshots"`
	CacheHits      uint64 `json:"cacheHits" yaml:"cacheHits"`
	CacheMisses    uint64 `json:"cacheMisses" yaml:"cacheMisses"`
	ProviderErrors uint64 `json:"providerErrors" yaml:"providerErrors"`
}

// ContextStats is the view returned by Context.Stats: the aggregate
// counters, the derived cache efficiency, and each unit's own stats.
type ContextStats struct {
	Stats `json:",inline" yaml:",inline"`

	// CacheEfficiency is CacheHits/TotalSnapshots, 0 when no snapshot
	// has been requested.
	CacheEfficiency float64 `json:"cacheEfficiency" yaml:"cacheEfficiency"`

	Units []UnitStats `json:"units" yaml:"units"`
}

// Context coordinates frame-scoped, fault-isolated, cache-optimized
// aggregation of all registered units. One instance lives for the
// session and is passed explicitly to collaborators; there is no hidden
// global. All methods run on the host's single logical frame thread.
type Context struct {
	id       string
	registry map[string]*Unit
	reporter Reporter

	currentFrame int64
	deltaTime    float64
	frameTime    time.Time

	// Single-slot, frame-keyed memo. The slot is valid iff
	// cacheFrame == currentFrame.
	cached     *Snapshot
	cacheFrame int64

	stats Stats
}

// Option configures a Context.
type Option func(*Context)

// WithReporter routes the context's warning events to r instead of the
// default slog warning.
func WithReporter(r Reporter) Option {
	return func(c *Context) { c.reporter = r }
}

// NewContext creates a session-scoped capture context with an empty
// registry and an invalid cache slot.
func NewContext(opts ...Option) *Context {
	c := &Context{
		id:         uuid.New().String(),
		registry:   make(map[string]*Unit),
		cacheFrame: noCacheFrame,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ID returns the session identifier assigned at construction.
func (c *Context) ID() string { return c.id }

// Register inserts a unit keyed by its provider name. Registering over
// an existing name replaces the previous entry and reports a warning;
// this supports hot-reload of a subsystem's provider but is never
// silently ambiguous: exactly one entry per name exists after the call.
func (c *Context) Register(u *Unit) {
	name := u.Name()
	if _, exists := c.registry[name]; exists {
		c.report("provider_replaced", map[string]any{"provider": name})
	}
	c.registry[name] = u
}

// Unregister removes the unit registered under name, reporting whether
// a removal occurred. Idempotent. The unit instance itself belongs to
// the registering collaborator; removal only takes it out of future
// capture cycles.
func (c *Context) Unregister(name string) bool {
	if _, ok := c.registry[name]; !ok {
		return false
	}
	delete(c.registry, name)
	return true
}

// Provider returns the unit registered under name, if any. No side
// effects.
func (c *Context) Provider(name string) (*Unit, bool) {
	u, ok := c.registry[name]
	return u, ok
}

// Providers returns the number of registered units.
func (c *Context) Providers() int {
	return len(c.registry)
}

// UpdateFrame records the current frame cursor. The frame driver calls
// it exactly once per logical tick, before any snapshot request for
// that tick. A frame number different from the cached one invalidates
// the cache slot; this and ClearCache are the only invalidation paths.
func (c *Context) UpdateFrame(frame int64, dt float64) {
	c.currentFrame = frame
	c.deltaTime = dt
	c.frameTime = time.Now()

	if frame != c.cacheFrame {
		c.cached = nil
		c.cacheFrame = noCacheFrame
	}
}

// CurrentFrame returns the frame cursor set by the last UpdateFrame.
func (c *Context) CurrentFrame() int64 { return c.currentFrame }

// CaptureSnapshot is the primary read path. Within a frame, the first
// call builds and caches a snapshot and every later call returns the
// identical pointer; pass skipCache to force a rebuild. A rebuilt
// snapshot always becomes the new cache entry for the current frame.
func (c *Context) CaptureSnapshot(skipCache bool) *Snapshot {
	if !skipCache && c.cached != nil && c.cacheFrame == c.currentFrame {
		c.stats.CacheHits++
		cacheLookups.WithLabelValues("hit").Inc()
		return c.cached
	}

	c.stats.CacheMisses++
	c.stats.TotalSnapshots++
	cacheLookups.WithLabelValues("miss").Inc()

	snap := c.build(nil)

	c.cached = snap
	c.cacheFrame = c.currentFrame
	return snap
}

// CaptureMinimal captures only the named units, always fresh, bypassing
// the full-registry cache entirely. Per-unit failures yield the same
// error placeholder shape but do not move the shared ProviderErrors
// counter; this is a lightweight diagnostic-only path, distinct from
// the cached one.
func (c *Context) CaptureMinimal(names []string) *Snapshot {
	selected := make(map[string]bool, len(names))
	for _, n := range names {
		selected[n] = true
	}
	return c.build(selected)
}

// build assembles a snapshot from the registry. A nil filter captures
// every enabled unit and counts failures into the shared stats; a
// non-nil filter restricts to the named units and leaves the shared
// stats alone.
func (c *Context) build(filter map[string]bool) *Snapshot {
	start := time.Now()
	defer func() {
		snapshotBuildDuration.Observe(time.Since(start).Seconds())
	}()

	snap := &Snapshot{
		Frame:       c.currentFrame,
		DeltaTime:   c.deltaTime,
		Timestamp:   time.Now(),
		Performance: derivePerformance(c.deltaTime),
		Units:       make(map[string]State, len(c.registry)),
	}

	for name, u := range c.registry {
		if filter != nil && !filter[name] {
			continue
		}
		if !u.IsEnabled() {
			continue
		}
		state := u.Capture()
		if state == nil {
			continue
		}
		if IsError(state) {
			providerErrorsTotal.WithLabelValues(name).Inc()
			if filter == nil {
				c.stats.ProviderErrors++
			}
		}
		snap.Units[name] = state
	}

	return snap
}

// Stats returns the aggregate counters, the derived cache efficiency,
// and each registered unit's stats.
func (c *Context) Stats() ContextStats {
	cs := ContextStats{Stats: c.stats}
	if c.stats.TotalSnapshots > 0 {
		cs.CacheEfficiency = float64(c.stats.CacheHits) / float64(c.stats.TotalSnapshots)
	}
	cs.Units = make([]UnitStats, 0, len(c.registry))
	for _, u := range c.registry {
		cs.Units = append(cs.Units, u.Stats())
	}
	return cs
}

// ResetStats zeroes the aggregate counters and resets every registered
// unit. Cache state is untouched; invalidation is a separate concern.
func (c *Context) ResetStats() {
	c.stats = Stats{}
	for _, u := range c.registry {
		u.Reset()
	}
}

// ClearCache forces the next CaptureSnapshot to miss without waiting
// for a frame change.
func (c *Context) ClearCache() {
	c.cached = nil
	c.cacheFrame = noCacheFrame
}

// EnableAll enables every registered unit.
func (c *Context) EnableAll() {
	for _, u := range c.registry {
		u.Enable()
	}
}

// DisableAll disables every registered unit.
func (c *Context) DisableAll() {
	for _, u := range c.registry {
		u.Disable()
	}
}

func (c *Context) report(code string, payload map[string]any) {
	if c.reporter != nil {
		c.reporter(code, payload)
		return
	}
	slog.Warn("capture context event", slog.String("code", code), slog.Any("payload", payload))
}
