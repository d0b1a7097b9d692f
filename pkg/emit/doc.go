// Package emit implements the log emission path: callers hand in
// (level, code, payload) and the emitter decides whether the record
// reaches the sink.
//
// Three gates run in order, each cheaper to fail than the next:
//
//  1. Filter gate: records below the active filter level are dropped
//     before anything else happens, sampling included.
//  2. Sampling gate: a uniform draw against the level's rate (defaults
//     from pkg/level, overridable per level). Fatal and error carry
//     rate 1.0, so they always pass.
//  3. Volume cap: an optional token bucket bounding absolute record
//     throughput regardless of level mix.
//
// Sink failures are logged and swallowed: diagnostic instrumentation
// must never be the cause of an application failure.
package emit
