// Package level implements the log-level policy used by the emission
// pipeline: a fixed priority ordering over the supported levels and a
// per-level default sampling rate.
//
// The policy is two independent gates, always evaluated in order:
//
//  1. Filter gate: ShouldLog(l, filter) compares priorities. A record
//     below the active filter is dropped before sampling is considered.
//  2. Sampling gate: a uniform draw in [0,1) against the level's rate.
//     Fatal and Error carry rate 1.0, so the gate is a no-op for them.
//
// Parsing is forgiving on purpose: level strings arrive from config
// files and environment variables, and a typo there must never take the
// host process down. Parse normalizes anything unrecognized to Info.
package level
