// Package capture provides the per-frame diagnostic snapshot pipeline:
// a registry of pluggable state providers coordinated by a frame-scoped,
// cache-optimized Context.
//
// # Core Interface
//
// A subsystem exposes diagnostics by implementing Provider:
//
//	type Provider interface {
//	    Name() string
//	    State() (map[string]any, error)
//	}
//
// State must be a pure read of the subsystem; it may fail when the
// subsystem is unreadable (for example, mid-teardown), and the pipeline
// tolerates that failure rather than preventing it.
//
// # Units and the fault barrier
//
// Providers are registered wrapped in a Unit, which carries the
// framework bookkeeping (enabled flag, capture counter, last capture)
// so concrete providers stay small stateless accessors. Unit.Capture
// runs State under a fault barrier: an error or panic in one provider
// produces an error placeholder in the snapshot and never escapes the
// call, so diagnostic instrumentation cannot fail the host.
//
// # Frame-scoped caching
//
// The host's frame loop calls Context.UpdateFrame once per tick. Within
// one frame every CaptureSnapshot call after the first is served from a
// single-slot cache and returns the identical *Snapshot; a new frame
// number invalidates the slot. Snapshots must therefore be treated as
// immutable by callers.
//
// # Usage
//
//	ctx := capture.NewContext()
//	ctx.Register(capture.NewUnit(providers.NewRuntime()))
//
//	// each tick:
//	ctx.UpdateFrame(frame, dt)
//	snap := ctx.CaptureSnapshot(false)
//
// All Context methods assume a single logical thread of control tied to
// the host's tick loop; there is no internal locking.
package capture
