// Package providers contains ready-made capture providers for the
// host process itself: Go runtime statistics, process identity, and
// frame timing. They double as reference implementations of the
// capture.Provider contract: small, stateless-by-default, read-only
// accessors over the subsystem they describe.
package providers
