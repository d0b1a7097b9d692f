// Package errors provides structured error types for better
// observability and programmatic error handling across the snapshot
// pipeline.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeCaptureFailed,
//	    "failed to read physics world state",
//	    cause,
//	    map[string]any{
//	        "provider": name,
//	        "frame":    frame,
//	    },
//	)
package errors
