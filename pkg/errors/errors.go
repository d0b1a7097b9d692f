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

package errors

import "fmt"

// ErrorCode represents a structured error classification.
type ErrorCode string

const (
	// ErrCodeCaptureFailed indicates a provider could not read its
	// subsystem state.
	ErrCodeCaptureFailed ErrorCode = "CAPTURE_FAILED"
	// ErrCodeProviderNotFound indicates a lookup for an unregistered
	// provider name.
	ErrCodeProviderNotFound ErrorCode = "PROVIDER_NOT_FOUND"
	// ErrCodeInvalidConfig indicates malformed or invalid configuration.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	// ErrCodeSinkFailure indicates the emission sink rejected a record.
	ErrCodeSinkFailure ErrorCode = "SINK_FAILURE"
	// ErrCodeSerialization indicates snapshot or stats serialization
	// failed.
	ErrCodeSerialization ErrorCode = "SERIALIZATION"
	// ErrCodeInternal indicates an internal pipeline error.
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// StructuredError provides structured error information for better
// observability. It includes an error code for programmatic handling,
// a human-readable message, the underlying cause, and optional context
// for debugging.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New creates a new StructuredError with the given code and message.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapWithContext wraps an error with additional context information.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// CodeOf returns the structured error code of err, or ErrCodeInternal
// when err carries no code.
func CodeOf(err error) ErrorCode {
	if se, ok := err.(*StructuredError); ok {
		return se.Code
	}
	return ErrCodeInternal
}
