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

package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format represents the output format type.
type Format string

const (
	// FormatJSON outputs data in indented JSON.
	FormatJSON Format = "json"
	// FormatYAML outputs data in YAML.
	FormatYAML Format = "yaml"
)

// IsUnknown reports whether the format is unsupported.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML:
		return false
	default:
		return true
	}
}

// SupportedFormats returns the list of supported output formats.
func SupportedFormats() []string {
	return []string{string(FormatJSON), string(FormatYAML)}
}

// Serializer is an interface for serializing snapshot and stats data.
// The context parameter is used for cancellation, relevant for
// implementations that perform real I/O.
type Serializer interface {
	Serialize(ctx context.Context, v any) error
}

// Writer serializes values to an io.Writer in a configurable format.
// Close must be called when the writer owns a file handle.
type Writer struct {
	format Format
	output io.Writer
	closer io.Closer
}

// NewWriter creates a Writer with the given format and destination.
// A nil output falls back to stdout; an unknown format falls back to
// JSON with a warning.
func NewWriter(format Format, output io.Writer) *Writer {
	if output == nil {
		output = os.Stdout
	}
	if format.IsUnknown() {
		slog.Warn("unknown format, defaulting to JSON", "format", format)
		format = FormatJSON
	}
	return &Writer{format: format, output: output}
}

// NewStdoutWriter creates a Writer targeting stdout.
func NewStdoutWriter(format Format) *Writer {
	return NewWriter(format, os.Stdout)
}

// NewFileWriterOrStdout creates a Writer targeting the given file path.
// An empty path, or a path that cannot be created, falls back to stdout.
// Call Close on the returned writer to release the file handle.
func NewFileWriterOrStdout(format Format, path string) *Writer {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return NewStdoutWriter(format)
	}
	f, err := os.Create(trimmed)
	if err != nil {
		slog.Error("cannot create output file, falling back to stdout",
			"path", trimmed, "error", err)
		return NewStdoutWriter(format)
	}
	w := NewWriter(format, f)
	w.closer = f
	return w
}

// Serialize writes v to the destination in the configured format.
func (w *Writer) Serialize(ctx context.Context, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch w.format {
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to serialize to yaml: %w", err)
		}
		_, err = w.output.Write(data)
		return err
	default:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize to json: %w", err)
		}
		_, err = fmt.Fprintln(w.output, string(data))
		return err
	}
}

// Close releases the underlying file handle, if any.
func (w *Writer) Close() error {
	if w.closer == nil {
		return nil
	}
	return w.closer.Close()
}
