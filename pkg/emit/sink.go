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
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/NVIDIA/framesight/pkg/level"
)

// Sink receives records that survived the emission gates. Storage and
// transport concerns live entirely behind this interface.
type Sink interface {
	Write(Record) error
}

// SlogSink forwards records to a slog logger, mapping record levels to
// the nearest slog level.
type SlogSink struct {
	logger *slog.Logger
}

// NewSlogSink creates a sink writing to the given logger. A nil logger
// uses the slog default.
func NewSlogSink(logger *slog.Logger) *SlogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogSink{logger: logger}
}

// Write implements Sink.
func (s *SlogSink) Write(rec Record) error {
	s.logger.Log(context.Background(), slogLevel(rec.Level), rec.Code,
		slog.String("record_id", rec.ID),
		slog.String("record_level", rec.Level.String()),
		slog.Any("payload", rec.Payload),
	)
	return nil
}

func slogLevel(l level.Level) slog.Level {
	switch l {
	case level.Fatal, level.Error:
		return slog.LevelError
	case level.Warn:
		return slog.LevelWarn
	case level.Info:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// JSONSink writes records as JSON lines to an io.Writer.
type JSONSink struct {
	enc *json.Encoder
}

// NewJSONSink creates a sink encoding one record per line to w.
func NewJSONSink(w io.Writer) *JSONSink {
	return &JSONSink{enc: json.NewEncoder(w)}
}

// Write implements Sink.
func (s *JSONSink) Write(rec Record) error {
	return s.enc.Encode(rec)
}
