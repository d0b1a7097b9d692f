package emit

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/framesight/pkg/level"
)

type captureSink struct {
	records []Record
	err     error
}

func (s *captureSink) Write(rec Record) error {
	if s.err != nil {
		return s.err
	}
	s.records = append(s.records, rec)
	return nil
}

// fixedRand returns the same draw on every sampling roll.
func fixedRand(v float64) func() float64 {
	return func() float64 { return v }
}

func TestEmitFilterGate(t *testing.T) {
	sink := &captureSink{}
	e := New(
		WithFilter(level.Error),
		WithSink(sink),
		WithRandSource(fixedRand(0)), // sampling always passes
	)

	assert.False(t, e.Emit(level.Warn, "below_filter", nil))
	assert.True(t, e.Emit(level.Error, "at_filter", nil))
	assert.True(t, e.Emit(level.Fatal, "above_filter", nil))
	assert.Len(t, sink.records, 2)
}

func TestEmitSamplingGate(t *testing.T) {
	tests := []struct {
		name string
		l    level.Level
		draw float64
		want bool
	}{
		{"fatal always emits", level.Fatal, 0.999, true},
		{"error always emits", level.Error, 0.999, true},
		{"warn below rate", level.Warn, 0.49, true},
		{"warn at rate", level.Warn, 0.5, false},
		{"info below rate", level.Info, 0.05, true},
		{"info above rate", level.Info, 0.2, false},
		{"dev above rate", level.Dev, 0.5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &captureSink{}
			e := New(WithSink(sink), WithRandSource(fixedRand(tt.draw)))
			assert.Equal(t, tt.want, e.Emit(tt.l, "code", nil))
		})
	}
}

func TestFilterRunsBeforeSampling(t *testing.T) {
	rolls := 0
	e := New(
		WithFilter(level.Error),
		WithSink(&captureSink{}),
		WithRandSource(func() float64 { rolls++; return 0 }),
	)

	e.Emit(level.Dev, "dropped", nil)
	assert.Zero(t, rolls, "a record below the filter must never reach the sampling roll")
}

func TestEmitSampleRateOverride(t *testing.T) {
	sink := &captureSink{}
	e := New(
		WithSink(sink),
		WithSampleRate(level.Dev, 1.0),
		WithRandSource(fixedRand(0.99)),
	)
	assert.True(t, e.Emit(level.Dev, "verbose", nil))
}

func TestEmitRateLimit(t *testing.T) {
	sink := &captureSink{}
	e := New(
		WithSink(sink),
		WithRandSource(fixedRand(0)),
		WithRateLimit(1, 2),
	)

	// Burst of 2 passes, the third is capped.
	assert.True(t, e.Emit(level.Error, "one", nil))
	assert.True(t, e.Emit(level.Error, "two", nil))
	assert.False(t, e.Emit(level.Error, "three", nil))
}

func TestEmitSinkFailureIsSwallowed(t *testing.T) {
	e := New(
		WithSink(&captureSink{err: errors.New("sink closed")}),
		WithRandSource(fixedRand(0)),
	)

	assert.NotPanics(t, func() {
		assert.False(t, e.Emit(level.Fatal, "code", nil))
	})
}

func TestEmitRecordShape(t *testing.T) {
	sink := &captureSink{}
	e := New(WithSink(sink), WithRandSource(fixedRand(0)))

	require.True(t, e.Emit(level.Warn, "provider_replaced", map[string]any{"provider": "physics"}))
	require.Len(t, sink.records, 1)

	rec := sink.records[0]
	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.Time.IsZero())
	assert.Equal(t, level.Warn, rec.Level)
	assert.Equal(t, "provider_replaced", rec.Code)
	assert.Equal(t, "physics", rec.Payload["provider"])
}

func TestJSONSink(t *testing.T) {
	var buf bytes.Buffer
	e := New(WithSink(NewJSONSink(&buf)), WithRandSource(fixedRand(0)))

	require.True(t, e.Emit(level.Info, "tick", map[string]any{"frame": 12}))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "tick", decoded["code"])
	assert.Equal(t, "info", decoded["level"])
}

func TestSetFilter(t *testing.T) {
	sink := &captureSink{}
	e := New(WithSink(sink), WithRandSource(fixedRand(0)), WithFilter(level.Fatal))

	assert.False(t, e.Emit(level.Info, "quiet", nil))
	e.SetFilter(level.Dev)
	assert.True(t, e.Emit(level.Info, "loud", nil))
	assert.Equal(t, level.Dev, e.Filter())
}
