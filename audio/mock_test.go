// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"

	"github.com/ik5/synthwav/sample"
)

// constSource yields the same sample forever.
type constSource[T sample.Value[T]] struct {
	v T
}

func (s *constSource[T]) SampleAt(float64) (T, bool) { return s.v, true }

// finiteSource yields v a fixed number of times, then exhausts.
type finiteSource[T sample.Value[T]] struct {
	v    T
	left int
}

func (s *finiteSource[T]) SampleAt(float64) (T, bool) {
	var z T
	if s.left <= 0 {
		return z, false
	}
	s.left--
	return s.v, true
}

// clockSource records every time value it is sampled at.
type clockSource struct {
	times []float64
}

func (s *clockSource) SampleAt(t float64) (sample.Int16, bool) {
	s.times = append(s.times, t)
	return 0, true
}

// seqSource yields pre-recorded samples in order, then exhausts.
type seqSource[T sample.Value[T]] struct {
	samples []T
	pos     int
}

func (s *seqSource[T]) SampleAt(float64) (T, bool) {
	var z T
	if s.pos >= len(s.samples) {
		return z, false
	}
	v := s.samples[s.pos]
	s.pos++
	return v, true
}

// mockStream is a test Stream producing per-sample values from a
// waveform function, mirroring the decoder shape.
type mockStream struct {
	sampleRate   int
	channels     int
	totalSamples int // per channel
	generated    int
	closed       bool
	waveform     func(sample, channel int) float32
}

func newMockStream(sampleRate, channels, totalSamples int, waveform func(sample, channel int) float32) *mockStream {
	return &mockStream{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

func newConstantStream(sampleRate, channels, totalSamples int, value float32) *mockStream {
	return newMockStream(sampleRate, channels, totalSamples, func(int, int) float32 {
		return value
	})
}

func (m *mockStream) SampleRate() int { return m.sampleRate }
func (m *mockStream) Channels() int   { return m.channels }
func (m *mockStream) BufSize() int    { return 4096 }

func (m *mockStream) Close() error {
	m.closed = true
	return nil
}

func (m *mockStream) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.totalSamples-m.generated)

	for f := range frames {
		for c := range m.channels {
			dst[f*m.channels+c] = m.waveform(m.generated+f, c)
		}
	}

	m.generated += frames

	if m.generated >= m.totalSamples {
		return frames * m.channels, io.EOF
	}

	return frames * m.channels, nil
}
