// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"
)

// MockStream is a test helper that generates PCM data for testing. It
// implements the audio.Stream interface (without importing it to avoid
// cycles).
type MockStream struct {
	sampleRate   int
	channels     int
	totalSamples int // total samples per channel
	generated    int
	waveform     func(sample, channel int) float32
}

// NewMockStream creates a stream yielding waveform values for
// totalSamples frames.
func NewMockStream(sampleRate, channels, totalSamples int, waveform func(sample, channel int) float32) *MockStream {
	return &MockStream{
		sampleRate:   sampleRate,
		channels:     channels,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

// NewSilentStream creates a stream of zeros.
func NewSilentStream(sampleRate, channels, totalSamples int) *MockStream {
	return NewMockStream(sampleRate, channels, totalSamples, func(int, int) float32 {
		return 0
	})
}

// NewSineStream creates a stream carrying a sine wave.
func NewSineStream(sampleRate, channels, totalSamples int, frequency float64) *MockStream {
	return NewMockStream(sampleRate, channels, totalSamples, func(sample, _ int) float32 {
		t := float64(sample) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantStream creates a stream with a constant value.
func NewConstantStream(sampleRate, channels, totalSamples int, value float32) *MockStream {
	return NewMockStream(sampleRate, channels, totalSamples, func(int, int) float32 {
		return value
	})
}

func (m *MockStream) SampleRate() int { return m.sampleRate }
func (m *MockStream) Channels() int   { return m.channels }
func (m *MockStream) BufSize() int    { return 4096 }
func (m *MockStream) Close() error    { return nil }

// Reset rewinds the stream so it can be read again.
func (m *MockStream) Reset() {
	m.generated = 0
}

func (m *MockStream) ReadSamples(dst []float32) (int, error) {
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
