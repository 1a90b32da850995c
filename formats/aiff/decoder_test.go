// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// mockAiffReader simulates the aiff.Decoder for testing.
type mockAiffReader struct {
	format  *goaudio.Format
	samples []int
	offset  int
}

func (m *mockAiffReader) Format() *goaudio.Format { return m.format }

func (m *mockAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.offset >= len(m.samples) {
		return 0, nil
	}

	n := min(len(buf.Data), len(m.samples)-m.offset)
	copy(buf.Data, m.samples[m.offset:m.offset+n])
	m.offset += n

	return n, nil
}

func newMockStream(samples ...int) *stream {
	return &stream{
		dec: &mockAiffReader{
			format:  &goaudio.Format{SampleRate: 22050, NumChannels: 1},
			samples: samples,
		},
		sampleRate: 22050,
		channels:   1,
	}
}

func TestStream_ReadSamples(t *testing.T) {
	t.Parallel()

	s := newMockStream(0, 16384, -16384)

	if s.SampleRate() != 22050 {
		t.Errorf("SampleRate() = %d, want 22050", s.SampleRate())
	}

	if s.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", s.Channels())
	}

	dst := make([]float32, 3)
	n, err := s.ReadSamples(dst)

	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != 3 {
		t.Fatalf("ReadSamples() n = %d, want 3", n)
	}

	want := []float32{0, 0.5, -0.5}
	for i, w := range want {
		if math.Abs(float64(dst[i]-w)) > 0.001 {
			t.Errorf("sample %d = %v, want ≈%v", i, dst[i], w)
		}
	}
}

func TestStream_ShortReadSignalsEOF(t *testing.T) {
	t.Parallel()

	s := newMockStream(100)

	dst := make([]float32, 8)
	n, err := s.ReadSamples(dst)

	if n != 1 {
		t.Errorf("ReadSamples() n = %d, want 1", n)
	}

	if err != io.EOF {
		t.Errorf("ReadSamples() error = %v, want io.EOF", err)
	}
}

func TestStream_ExhaustedReaderIsEOF(t *testing.T) {
	t.Parallel()

	s := newMockStream()

	n, err := s.ReadSamples(make([]float32, 4))
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() = (%d, %v), want (0, io.EOF)", n, err)
	}
}

func TestStream_EmptyDst(t *testing.T) {
	t.Parallel()

	s := newMockStream(1, 2, 3)

	n, err := s.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestDecoder_NotAiffFile(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("nothing like an aiff file")))
	if !errors.Is(err, ErrNotAiffFile) {
		t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
	}
}
