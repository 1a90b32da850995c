// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/synthwav/audio"
)

// oggReader is an interface for oggvorbis.Reader to allow testing.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type stream struct {
	dec      oggReader
	frameBuf []float32
}

func (s *stream) SampleRate() int { return s.dec.SampleRate() }
func (s *stream) Channels() int   { return s.dec.Channels() }
func (s *stream) Close() error    { return nil }
func (s *stream) BufSize() int    { return cap(s.frameBuf) }

func (s *stream) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := s.dec.Channels()
	wanted := (len(dst) / channels) * channels

	if cap(s.frameBuf) < wanted {
		s.frameBuf = make([]float32, wanted)
	}
	s.frameBuf = s.frameBuf[:wanted]

	// oggvorbis already delivers normalized interleaved float32; Read
	// reports the number of values written.
	n, err := s.dec.Read(s.frameBuf)
	if n == 0 {
		if err != nil {
			return 0, err
		}

		return 0, nil
	}

	copy(dst, s.frameBuf[:n])

	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Stream, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &stream{
		dec:      dec,
		frameBuf: make([]float32, 4096),
	}, nil
}
