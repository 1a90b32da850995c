// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"iter"
	"sync"

	"github.com/ik5/synthwav/sample"
)

// Stream is decoded PCM audio pulled in batches of normalized float32
// samples. It is the shape every format decoder produces so recordings
// can be layered into a Buffer alongside synthesized voices.
type Stream interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0
	// with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Stream from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Stream, error)
}

// Registry for decoders by format key (e.g., "wav", "mp3", "ogg").
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

// StreamFrames adapts a decoded stream into a finite frame sequence with
// the given channel count, converting each normalized sample with
// sample.Value.FromFloat.
//
// A mono stream is broadcast across all channels. A stream whose channel
// count differs from channels is mixed down to mono first. The sequence
// ends when the stream reports io.EOF, any other error, or an empty read;
// stream errors are not distinguishable from end of data here, use the
// stream directly when that matters.
//
// The yielded frame slice is reused between iterations.
func StreamFrames[T sample.Value[T]](s Stream, channels int) iter.Seq[[]T] {
	if s.Channels() != channels && s.Channels() != 1 {
		s = NewMixdown(s)
	}

	src := s.Channels()

	return func(yield func([]T) bool) {
		var z T

		buf := make([]float32, 4096-(4096%src))
		frame := make([]T, channels)

		for {
			n, err := s.ReadSamples(buf)

			for f := range n / src {
				if src == channels {
					for c := range channels {
						frame[c] = z.FromFloat(float64(buf[f*src+c]))
					}
				} else {
					v := z.FromFloat(float64(buf[f*src]))
					for c := range frame {
						frame[c] = v
					}
				}

				if !yield(frame) {
					return
				}
			}

			if err != nil || n == 0 {
				return
			}
		}
	}
}
