// SPDX-License-Identifier: EPL-2.0

package synthwav

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ik5/synthwav/audio"
	"github.com/ik5/synthwav/formats/aiff"
	"github.com/ik5/synthwav/formats/mp3"
	"github.com/ik5/synthwav/formats/vorbis"
	"github.com/ik5/synthwav/formats/wav"
	"github.com/ik5/synthwav/sample"
)

var ErrUnknownFormat = errors.New("no decoder registered for format")

// DefaultRegistry returns a registry with all built-in decoders
// registered under their usual file extensions.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})

	return reg
}

// Render samples src for duration d at sampleRate into a fresh buffer
// with the given channel count. The source is bounded to
// d * sampleRate frames, so it may be one of the usual infinite voices.
func Render[T sample.Value[T]](src audio.Source[T], sampleRate, channels int, d time.Duration) *audio.Buffer[T] {
	frames := int(d.Seconds() * float64(sampleRate))

	buf := audio.NewBuffer[T](sampleRate, channels)
	buf.WriteAt(0, audio.Take(audio.Frames(src, channels, sampleRate), frames))

	return buf
}

// LoadClip decodes r using the decoder registered for format and
// collects the whole stream into a buffer with the given channel count,
// converting to the requested sample type. Streams with a different
// channel count are mixed down to mono and broadcast.
func LoadClip[T sample.Value[T]](reg *audio.Registry, format string, r io.Reader, channels int) (*audio.Buffer[T], error) {
	dec, ok := reg.Get(format)
	if !ok {
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}

	src, err := dec.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", format, err)
	}
	defer src.Close()

	buf := audio.NewBuffer[T](src.SampleRate(), channels)
	buf.Extend(audio.StreamFrames[T](src, channels))

	return buf, nil
}
