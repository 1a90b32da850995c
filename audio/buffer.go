// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"iter"

	"github.com/ik5/synthwav/sample"
)

// Buffer is a growable multi-channel PCM buffer. Samples are stored
// interleaved, one frame per instant, and the buffer only ever grows.
//
// A Buffer is exclusively owned by a single goroutine while it is being
// composed; sequence the write/add calls, then hand it to the encoder.
type Buffer[T sample.Value[T]] struct {
	data       []T // interleaved, len is always a multiple of channels
	channels   int
	sampleRate int
}

// NewBuffer creates an empty buffer. sampleRate must be positive and
// channels must be at least 1; neither is validated here.
func NewBuffer[T sample.Value[T]](sampleRate, channels int) *Buffer[T] {
	return &Buffer[T]{
		channels:   channels,
		sampleRate: sampleRate,
	}
}

// SampleRate in Hz.
func (b *Buffer[T]) SampleRate() int { return b.sampleRate }

// Channels per frame.
func (b *Buffer[T]) Channels() int { return b.channels }

// Len is the current frame count.
func (b *Buffer[T]) Len() int { return len(b.data) / b.channels }

// Frame returns the i-th frame as a view into the buffer. Mutating the
// returned slice mutates the buffer.
func (b *Buffer[T]) Frame(i int) []T {
	return b.data[i*b.channels : (i+1)*b.channels]
}

// Data returns the interleaved sample storage as a view.
func (b *Buffer[T]) Data() []T { return b.data }

// grow appends silence frames until the buffer holds at least frames
// entries. It never shrinks.
func (b *Buffer[T]) grow(frames int) {
	var z T
	silence := z.Zero()

	for len(b.data) < frames*b.channels {
		b.data = append(b.data, silence)
	}
}

// Push appends one frame. Frames shorter than the channel count leave the
// remaining channels at silence; longer frames are truncated.
func (b *Buffer[T]) Push(frame []T) {
	b.grow(b.Len() + 1)
	copy(b.data[len(b.data)-b.channels:], frame)
}

// Extend appends every frame of a finite sequence in order.
func (b *Buffer[T]) Extend(frames iter.Seq[[]T]) {
	for frame := range frames {
		b.Push(frame)
	}
}

// visit grows the buffer to reach start, then combines each incoming
// frame into the entry at the cursor, appending silence frames as the
// sequence runs past the current length. Both write and add share this
// traversal so the growth policy cannot drift between them.
func (b *Buffer[T]) visit(start int, frames iter.Seq[[]T], combine func(dst, src []T)) {
	b.grow(start)

	i := start
	for frame := range frames {
		if i >= b.Len() {
			b.grow(i + 1)
		}

		combine(b.Frame(i), frame)
		i++
	}
}

// WriteAt overwrites entries starting at frame index start with the
// incoming sequence, growing the buffer as needed. Any gap between the
// current length and start is filled with silence. Entries below start
// are untouched.
//
// The sequence may be infinite, in which case WriteAt never returns;
// bound it with Take first.
func (b *Buffer[T]) WriteAt(start int, frames iter.Seq[[]T]) {
	b.visit(start, frames, func(dst, src []T) {
		copy(dst, src)
	})
}

// AddAt mixes the incoming sequence into the buffer starting at frame
// index start, combining each channel with saturating addition. Growth
// behaves exactly as in WriteAt.
func (b *Buffer[T]) AddAt(start int, frames iter.Seq[[]T]) {
	b.visit(start, frames, func(dst, src []T) {
		n := min(len(dst), len(src))
		for c := range n {
			dst[c] = dst[c].SaturatingAdd(src[c])
		}
	})
}
