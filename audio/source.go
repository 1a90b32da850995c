// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"iter"

	"github.com/ik5/synthwav/sample"
)

// Source produces a sample value at a point in time. Implementations may
// carry mutable state (a noise voice advances its draw stream on every
// call) but are not required to track time themselves; t is supplied by
// the caller in seconds.
//
// ok is false once the source is permanently exhausted. Most voices never
// exhaust. Behavior for negative t is unspecified.
type Source[T sample.Value[T]] interface {
	SampleAt(t float64) (v T, ok bool)
}

// MonoFrom returns a lazy sequence of samples drawn from src at rate Hz,
// starting at start seconds. The internal cursor advances by 1/rate
// *before* each draw, so the first sample corresponds to start + 1/rate.
//
// The sequence terminates exactly when src exhausts; otherwise it is
// infinite and must be bounded by the caller, e.g. with Take. Ranging over
// the sequence a second time continues from fresh cursor state but any
// state inside src has already advanced.
func MonoFrom[T sample.Value[T]](src Source[T], start float64, rate int) iter.Seq[T] {
	tick := 1.0 / float64(rate)

	return func(yield func(T) bool) {
		t := start

		for {
			t += tick

			v, ok := src.SampleAt(t)
			if !ok {
				return
			}

			if !yield(v) {
				return
			}
		}
	}
}

// Mono is MonoFrom starting at time zero.
func Mono[T sample.Value[T]](src Source[T], rate int) iter.Seq[T] {
	return MonoFrom(src, 0, rate)
}

// FramesFrom returns a lazy sequence of frames drawn from src at rate Hz,
// broadcasting each mono sample identically across all channels.
//
// The yielded frame slice is reused between iterations; callers that
// retain a frame must copy it. Buffer.WriteAt and Buffer.AddAt copy frame
// contents, so feeding them this sequence directly is safe.
func FramesFrom[T sample.Value[T]](src Source[T], channels int, start float64, rate int) iter.Seq[[]T] {
	tick := 1.0 / float64(rate)

	return func(yield func([]T) bool) {
		frame := make([]T, channels)
		t := start

		for {
			t += tick

			v, ok := src.SampleAt(t)
			if !ok {
				return
			}

			for c := range frame {
				frame[c] = v
			}

			if !yield(frame) {
				return
			}
		}
	}
}

// Frames is FramesFrom starting at time zero.
func Frames[T sample.Value[T]](src Source[T], channels, rate int) iter.Seq[[]T] {
	return FramesFrom(src, channels, 0, rate)
}

// Take bounds seq to at most n elements. It is the way unbounded source
// sequences are terminated before being mixed into a buffer.
func Take[V any](seq iter.Seq[V], n int) iter.Seq[V] {
	return func(yield func(V) bool) {
		if n <= 0 {
			return
		}

		left := n
		for v := range seq {
			if !yield(v) {
				return
			}

			left--
			if left == 0 {
				return
			}
		}
	}
}
