// SPDX-License-Identifier: EPL-2.0

// Package sample defines the numeric contract for PCM sample values.
//
// A sample type carries three sentinel amplitudes (Zero for silence, Min
// and Max for the quietest and loudest representable values), conversions
// from normalized and bipolar floating point, saturating addition for
// mixing, and a fixed-width little-endian byte encoding for container
// serialization.
//
// # Concrete Types
//
// Three representations are provided, matching the integer PCM widths of
// the WAV container:
//
//   - Uint8: unsigned 8-bit, silence at 128
//   - Int16: signed 16-bit, silence at 0
//   - Int32: signed 32-bit, silence at 0
//
// # Generic Use
//
// The Value constraint is self-referential so generic code can stay fully
// typed:
//
//	func silence[T sample.Value[T]](n int) []T {
//	    var z T
//	    out := make([]T, n)
//	    for i := range out {
//	        out[i] = z.Zero()
//	    }
//	    return out
//	}
//
// # Conversion Semantics
//
// FromNormalized scales [0, 1] by Max with a truncating cast, so 0 maps to
// Min-or-Zero territory and 1 maps to Max. FromFloat maps bipolar [-1, 1]
// PCM (the format decoded audio streams arrive in) onto the full range
// with 0 at Zero. Both clamp out-of-range input instead of failing.
package sample
