// SPDX-License-Identifier: EPL-2.0

// Package gen provides the reference signal sources: square and sawtooth
// waves plus uniform white noise. Each implements audio.Source and never
// exhausts.
//
// Square and Saw are pure functions of time; their phase is mod(t*freq, 1)
// and is only meaningful for non-negative t of moderate duration, where
// floating point keeps the product precise. Noise ignores time entirely
// and consumes its random generator's draw stream.
package gen
