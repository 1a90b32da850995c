// SPDX-License-Identifier: EPL-2.0

package gen

import (
	"math"
	"math/rand/v2"

	"github.com/ik5/synthwav/sample"
)

// DefaultFreq is the frequency used when a non-positive one is given
// (A4 concert pitch).
const DefaultFreq = 440.0

// Square is a square-wave voice: the first half of each period sits at
// Min, the second half at Max.
type Square[T sample.Value[T]] struct {
	// Freq is the wave frequency in Hertz.
	Freq float64
}

// NewSquare returns a square wave at freq Hz, or DefaultFreq when freq
// is not positive.
func NewSquare[T sample.Value[T]](freq float64) *Square[T] {
	if freq <= 0 {
		freq = DefaultFreq
	}

	return &Square[T]{Freq: freq}
}

func (s *Square[T]) SampleAt(t float64) (T, bool) {
	var z T

	if math.Mod(t*s.Freq, 1) < 0.5 {
		return z.Min(), true
	}

	return z.Max(), true
}

// Saw is a sawtooth voice ramping from the bottom of the normalized
// range to Max once per period.
type Saw[T sample.Value[T]] struct {
	// Freq is the wave frequency in Hertz.
	Freq float64
}

// NewSaw returns a sawtooth wave at freq Hz, or DefaultFreq when freq is
// not positive.
func NewSaw[T sample.Value[T]](freq float64) *Saw[T] {
	if freq <= 0 {
		freq = DefaultFreq
	}

	return &Saw[T]{Freq: freq}
}

func (s *Saw[T]) SampleAt(t float64) (T, bool) {
	var z T

	return z.FromNormalized(math.Mod(t*s.Freq, 1)), true
}

// Noise is a white-noise voice drawing uniform values in [0, 1) from an
// explicitly owned random generator. The time argument is ignored; each
// call advances the draw stream, so a Noise instance is single-goroutine
// property.
type Noise[T sample.Value[T]] struct {
	rng *rand.Rand
}

// NewNoise returns a noise voice using rng. A nil rng is replaced with a
// generator seeded from process randomness; pass a seeded one for
// reproducible output.
func NewNoise[T sample.Value[T]](rng *rand.Rand) *Noise[T] {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &Noise[T]{rng: rng}
}

func (n *Noise[T]) SampleAt(float64) (T, bool) {
	var z T

	return z.FromNormalized(n.rng.Float64()), true
}
