// SPDX-License-Identifier: EPL-2.0

// Package scale maps note indexes to frequencies. By convention note 0 is
// tuned to 27.5 Hz (the lowest A on a piano), so in twelve-tone tuning
// note 48 is concert A at 440 Hz.
package scale

import "math"

// BaseFreq is the frequency of note 0 in Hz.
const BaseFreq = 27.5

// Scale converts a note index to a frequency in Hz.
type Scale interface {
	Freq(note int) float64
}

// EDO is an equal division of the octave: every interval between
// neighboring notes has the same frequency ratio.
type EDO struct {
	step float64
}

// NewEDO divides the octave into the given number of equal intervals.
// Twelve is standard Western tuning.
func NewEDO(divisions float64) EDO {
	return EDO{step: math.Pow(2, 1/divisions)}
}

func (e EDO) Freq(note int) float64 {
	return BaseFreq * math.Pow(e.step, float64(note))
}
