// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Mixdown folds a multi-channel stream to mono by averaging the channels
// of each frame. Mono input passes through untouched.
type Mixdown struct {
	src Stream
	tmp []float32
}

func NewMixdown(src Stream) *Mixdown {
	return &Mixdown{
		src: src,
		tmp: make([]float32, 4096),
	}
}

func (m *Mixdown) SampleRate() int { return m.src.SampleRate() }
func (m *Mixdown) Channels() int   { return 1 }
func (m *Mixdown) BufSize() int    { return m.src.BufSize() }

func (m *Mixdown) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (m *Mixdown) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels == 1 {
		return m.src.ReadSamples(dst)
	}

	needed := len(dst) * channels

	// Grow tmp as needed but never shrink it, so steady-state reads stay
	// allocation free.
	if cap(m.tmp) < needed {
		m.tmp = make([]float32, needed)
	}
	m.tmp = m.tmp[:needed]

	n, err := m.src.ReadSamples(m.tmp)
	if n == 0 {
		return 0, err
	}

	frames := n / channels
	scale := 1 / float32(channels)

	switch channels {
	case 2:
		for f := range frames {
			dst[f] = (m.tmp[2*f] + m.tmp[2*f+1]) * 0.5
		}
	default:
		for f := range frames {
			sum := float32(0)
			for c := range channels {
				sum += m.tmp[f*channels+c]
			}
			dst[f] = sum * scale
		}
	}

	return frames, err
}
