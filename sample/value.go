// SPDX-License-Identifier: EPL-2.0

package sample

import "encoding/binary"

// Value is the contract every PCM sample representation satisfies. It is a
// vocabulary of conversions with no hidden state; the concrete set is
// Uint8, Int16 and Int32.
//
// The invariant Min <= Zero <= Max holds in each type's natural ordering.
type Value[T any] interface {
	comparable

	// Zero is the value representing silence.
	Zero() T
	// Min is the quietest representable amplitude.
	Min() T
	// Max is the loudest representable amplitude.
	Max() T

	// FromNormalized maps x in [0, 1] to a representable value by scaling
	// relative to Max, truncating toward zero. Out-of-range input is
	// clamped to [Min, Max].
	FromNormalized(x float64) T

	// FromFloat maps bipolar PCM in [-1, 1] to the representable range,
	// with 0 mapping to Zero. Out-of-range input is clamped.
	FromFloat(x float64) T

	// SaturatingAdd combines two samples, clamping the sum to [Min, Max]
	// instead of wrapping.
	SaturatingAdd(T) T

	// AppendLE appends the fixed-width little-endian encoding of the
	// sample to dst and returns the extended slice.
	AppendLE(dst []byte) []byte

	// ByteSize is the encoded width in bytes.
	ByteSize() int
}

// Uint8 is an unsigned 8-bit PCM sample. Silence is 128, the WAV
// convention for 8-bit audio.
type Uint8 uint8

func (Uint8) Zero() Uint8 { return 128 }
func (Uint8) Min() Uint8  { return 0 }
func (Uint8) Max() Uint8  { return 255 }

func (Uint8) FromNormalized(x float64) Uint8 {
	f := 255 * x
	if f >= 255 {
		return 255
	}
	if f <= 0 {
		return 0
	}
	return Uint8(f)
}

func (Uint8) FromFloat(x float64) Uint8 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	return Uint8(128 + x*127)
}

func (v Uint8) SaturatingAdd(o Uint8) Uint8 {
	s := int(v) + int(o)
	if s > 255 {
		return 255
	}
	return Uint8(s)
}

func (v Uint8) AppendLE(dst []byte) []byte { return append(dst, byte(v)) }
func (Uint8) ByteSize() int                { return 1 }

// Int16 is a signed 16-bit PCM sample.
type Int16 int16

func (Int16) Zero() Int16 { return 0 }
func (Int16) Min() Int16  { return -32768 }
func (Int16) Max() Int16  { return 32767 }

func (Int16) FromNormalized(x float64) Int16 {
	f := 32767 * x
	if f >= 32767 {
		return 32767
	}
	if f <= -32768 {
		return -32768
	}
	return Int16(f)
}

func (Int16) FromFloat(x float64) Int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	return Int16(x * 32767)
}

func (v Int16) SaturatingAdd(o Int16) Int16 {
	s := int32(v) + int32(o)
	if s > 32767 {
		return 32767
	}
	if s < -32768 {
		return -32768
	}
	return Int16(s)
}

func (v Int16) AppendLE(dst []byte) []byte {
	return binary.LittleEndian.AppendUint16(dst, uint16(v))
}

func (Int16) ByteSize() int { return 2 }

// Int32 is a signed 32-bit PCM sample.
type Int32 int32

func (Int32) Zero() Int32 { return 0 }
func (Int32) Min() Int32  { return -2147483648 }
func (Int32) Max() Int32  { return 2147483647 }

func (Int32) FromNormalized(x float64) Int32 {
	f := 2147483647 * x
	if f >= 2147483647 {
		return 2147483647
	}
	if f <= -2147483648 {
		return -2147483648
	}
	return Int32(f)
}

func (Int32) FromFloat(x float64) Int32 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	return Int32(x * 2147483647)
}

func (v Int32) SaturatingAdd(o Int32) Int32 {
	s := int64(v) + int64(o)
	if s > 2147483647 {
		return 2147483647
	}
	if s < -2147483648 {
		return -2147483648
	}
	return Int32(s)
}

func (v Int32) AppendLE(dst []byte) []byte {
	return binary.LittleEndian.AppendUint32(dst, uint32(v))
}

func (Int32) ByteSize() int { return 4 }
