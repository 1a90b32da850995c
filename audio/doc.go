// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample-stream composition core: signal
// sources, rate-driven sample sequences, and the growable mixing buffer.
//
// # Signal Sources
//
// Anything that can produce a sample at a point in time implements
// Source:
//
//	type Source[T sample.Value[T]] interface {
//	    SampleAt(t float64) (v T, ok bool)
//	}
//
// Sources are wrapped by the rate adapters Mono and Frames, which turn a
// time-driven source into a lazy sample-rate-driven sequence. The cursor
// advances by 1/rate before each draw, and the sequence runs forever
// unless the source exhausts, so bound it explicitly:
//
//	voice := gen.NewSquare[sample.Int16](440)
//	seq := audio.Take(audio.Frames(voice, 1, 44100), 44100)
//
// # Buffers and Mixing
//
// Buffer owns a growable interleaved frame store. WriteAt overwrites,
// AddAt layers with per-channel saturating addition, and both grow the
// buffer on demand, filling any gap with silence frames:
//
//	buf := audio.NewBuffer[sample.Int16](44100, 1)
//	buf.AddAt(0, audio.Take(audio.Frames(square, 1, 44100), 44100))
//	buf.AddAt(0, audio.Take(audio.Frames(saw, 1, 44100), 44100))
//
// A buffer is single-goroutine property while composing; run the write
// and add calls in sequence, then pass the buffer to the encoder.
//
// # Decoded Streams
//
// Stream is the pull interface format decoders produce: interleaved
// float32 PCM in [-1, 1], io.EOF at end of data. StreamFrames bridges a
// Stream into the frame sequences the mixer consumes, and Mixdown folds
// multi-channel streams to mono by averaging. The Registry maps format
// keys to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
package audio
