// SPDX-License-Identifier: EPL-2.0

// Package synthwav synthesizes audio from parametric signal sources and
// serializes the result as uncompressed PCM WAV.
//
// # Quick Start
//
// Compose a one-second square wave and save it:
//
//	buf := synthwav.Render[sample.Int16](
//	    gen.NewSquare[sample.Int16](440), 44100, 1, time.Second)
//	if err := wav.Save("square.wav", buf); err != nil {
//	    // Handle error
//	}
//
// # Layering Voices
//
// Buffers mix with saturating addition, so several voices can be layered
// at arbitrary offsets without wrapping on overflow:
//
//	buf := audio.NewBuffer[sample.Int16](44100, 1)
//	buf.AddAt(0, audio.Take(audio.Frames(square, 1, 44100), 44100))
//	buf.AddAt(0, audio.Take(audio.Frames(saw, 1, 44100), 44100))
//	wav.Save("layered.wav", buf)
//
// # Sample Types
//
// The sample package defines the numeric vocabulary: unsigned 8-bit and
// signed 16/32-bit PCM, each carrying its silence/min/max sentinels,
// normalized conversion and little-endian encoding. All of audio, gen and
// the wav encoder are generic over these types.
//
// # Voices
//
// The gen package provides the reference generators (square, sawtooth,
// uniform noise); anything implementing audio.Source plugs into the same
// pipeline. The scale package converts note indexes to frequencies for
// callers that think in notes rather than Hertz.
//
// # Existing Recordings
//
// Format decoders (WAV, MP3, Ogg Vorbis, AIFF) turn files into
// audio.Stream values which LoadClip collects into mixable buffers:
//
//	reg := synthwav.DefaultRegistry()
//	clip, err := synthwav.LoadClip[sample.Int16](reg, "mp3", file, 1)
//
// Decoding and mixing stay offline: there is no playback, and nothing
// here is safe for concurrent use of a single buffer or voice.
package synthwav
