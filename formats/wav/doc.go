// SPDX-License-Identifier: EPL-2.0

// Package wav encodes audio buffers to uncompressed PCM WAV files and
// decodes existing WAV files into streams.
//
// # Encoding
//
// Encode serializes a buffer with any sample width the sample package
// defines (8, 16 or 32 bit); Save wraps it with file creation:
//
//	buf := audio.NewBuffer[sample.Int16](44100, 1)
//	// ... compose ...
//	if err := wav.Save("out.wav", buf); err != nil {
//	    // Handle error. A failed save may leave a partial file behind.
//	}
//
// The header layout is the canonical 44-byte RIFF/WAVE/fmt/data form,
// little-endian throughout.
//
// # Decoding
//
// The Decoder reads PCM 16-bit WAV files through the github.com/go-audio
// library and returns an audio.Stream:
//
//	source, err := wav.Decoder{}.Decode(file)
//
// Non-seekable readers are buffered into memory first.
package wav
