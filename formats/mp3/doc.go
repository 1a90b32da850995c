// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files into audio streams.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
// The decoder always yields stereo output at the file's sample rate;
// wrap it in audio.Mixdown (or let audio.StreamFrames do so) for mono.
package mp3
