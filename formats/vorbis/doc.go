// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files into audio streams using
// github.com/jfreymuth/oggvorbis.
package vorbis
