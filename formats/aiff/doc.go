// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files into audio streams.
//
// This package uses github.com/go-audio/aiff to parse AIFF files; only
// PCM 16-bit content is supported. Non-seekable readers are buffered
// into memory first.
package aiff
