// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/ik5/synthwav/audio"
	"github.com/ik5/synthwav/sample"
)

const headerSize = 44

// Encode writes buf as an uncompressed integer PCM WAV stream: the fixed
// 44-byte RIFF/WAVE header followed by every frame's channels in order,
// each sample little-endian.
func Encode[T sample.Value[T]](w io.Writer, buf *audio.Buffer[T]) error {
	var z T

	bytesPerSample := z.ByteSize()
	channels := buf.Channels()

	size := uint64(buf.Len()) * uint64(channels) * uint64(bytesPerSample)
	if size > math.MaxUint32-36 {
		return ErrDataTooLarge
	}

	dataSize := uint32(size)
	byteRate := uint32(buf.SampleRate()) * uint32(channels) * uint32(bytesPerSample)
	blockAlign := uint16(channels) * uint16(bytesPerSample)

	header := make([]byte, headerSize)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+dataSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // integer PCM
	binary.LittleEndian.PutUint16(header[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(buf.SampleRate()))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], uint16(bytesPerSample)*8)

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing wav header: %w", err)
	}

	// Serialize in chunks so large buffers don't need a second full-size
	// byte copy in memory.
	const chunkSamples = 8192
	data := buf.Data()
	out := make([]byte, 0, chunkSamples*bytesPerSample)

	for start := 0; start < len(data); start += chunkSamples {
		end := min(start+chunkSamples, len(data))

		out = out[:0]
		for _, s := range data[start:end] {
			out = s.AppendLE(out)
		}

		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("writing wav data: %w", err)
		}
	}

	return nil
}

// Save encodes buf to a newly created file at path, truncating existing
// content. On failure the destination may be left truncated or partially
// written; cleanup is the caller's responsibility.
func Save[T sample.Value[T]](path string, buf *audio.Buffer[T]) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := Encode(f, buf); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	return nil
}
