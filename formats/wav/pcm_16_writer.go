// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// writeChunkSamples is how many samples WriteWAV16 converts per Write call.
const writeChunkSamples = 8192

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate. samples are already
// quantized; the header is the same one Encode produces.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	var header [HeaderSize]byte
	PutHeader(header[:], sampleRate, uint32(len(samples)*bytesPerSample))

	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("writing WAV header: %w", err)
	}

	if len(samples) == 0 {
		return nil
	}

	buf := make([]byte, min(len(samples), writeChunkSamples)*bytesPerSample)

	for i := 0; i < len(samples); i += writeChunkSamples {
		chunk := samples[i:min(i+writeChunkSamples, len(samples))]
		buf = buf[:len(chunk)*bytesPerSample]

		for j, s := range chunk {
			binary.LittleEndian.PutUint16(buf[j*bytesPerSample:], uint16(s))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("writing WAV data: %w", err)
		}
	}

	return nil
}
