// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/pcmwav/utils"
)

// Encode quantizes mono samples in [-1, 1] to 16-bit PCM and returns a
// complete WAV file: a 44-byte header followed by the little-endian samples.
// Out-of-range samples are clamped; see utils.Float32ToInt16.
//
// The returned slice is freshly allocated, so Encode is safe for concurrent use.
func Encode(samples []float32, sampleRate int) []byte {
	dataSize := len(samples) * bytesPerSample
	out := make([]byte, HeaderSize+dataSize)

	PutHeader(out, sampleRate, uint32(dataSize))
	putSamples(out[HeaderSize:], samples)

	return out
}

// EncodeFloat32Buffer encodes a mono go-audio buffer using its format's sample rate.
func EncodeFloat32Buffer(buf *goaudio.Float32Buffer) ([]byte, error) {
	if buf == nil || buf.Format == nil {
		return nil, ErrMissingFormat
	}

	if buf.Format.NumChannels != monoChannels {
		return nil, ErrNotMono
	}

	return Encode(buf.Data, buf.Format.SampleRate), nil
}

// putSamples writes quantized samples in order; dst must hold 2 bytes per sample.
func putSamples(dst []byte, samples []float32) {
	for i, s := range samples {
		binary.LittleEndian.PutUint16(dst[i*bytesPerSample:], uint16(utils.Float32ToInt16(s)))
	}
}
