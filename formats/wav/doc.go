// SPDX-License-Identifier: EPL-2.0

// Package wav encodes mono samples into canonical 16-bit PCM WAV files and
// decodes integer PCM WAV files back into samples.
//
// # Encoding
//
// Encode is the whole transform: clamp each float sample to [-1, 1], scale by
// 32767, truncate toward zero and write it after a fixed 44-byte header.
//
//	out := wav.Encode([]float32{0, 1, -1}, 44100)
//	// len(out) == 50, out[44:] == 00 00 ff 7f 01 80
//
// The output is always mono, 16-bit, format tag 1, and its length is
// 44 + 2*len(samples). NaN samples become 0 and infinities clamp to ±32767.
// The negative end is -32767, not -32768.
//
// Header layout (little-endian):
//
//	 0  "RIFF"
//	 4  36 + data size
//	 8  "WAVEfmt "
//	16  16
//	20  1 (PCM)
//	22  1 (mono)
//	24  sample rate
//	28  sample rate * 2
//	32  2
//	34  16
//	36  "data"
//	40  data size
//
// Sizes are 32-bit; above 4 GiB of PCM the RIFF size wraps.
//
// WriteWAV16 writes the same layout for samples that are already int16, and
// EncodeFloat32Buffer accepts a mono go-audio Float32Buffer.
//
// # Inspecting
//
// ParseHeader reads a canonical header back, e.g. to recover the sample rate
// and sample count:
//
//	h, err := wav.ParseHeader(out)
//	fmt.Println(h.SampleRate, h.SampleCount())
//
// # Decoding
//
// Decoder uses github.com/go-audio/wav, so files with extra chunks (LIST,
// JUNK, fact) decode as well as canonical ones. 16, 24 and 32-bit integer PCM
// with any channel count is supported; samples come out as float32 in [-1, 1).
//
//	src, err := wav.Decoder{}.Decode(file)
//	if errors.Is(err, wav.ErrOnlyPCMSupported) {
//	    // float or compressed WAV
//	}
package wav
