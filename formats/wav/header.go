// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const (
	// HeaderSize is the size of the canonical RIFF/WAVE header written by Encode.
	HeaderSize = 44

	// ContentType is the media type of the encoded buffer.
	ContentType = "audio/wav"
	// Extension is the file extension of the encoded buffer.
	Extension = ".wav"

	riffHeaderSize = 36 // header bytes counted by ChunkSize, excluding "RIFF" and the size itself
	fmtChunkSize   = 16
	formatPCM      = 1
	monoChannels   = 1
	bitsPerSample  = 16
	bytesPerSample = bitsPerSample / 8
)

var (
	riffTag    = [4]byte{'R', 'I', 'F', 'F'}
	waveFmtTag = [8]byte{'W', 'A', 'V', 'E', 'f', 'm', 't', ' '}
	dataTag    = [4]byte{'d', 'a', 't', 'a'}
)

// Header is the decoded view of a canonical 44-byte WAV header.
type Header struct {
	ChunkSize     uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	DataSize      uint32
}

// SampleCount returns the number of sample frames described by the data chunk.
func (h Header) SampleCount() int {
	if h.BlockAlign == 0 {
		return 0
	}

	return int(h.DataSize / uint32(h.BlockAlign))
}

// PutHeader writes a mono 16-bit PCM header for dataSize bytes of PCM into
// dst[:HeaderSize]. It panics if dst is shorter than HeaderSize.
//
// ChunkSize is 32 bits wide and wraps once dataSize exceeds 4 GiB minus 36 bytes.
func PutHeader(dst []byte, sampleRate int, dataSize uint32) {
	_ = dst[HeaderSize-1] // bounds check hint

	copy(dst[0:4], riffTag[:])
	binary.LittleEndian.PutUint32(dst[4:8], riffHeaderSize+dataSize)
	copy(dst[8:16], waveFmtTag[:])
	binary.LittleEndian.PutUint32(dst[16:20], fmtChunkSize)
	binary.LittleEndian.PutUint16(dst[20:22], formatPCM)
	binary.LittleEndian.PutUint16(dst[22:24], monoChannels)
	binary.LittleEndian.PutUint32(dst[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(dst[28:32], uint32(sampleRate)*monoChannels*bytesPerSample)
	binary.LittleEndian.PutUint16(dst[32:34], monoChannels*bytesPerSample)
	binary.LittleEndian.PutUint16(dst[34:36], bitsPerSample)
	copy(dst[36:40], dataTag[:])
	binary.LittleEndian.PutUint32(dst[40:44], dataSize)
}

// ParseHeader decodes a canonical 44-byte header: fmt chunk at offset 12 and
// data chunk at offset 36. Files with extra chunks should go through Decoder.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("%w: got %d bytes", ErrShortHeader, len(b))
	}

	if !bytes.Equal(b[0:4], riffTag[:]) || !bytes.Equal(b[8:12], waveFmtTag[:4]) {
		return Header{}, ErrNotWavFile
	}

	if !bytes.Equal(b[12:16], waveFmtTag[4:]) {
		return Header{}, ErrUnsupportedWavLayout
	}

	if !bytes.Equal(b[36:40], dataTag[:]) {
		return Header{}, ErrUnsupportedWavChunks
	}

	return Header{
		ChunkSize:     binary.LittleEndian.Uint32(b[4:8]),
		AudioFormat:   binary.LittleEndian.Uint16(b[20:22]),
		NumChannels:   binary.LittleEndian.Uint16(b[22:24]),
		SampleRate:    binary.LittleEndian.Uint32(b[24:28]),
		ByteRate:      binary.LittleEndian.Uint32(b[28:32]),
		BlockAlign:    binary.LittleEndian.Uint16(b[32:34]),
		BitsPerSample: binary.LittleEndian.Uint16(b[34:36]),
		DataSize:      binary.LittleEndian.Uint32(b[40:44]),
	}, nil
}
