// SPDX-License-Identifier: EPL-2.0

package opus

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	libopus "github.com/hraban/opus"
	"github.com/ik5/pcmwav/audio"
)

// Name is the registry key for this decoder.
const Name = "opus"

// SampleRate is the rate libopusfile always decodes at, whatever the
// input rate recorded in the header.
const SampleRate = 48000

const (
	oggHeaderSize  = 27
	opusHeadMagic  = "OpusHead"
	opusHeadMinLen = 19
)

// Head is the identification header of an Ogg Opus stream.
type Head struct {
	Version         uint8
	Channels        int
	PreSkip         uint16
	InputSampleRate uint32
	OutputGain      int16
	MappingFamily   uint8
}

// ParseHead reads the OpusHead packet from the first Ogg page of data.
func ParseHead(data []byte) (Head, error) {
	if len(data) < oggHeaderSize || string(data[0:4]) != "OggS" {
		return Head{}, fmt.Errorf("%w: missing Ogg capture pattern", ErrNotOpusStream)
	}

	segments := int(data[26])
	payload := oggHeaderSize + segments
	if len(data) < payload+opusHeadMinLen {
		return Head{}, fmt.Errorf("%w: first page truncated", ErrNotOpusStream)
	}

	p := data[payload:]
	if string(p[:8]) != opusHeadMagic {
		return Head{}, fmt.Errorf("%w: first packet is not OpusHead", ErrNotOpusStream)
	}

	h := Head{
		Version:         p[8],
		Channels:        int(p[9]),
		PreSkip:         binary.LittleEndian.Uint16(p[10:12]),
		InputSampleRate: binary.LittleEndian.Uint32(p[12:16]),
		OutputGain:      int16(binary.LittleEndian.Uint16(p[16:18])),
		MappingFamily:   p[18],
	}

	if h.Channels < 1 {
		return Head{}, audio.ErrNoChannels
	}

	return h, nil
}

// opusReader is the part of opus.Stream a source reads from, so tests can fake it.
type opusReader interface {
	// ReadFloat32 returns the number of samples decoded per channel.
	ReadFloat32(pcm []float32) (int, error)
	Close() error
}

type source struct {
	stream   opusReader
	channels int
}

func (s *source) SampleRate() int { return SampleRate }
func (s *source) Channels() int   { return s.channels }

// BufSize is 120 ms at 48 kHz per channel, the largest Opus packet.
func (s *source) BufSize() int { return 5760 * s.channels }

func (s *source) Close() error {
	if err := s.stream.Close(); err != nil {
		return fmt.Errorf("closing opus stream: %w", err)
	}

	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	whole := len(dst) - len(dst)%s.channels
	if whole == 0 {
		return 0, nil
	}

	frames, err := s.stream.ReadFloat32(dst[:whole])
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("decoding opus: %w", err)
	}

	return frames * s.channels, err
}

// Decoder reads Ogg Opus files, the format browsers record speech in.
// It requires libopusfile through cgo.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading opus data: %w", err)
	}

	head, err := ParseHead(data)
	if err != nil {
		return nil, err
	}

	stream, err := libopus.NewStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotOpusStream, err)
	}

	return &source{stream: stream, channels: head.Channels}, nil
}
