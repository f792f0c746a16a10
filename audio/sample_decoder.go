// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"context"
	"fmt"
)

// SampleDecoder turns an encoded recording into mono samples in [-1, 1] and
// the sample rate they were recorded at.
type SampleDecoder interface {
	DecodeSamples(ctx context.Context, data []byte) (samples []float32, sampleRate int, err error)
}

// ChannelMode selects how a multi-channel recording becomes mono.
type ChannelMode int

const (
	// FirstChannel keeps channel 0 and discards the rest.
	FirstChannel ChannelMode = iota
	// Downmix averages all channels.
	Downmix
)

func (m ChannelMode) String() string {
	switch m {
	case FirstChannel:
		return "first"
	case Downmix:
		return "downmix"
	default:
		return fmt.Sprintf("ChannelMode(%d)", int(m))
	}
}

// ContainerDecoder is a SampleDecoder backed by a container Decoder.
type ContainerDecoder struct {
	Decoder Decoder
	Mode    ChannelMode
	// BufSize is the read size in samples; zero defers to the source.
	BufSize int
}

// NewContainerDecoder returns a ContainerDecoder that keeps the first channel.
func NewContainerDecoder(d Decoder) *ContainerDecoder {
	return &ContainerDecoder{Decoder: d, Mode: FirstChannel}
}

func (c *ContainerDecoder) DecodeSamples(ctx context.Context, data []byte) ([]float32, int, error) {
	if len(data) == 0 {
		return nil, 0, ErrEmptyInput
	}

	src, err := c.Decoder.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, 0, fmt.Errorf("decoding container: %w", err)
	}

	mono, err := c.mono(src)
	if err != nil {
		_ = src.Close()
		return nil, 0, err
	}

	samples, err := ReadAll(ctx, mono, c.BufSize)
	if err != nil {
		_ = mono.Close()
		return nil, 0, err
	}

	if err := mono.Close(); err != nil {
		return nil, 0, fmt.Errorf("closing source: %w", err)
	}

	return samples, src.SampleRate(), nil
}

func (c *ContainerDecoder) mono(src Source) (Source, error) {
	if src.Channels() < 1 {
		return nil, ErrNoChannels
	}

	if c.Mode == Downmix {
		return NewMonoMixer(src), nil
	}

	return NewChannelPicker(src, 0)
}
