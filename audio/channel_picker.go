// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// ChannelPicker exposes a single channel of a multi-channel source as mono.
type ChannelPicker struct {
	frameReader
	channel int
}

// NewChannelPicker returns a mono view of channel (zero based) of src.
func NewChannelPicker(src Source, channel int) (*ChannelPicker, error) {
	if channel < 0 || channel >= src.Channels() {
		return nil, fmt.Errorf("%w: %d of %d", ErrInvalidChannel, channel, src.Channels())
	}

	return &ChannelPicker{frameReader: frameReader{src: src}, channel: channel}, nil
}

func (p *ChannelPicker) SampleRate() int { return p.src.SampleRate() }
func (p *ChannelPicker) Channels() int   { return 1 }
func (p *ChannelPicker) BufSize() int    { return p.src.BufSize() }

func (p *ChannelPicker) Close() error {
	if err := p.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (p *ChannelPicker) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := p.src.Channels()
	if channels == 1 {
		return p.src.ReadSamples(dst)
	}

	frames, err := p.readFrames(len(dst))
	n := len(frames) / channels

	for f := range n {
		dst[f] = frames[f*channels+p.channel]
	}

	return n, err
}
