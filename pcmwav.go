// SPDX-License-Identifier: EPL-2.0

package pcmwav

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ik5/pcmwav/audio"
	"github.com/ik5/pcmwav/formats/aiff"
	"github.com/ik5/pcmwav/formats/mp3"
	"github.com/ik5/pcmwav/formats/opus"
	"github.com/ik5/pcmwav/formats/vorbis"
	"github.com/ik5/pcmwav/formats/wav"
)

// NewRegistry returns a registry with every bundled decoder, keyed by the
// file extensions they are usually found under.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()

	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register(mp3.Name, mp3.Decoder{})
	reg.Register(vorbis.Name, vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register(opus.Name, opus.Decoder{})
	reg.Register(aiff.Name, aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	return reg
}

// FormatFromPath returns the registry key for a file name: its extension,
// lower-cased, without the dot.
func FormatFromPath(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Converter decodes recordings with a SampleDecoder and re-encodes them as
// mono 16-bit PCM WAV.
type Converter struct {
	registry *audio.Registry
	mode     audio.ChannelMode
}

// NewConverter returns a Converter over reg. A nil reg uses NewRegistry.
func NewConverter(reg *audio.Registry, mode audio.ChannelMode) *Converter {
	if reg == nil {
		reg = NewRegistry()
	}

	return &Converter{registry: reg, mode: mode}
}

// SampleDecoder returns the SampleDecoder for format.
func (c *Converter) SampleDecoder(format string) (audio.SampleDecoder, error) {
	dec, ok := c.registry.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", audio.ErrUnknownFormat, format)
	}

	cd := audio.NewContainerDecoder(dec)
	cd.Mode = c.mode

	return cd, nil
}

// Convert decodes data as format and returns it as a WAV file.
func (c *Converter) Convert(ctx context.Context, format string, data []byte) ([]byte, error) {
	dec, err := c.SampleDecoder(format)
	if err != nil {
		return nil, err
	}

	return Encode(ctx, dec, data)
}

// Encode runs dec over data and encodes the result. Decoding failures are
// returned before anything is encoded.
func Encode(ctx context.Context, dec audio.SampleDecoder, data []byte) ([]byte, error) {
	samples, rate, err := dec.DecodeSamples(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("decoding samples: %w", err)
	}

	return wav.Encode(samples, rate), nil
}

// ToWAV converts data in format to WAV with the bundled decoders, keeping the
// first channel.
func ToWAV(ctx context.Context, format string, data []byte) ([]byte, error) {
	return NewConverter(nil, audio.FirstChannel).Convert(ctx, format, data)
}
