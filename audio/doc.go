// SPDX-License-Identifier: EPL-2.0

// Package audio provides the decoding side of the WAV pipeline: a streaming
// Source abstraction, channel reduction to mono and a registry of container
// decoders.
//
// # Source Interface
//
// All decoders return a Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are interleaved float32 values, nominally in [-1.0, 1.0].
// ReadSamples returns io.EOF once the stream is finished; data returned
// alongside io.EOF is valid.
//
// # Channel Reduction
//
// ChannelPicker keeps a single channel, MonoMixer averages all of them:
//
//	left, err := audio.NewChannelPicker(source, 0)
//	mono := audio.NewMonoMixer(source)
//
// # Decoding Recordings
//
// ContainerDecoder adapts any Decoder into a SampleDecoder that returns the
// whole recording as mono samples plus its sample rate. By default it keeps
// the first channel; set Mode to Downmix to average instead.
//
//	dec := audio.NewContainerDecoder(wav.Decoder{})
//	samples, rate, err := dec.DecodeSamples(ctx, data)
//
// # Format Registry
//
// Registry maps case-insensitive format keys to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	src, err := registry.Decode("WAV", r)
package audio
