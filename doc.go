// SPDX-License-Identifier: EPL-2.0

// Package pcmwav converts recordings into canonical mono 16-bit PCM WAV files.
//
// The encoder itself lives in formats/wav and is a pure function:
//
//	out := wav.Encode(samples, 44100)
//
// This package wires it to the bundled decoders so a recording in any
// supported container can be converted in one call:
//
//	out, err := pcmwav.ToWAV(ctx, "opus", recording)
//
// # Supported Inputs
//
//   - WAV (16/24/32-bit PCM) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - Ogg Opus via formats/opus (cgo, libopusfile)
//   - AIFF (16/24/32-bit PCM) via formats/aiff
//
// # Channels
//
// The output is always mono. By default the first channel of the decoded
// audio is kept, matching what a browser's getChannelData(0) gives; a
// Converter built with audio.Downmix averages all channels instead.
//
//	conv := pcmwav.NewConverter(nil, audio.Downmix)
//	out, err := conv.Convert(ctx, "mp3", data)
//
// The sample rate is kept as decoded; nothing is resampled.
//
// # Custom Decoders
//
// Anything implementing audio.SampleDecoder can feed the encoder:
//
//	out, err := pcmwav.Encode(ctx, myDecoder, data)
//
// Decoding errors are returned wrapped, and no WAV is produced for them.
package pcmwav
