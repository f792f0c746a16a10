// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files with github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces interleaved stereo, so the Source reports two
// channels even for mono files. Pick or mix a channel before encoding:
//
//	src, err := mp3.Decoder{}.Decode(file)
//	mono, err := audio.NewChannelPicker(src, 0)
//
// Samples are float32 in [-1, 1) at the file's native sample rate. A read
// that returns data together with io.EOF is split: the data is returned with
// a nil error and the next call reports io.EOF.
package mp3
