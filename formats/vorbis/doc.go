// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files with github.com/jfreymuth/oggvorbis.
//
//	src, err := vorbis.Decoder{}.Decode(file)
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// Samples are interleaved float32 in [-1, 1] at the stream's sample rate.
// Reads always return whole frames; a dst shorter than one frame reads nothing.
package vorbis
