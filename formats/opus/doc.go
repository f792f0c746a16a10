// SPDX-License-Identifier: EPL-2.0

// Package opus decodes Ogg Opus recordings, such as the ones browsers
// produce from MediaRecorder, using github.com/hraban/opus.
//
// Output is always 48 kHz interleaved float32; the channel count comes from
// the OpusHead packet because libopusfile does not report it.
//
//	src, err := opus.Decoder{}.Decode(file)
//	samples, err := audio.ReadAll(ctx, src, 0)
//
// The package links libopus and libopusfile with cgo.
package opus
