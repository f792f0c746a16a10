// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files using github.com/go-audio/aiff.
//
// 16, 24 and 32-bit integer PCM is supported with any channel count; samples
// come out interleaved as float32 in [-1, 1). go-audio needs to seek, so a
// reader that is not an io.ReadSeeker is read into memory first.
//
//	src, err := aiff.Decoder{}.Decode(file)
//	if errors.Is(err, aiff.ErrUnsupportedBitDepth) {
//	    // 8-bit or float AIFF
//	}
package aiff
