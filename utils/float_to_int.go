// SPDX-License-Identifier: EPL-2.0

// Package utils holds the sample quantization shared by the encoder and the
// decoders.
package utils

import "math"

// PCM16Scale is the factor a clamped sample is multiplied by.
// The same value bounds both ends, so -32768 is never produced.
const PCM16Scale = 32767.0

// Float32ToInt16 clamps x to [-1, 1], scales it by PCM16Scale and truncates
// toward zero. NaN maps to 0 and ±Inf to ±32767.
func Float32ToInt16(x float32) int16 {
	v := float64(x)
	switch {
	case math.IsNaN(v):
		return 0
	case v > 1:
		v = 1
	case v < -1:
		v = -1
	}

	return int16(v * PCM16Scale)
}

// Float32ToInt16Slice quantizes src into dst and returns how many samples
// were converted, which is the shorter of the two lengths.
func Float32ToInt16Slice(dst []int16, src []float32) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = Float32ToInt16(src[i])
	}

	return n
}
