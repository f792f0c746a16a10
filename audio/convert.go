// SPDX-License-Identifier: EPL-2.0

package audio

// IntFullScale returns the magnitude of the most negative sample at bitDepth,
// which is the divisor that maps integer PCM into [-1, 1). Unknown depths
// are treated as 16-bit.
func IntFullScale(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 128.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}

// IntsToFloat32 normalizes signed integer PCM at bitDepth into dst and returns
// the number of samples converted.
func IntsToFloat32(dst []float32, src []int, bitDepth int) int {
	n := min(len(dst), len(src))
	scale := 1 / IntFullScale(bitDepth)

	for i := range n {
		dst[i] = float32(src[i]) * scale
	}

	return n
}
