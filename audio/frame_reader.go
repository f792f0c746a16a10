// SPDX-License-Identifier: EPL-2.0

package audio

const minFrameBuf = 8192

// frameReader pulls whole interleaved frames from a multi-channel source into
// a scratch buffer that grows but never shrinks.
type frameReader struct {
	src Source
	tmp []float32
}

// readFrames reads up to frames frames and returns the interleaved samples
// of the complete frames read. A trailing partial frame is dropped.
func (f *frameReader) readFrames(frames int) ([]float32, error) {
	channels := f.src.Channels()
	need := frames * channels

	if cap(f.tmp) < need {
		f.tmp = make([]float32, max(need, minFrameBuf))
	}
	f.tmp = f.tmp[:need]

	n, err := f.src.ReadSamples(f.tmp)
	return f.tmp[:n-n%channels], err
}
