// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MonoMixer collapses a multi-channel source to mono by averaging each frame.
type MonoMixer struct {
	frameReader
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{frameReader{src: src}}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }

func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples fills dst with one averaged sample per source frame.
func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels == 1 {
		return m.src.ReadSamples(dst)
	}

	frames, err := m.readFrames(len(dst))
	n := len(frames) / channels

	switch channels {
	case 2:
		for f := range n {
			dst[f] = (frames[2*f] + frames[2*f+1]) * 0.5
		}
	default:
		inv := 1 / float32(channels)
		for f := range n {
			var sum float32
			for _, s := range frames[f*channels : (f+1)*channels] {
				sum += s
			}
			dst[f] = sum * inv
		}
	}

	return n, err
}
