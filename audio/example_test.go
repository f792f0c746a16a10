// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/ik5/pcmwav/audio"
	"github.com/ik5/pcmwav/internal/audiotest"
)

// Example_monoMixer demonstrates converting stereo to mono.
func Example_monoMixer() {
	// Create a stereo audio source
	source := audiotest.NewSineSource(16000, 2, 16000, 440.0) // 1 second stereo

	// Create a mono mixer
	mono := audio.NewMonoMixer(source)

	fmt.Printf("Input channels: %d\n", source.Channels())
	fmt.Printf("Output channels: %d\n", mono.Channels())
	fmt.Printf("Sample rate: %d Hz\n", mono.SampleRate())

	buf := make([]float32, 100)
	n, _ := mono.ReadSamples(buf)

	fmt.Printf("Read %d mono samples\n", n)
	// Output:
	// Input channels: 2
	// Output channels: 1
	// Sample rate: 16000 Hz
	// Read 100 mono samples
}

// Example_channelPicker keeps only the left channel of a stereo stream.
func Example_channelPicker() {
	source := audiotest.NewSliceSource(8000, 2, []float32{0.1, 0.9, 0.2, 0.8})

	left, err := audio.NewChannelPicker(source, 0)
	if err != nil {
		fmt.Println(err)
		return
	}

	samples, _ := audio.ReadAll(context.Background(), left, 0)
	fmt.Println(samples)
	// Output:
	// [0.1 0.2]
}

// Example_multiChannel demonstrates multi-channel mixing.
func Example_multiChannel() {
	// Create a 5.1 surround sound source (6 channels)
	source := audiotest.NewConstantSource(48000, 6, 48000, 0.5)

	fmt.Printf("Input: %d channels\n", source.Channels())

	mono := audio.NewMonoMixer(source)

	fmt.Printf("Output: %d channel (mono)\n", mono.Channels())

	buf := make([]float32, 1)
	n, _ := mono.ReadSamples(buf)
	if n > 0 {
		fmt.Printf("Output sample value: %.1f\n", buf[0])
	}
	// Output:
	// Input: 6 channels
	// Output: 1 channel (mono)
	// Output sample value: 0.5
}

// toneDecoder ignores its input and always yields a short stereo tone.
type toneDecoder struct{}

func (toneDecoder) Decode(io.Reader) (audio.Source, error) {
	return audiotest.NewSineSource(16000, 2, 1600, 440.0), nil
}

// Example_registry demonstrates the format registry.
func Example_registry() {
	registry := audio.NewRegistry()
	registry.Register("TONE", toneDecoder{})

	decoder, ok := registry.Get("tone")
	if !ok {
		fmt.Println("Decoder not found")
		return
	}

	fmt.Printf("Retrieved decoder: %T\n", decoder)
	fmt.Println("Formats:", registry.Formats())

	if _, err := registry.Decode("flac", bytes.NewReader(nil)); err != nil {
		fmt.Println(err)
	}
	// Output:
	// Retrieved decoder: audio_test.toneDecoder
	// Formats: [tone]
	// no decoder registered for format: "flac"
}

// Example_containerDecoder turns an encoded recording into mono samples.
func Example_containerDecoder() {
	dec := audio.NewContainerDecoder(toneDecoder{})

	samples, rate, err := dec.DecodeSamples(context.Background(), []byte("tone"))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%s: %d samples at %d Hz\n", dec.Mode, len(samples), rate)
	// Output:
	// first: 1600 samples at 16000 Hz
}

// Example_errorHandling shows proper error handling in audio processing.
func Example_errorHandling() {
	source := audiotest.NewSineSource(16000, 1, 1000, 440.0) // Short audio

	buf := make([]float32, 4096)
	totalSamples := 0

	for {
		n, err := source.ReadSamples(buf)

		// Always process available samples first
		if n > 0 {
			totalSamples += n
		}

		if err == io.EOF {
			fmt.Println("Reached end of audio stream")
			break
		}
		if err != nil {
			fmt.Printf("Error reading samples: %v\n", err)
			break
		}
	}

	fmt.Printf("Successfully processed %d samples\n", totalSamples)
	// Output:
	// Reached end of audio stream
	// Successfully processed 1000 samples
}
