// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"sync"
	"testing"

	goaudio "github.com/go-audio/audio"
)

func TestEncode_Scenario(t *testing.T) {
	t.Parallel()

	out := Encode([]float32{0.0, 1.0, -1.0}, 44100)

	if len(out) != 50 {
		t.Fatalf("len = %d, want 50", len(out))
	}

	wantPCM := []byte{0x00, 0x00, 0xFF, 0x7F, 0x01, 0x80}
	if !bytes.Equal(out[HeaderSize:], wantPCM) {
		t.Errorf("PCM bytes = % x, want % x", out[HeaderSize:], wantPCM)
	}

	if got := binary.LittleEndian.Uint32(out[4:8]); got != 42 {
		t.Errorf("ChunkSize = %d, want 42", got)
	}

	if got := binary.LittleEndian.Uint32(out[40:44]); got != 6 {
		t.Errorf("Subchunk2Size = %d, want 6", got)
	}
}

func TestEncode_Length(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 2, 3, 255, 4096, 8193} {
		out := Encode(make([]float32, n), 22050)

		if len(out) != HeaderSize+2*n {
			t.Errorf("Encode(%d samples) len = %d, want %d", n, len(out), HeaderSize+2*n)
		}
		if got := binary.LittleEndian.Uint32(out[4:8]); int(got) != len(out)-8 {
			t.Errorf("Encode(%d samples) ChunkSize = %d, want %d", n, got, len(out)-8)
		}
		if got := binary.LittleEndian.Uint32(out[40:44]); int(got) != 2*n {
			t.Errorf("Encode(%d samples) Subchunk2Size = %d, want %d", n, got, 2*n)
		}
	}
}

func TestEncode_EmptyIsHeaderOnly(t *testing.T) {
	t.Parallel()

	out := Encode(nil, 8000)

	var want [HeaderSize]byte
	PutHeader(want[:], 8000, 0)

	if !bytes.Equal(out, want[:]) {
		t.Errorf("Encode(nil) = % x, want % x", out, want[:])
	}
}

func TestEncode_Clamping(t *testing.T) {
	t.Parallel()

	out := Encode([]float32{1.5, 1.0, -1.5, -1.0}, 8000)
	pcm := samplesAt(out)

	if pcm[0] != pcm[1] {
		t.Errorf("1.5 -> %d, 1.0 -> %d, want equal", pcm[0], pcm[1])
	}
	if pcm[2] != pcm[3] {
		t.Errorf("-1.5 -> %d, -1.0 -> %d, want equal", pcm[2], pcm[3])
	}
	if pcm[3] != -32767 {
		t.Errorf("-1.0 -> %d, want -32767 (symmetric clamp)", pcm[3])
	}
}

func TestEncode_NonFinite(t *testing.T) {
	t.Parallel()

	in := []float32{
		float32(math.NaN()),
		float32(math.Inf(1)),
		float32(math.Inf(-1)),
	}
	want := []int16{0, 32767, -32767}

	got := samplesAt(Encode(in, 8000))
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestEncode_PreservesOrder(t *testing.T) {
	t.Parallel()

	in := make([]float32, 1000)
	for i := range in {
		in[i] = float32(i)/500 - 1
	}

	got := samplesAt(Encode(in, 8000))
	for i := 1; i < len(got); i++ {
		if got[i] < got[i-1] {
			t.Fatalf("sample[%d] = %d < sample[%d] = %d, order not preserved", i, got[i], i-1, got[i-1])
		}
	}
}

func TestEncode_FreshBuffers(t *testing.T) {
	t.Parallel()

	in := []float32{0.5, -0.5}
	a := Encode(in, 8000)
	b := Encode(in, 8000)

	a[HeaderSize] = 0xAA
	if b[HeaderSize] == 0xAA {
		t.Error("Encode() returned shared buffers")
	}
}

func TestEncode_Concurrent(t *testing.T) {
	t.Parallel()

	in := []float32{0.25, -0.25, 0.75}
	want := Encode(in, 16000)

	var wg sync.WaitGroup
	for range 16 {
		wg.Go(func() {
			if got := Encode(in, 16000); !bytes.Equal(got, want) {
				t.Error("concurrent Encode() produced different output")
			}
		})
	}
	wg.Wait()
}

func TestEncode_DecodesWithGoAudio(t *testing.T) {
	t.Parallel()

	in := []float32{0, 0.5, -0.5, 1, -1}
	src, err := Decoder{}.Decode(bytes.NewReader(Encode(in, 16000)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if src.SampleRate() != 16000 || src.Channels() != 1 {
		t.Fatalf("Decode() rate/channels = %d/%d, want 16000/1", src.SampleRate(), src.Channels())
	}

	dst := make([]float32, 16)
	n, err := src.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != len(in) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(in))
	}

	for i := range in {
		if diff := math.Abs(float64(dst[i] - in[i])); diff > 1.0/16384 {
			t.Errorf("sample[%d] = %v, want ≈%v", i, dst[i], in[i])
		}
	}
}

func TestEncodeFloat32Buffer(t *testing.T) {
	t.Parallel()

	mono := &goaudio.Float32Buffer{
		Format: &goaudio.Format{NumChannels: 1, SampleRate: 44100},
		Data:   []float32{0, 1, -1},
	}

	got, err := EncodeFloat32Buffer(mono)
	if err != nil {
		t.Fatalf("EncodeFloat32Buffer() error = %v", err)
	}
	if !bytes.Equal(got, Encode(mono.Data, 44100)) {
		t.Error("EncodeFloat32Buffer() differs from Encode()")
	}

	tests := []struct {
		name    string
		buf     *goaudio.Float32Buffer
		wantErr error
	}{
		{"nil buffer", nil, ErrMissingFormat},
		{"nil format", &goaudio.Float32Buffer{Data: []float32{0}}, ErrMissingFormat},
		{"stereo", &goaudio.Float32Buffer{
			Format: &goaudio.Format{NumChannels: 2, SampleRate: 8000},
			Data:   []float32{0, 0},
		}, ErrNotMono},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := EncodeFloat32Buffer(tt.buf); !errors.Is(err, tt.wantErr) {
				t.Errorf("EncodeFloat32Buffer() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func samplesAt(wav []byte) []int16 {
	pcm := wav[HeaderSize:]
	out := make([]int16, len(pcm)/2)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(pcm[2*i:]))
	}
	return out
}

func BenchmarkEncode(b *testing.B) {
	samples := make([]float32, 44100) // 1 second at 44.1kHz
	for i := range samples {
		samples[i] = float32(math.Sin(float64(i) * 0.05))
	}

	b.ReportAllocs()

	for b.Loop() {
		_ = Encode(samples, 44100)
	}
}
