// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrUnsupportedWavChunks = errors.New("unsupported WAV chunks")
	ErrOnlyPCMSupported     = errors.New("only PCM WAV supported")
	ErrUnsupportedBitDepth  = errors.New("unsupported WAV bit depth")
	ErrShortHeader          = errors.New("WAV header too short")

	// ErrMissingFormat is returned when a go-audio buffer carries no format.
	ErrMissingFormat = errors.New("buffer has no format")
	// ErrNotMono is returned when a buffer to encode has more than one channel.
	ErrNotMono = errors.New("only mono buffers can be encoded")
)
