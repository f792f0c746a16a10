// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"context"
	"errors"
	"fmt"
	"io"
)

const (
	defaultBufSize = 4096
	maxEmptyReads  = 100
)

// ReadAll drains src and returns every sample it produced, interleaved as the
// source delivers them. bufSize <= 0 uses src.BufSize, falling back to 4096.
// ctx is checked between reads.
func ReadAll(ctx context.Context, src Source, bufSize int) ([]float32, error) {
	if bufSize <= 0 {
		bufSize = src.BufSize()
	}
	if bufSize <= 0 {
		bufSize = defaultBufSize
	}

	buf := make([]float32, bufSize)
	var out []float32
	empty := 0

	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w", err)
		}

		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if errors.Is(err, io.EOF) {
			return out, nil
		}

		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}

		if n > 0 {
			empty = 0
		} else if empty++; empty >= maxEmptyReads {
			return nil, io.ErrNoProgress
		}
	}
}
