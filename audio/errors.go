// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrUnknownFormat  = errors.New("no decoder registered for format")
	ErrEmptyInput     = errors.New("empty audio input")
	ErrNoChannels     = errors.New("source has no channels")
	ErrInvalidChannel = errors.New("channel index out of range")
)
