// SPDX-License-Identifier: EPL-2.0

package opus

import "errors"

// ErrNotOpusStream indicates the input is not an Ogg Opus stream.
var ErrNotOpusStream = errors.New("not an Ogg Opus stream")
