// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidFormat = errors.New("invalid audio format")
	ErrUnknownFormat = errors.New("no decoder registered for format")
	ErrClosed        = errors.New("stream is closed")
)
