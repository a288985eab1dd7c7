// SPDX-License-Identifier: EPL-2.0

package sample

import "errors"

var (
	ErrInvalidUnit     = errors.New("invalid sample width")
	ErrInvalidBitDepth = errors.New("unsupported bit depth")
)
