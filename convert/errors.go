// SPDX-License-Identifier: EPL-2.0

package convert

import "errors"

var (
	ErrInvalidChannels = errors.New("invalid channel count")
	ErrInvalidMapping  = errors.New("channel mapping refers to a missing input channel")
	ErrInvalidWidth    = errors.New("invalid sample width")
	ErrShortInput      = errors.New("src holds fewer bytes than the declared frames")
	ErrShortBuffer     = errors.New("dst too small for converted frames")
)
