// SPDX-License-Identifier: EPL-2.0

package copier

import "errors"

var (
	ErrInvalidBufferSize = errors.New("buffer size must be a positive multiple of the sample width")
	ErrInvalidWidth      = errors.New("invalid sample width")
	ErrInvalidAttempts   = errors.New("max attempts must be at least 1")
	ErrInvalidDelay      = errors.New("delays must not be negative")
	ErrInvalidPolicy     = errors.New("unknown flush policy")

	ErrNilSource     = errors.New("nil source")
	ErrNilSink       = errors.New("nil sink")
	ErrNilConverter  = errors.New("nil converter")
	ErrNotConfigured = errors.New("copier has no source or sink")

	ErrWidthMismatch  = errors.New("converter sample width is not a multiple of the copier sample width")
	ErrBufferTooSmall = errors.New("buffer cannot hold a single converted frame")

	// errBackpressure marks a write the sink only took part of.
	errBackpressure = errors.New("sink accepted a partial write")
)
