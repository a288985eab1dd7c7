// SPDX-License-Identifier: EPL-2.0

package audcopy

import "errors"

var (
	// ErrFormatChanged is returned when the input changes channel count,
	// rate or depth mid-stream. The output holds everything before the change.
	ErrFormatChanged = errors.New("input format changed mid-stream")
)
