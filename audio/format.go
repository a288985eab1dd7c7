// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	"github.com/ik5/audcopy/convert"
	"github.com/ik5/audcopy/sample"
)

// Format describes interleaved little-endian integer PCM.
type Format struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

// Unit is the byte width of one sample of f.
func (f Format) Unit() sample.Unit {
	u, err := sample.ForBitDepth(f.BitDepth)
	if err != nil {
		return 0
	}

	return u
}

// FrameSize is the byte size of one frame.
func (f Format) FrameSize() int { return f.Unit().Frame(f.Channels) }

func (f Format) Validate() error {
	switch {
	case f.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d", ErrInvalidFormat, f.SampleRate)
	case f.Channels <= 0 || f.Channels > convert.MaxChannels:
		return fmt.Errorf("%w: %d channels", ErrInvalidFormat, f.Channels)
	case !f.Unit().Valid():
		return fmt.Errorf("%w: %d-bit samples", ErrInvalidFormat, f.BitDepth)
	}

	return nil
}

func (f Format) String() string {
	return fmt.Sprintf("%dHz %dch %d-bit", f.SampleRate, f.Channels, f.BitDepth)
}

// FormatObserver is told about the format of a stream when it subscribes and
// again whenever the decoder reports a different one.
type FormatObserver interface {
	FormatChanged(f Format)
}

// FormatObserverFunc adapts a function to a FormatObserver.
type FormatObserverFunc func(f Format)

func (fn FormatObserverFunc) FormatChanged(f Format) { fn(f) }
