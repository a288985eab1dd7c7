// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"fmt"

	"github.com/ik5/audcopy/sample"
)

// Downmix converts multi-channel frames to mono by averaging the channels.
type Downmix struct {
	width sample.Unit
	in    int
}

func NewDownmix(u sample.Unit, in int) (*Downmix, error) {
	if err := validLayout(u, in, 1); err != nil {
		return nil, err
	}
	if u > sample.Int32 {
		return nil, fmt.Errorf("%w: downmix needs integer samples, got %d bytes", ErrInvalidWidth, u)
	}

	return &Downmix{width: u, in: in}, nil
}

func (m *Downmix) InputChannels() int       { return m.in }
func (m *Downmix) OutputChannels() int      { return 1 }
func (m *Downmix) SampleWidth() sample.Unit { return m.width }

func (m *Downmix) Convert(dst, src []byte, frames int) (int, error) {
	if err := checkBuffers(m, dst, src, frames); err != nil {
		return 0, err
	}

	u := m.width
	w := int(u)
	channels := m.in

	eachFrame(dst, src, frames, InputFrame(m), w, func(out, in []byte) {
		// int64 so 32-bit channels cannot overflow the sum
		var sum int64
		switch channels {
		case 1:
			sum = int64(u.Get(in))
		case 2:
			sum = int64(u.Get(in)) + int64(u.Get(in[w:]))
		default:
			for c := range channels {
				sum += int64(u.Get(in[c*w:]))
			}
		}
		u.Put(out, int32(sum/int64(channels)))
	})

	return frames * w, nil
}
