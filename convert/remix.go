// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"fmt"

	"github.com/ik5/audcopy/sample"
)

// Silent marks an output channel with no source in a Remix mapping.
const Silent = -1

// Remix builds each output channel from one input channel.
// mapping[j] is the input channel feeding output channel j, or Silent.
type Remix struct {
	width   sample.Unit
	in      int
	mapping []int
}

func NewRemix(u sample.Unit, in int, mapping []int) (*Remix, error) {
	if err := validLayout(u, in, len(mapping)); err != nil {
		return nil, err
	}
	for j, c := range mapping {
		if c != Silent && (c < 0 || c >= in) {
			return nil, fmt.Errorf("%w: output %d <- input %d of %d", ErrInvalidMapping, j, c, in)
		}
	}

	return &Remix{
		width:   u,
		in:      in,
		mapping: append([]int(nil), mapping...),
	}, nil
}

func (r *Remix) InputChannels() int       { return r.in }
func (r *Remix) OutputChannels() int      { return len(r.mapping) }
func (r *Remix) SampleWidth() sample.Unit { return r.width }

func (r *Remix) Convert(dst, src []byte, frames int) (int, error) {
	if err := checkBuffers(r, dst, src, frames); err != nil {
		return 0, err
	}

	w := int(r.width)
	eachFrame(dst, src, frames, InputFrame(r), OutputFrame(r), func(out, in []byte) {
		for j, c := range r.mapping {
			if c == Silent {
				r.width.Silence(out[j*w : (j+1)*w])
				continue
			}
			copy(out[j*w:(j+1)*w], in[c*w:(c+1)*w])
		}
	})

	return frames * OutputFrame(r), nil
}
