// SPDX-License-Identifier: EPL-2.0

package convert

import "github.com/ik5/audcopy/sample"

// Duplicator turns mono frames into stereo frames with both channels equal.
type Duplicator struct {
	width sample.Unit
}

func NewDuplicator(u sample.Unit) (*Duplicator, error) {
	if err := validLayout(u, 1, 2); err != nil {
		return nil, err
	}

	return &Duplicator{width: u}, nil
}

func (d *Duplicator) InputChannels() int       { return 1 }
func (d *Duplicator) OutputChannels() int      { return 2 }
func (d *Duplicator) SampleWidth() sample.Unit { return d.width }

// Convert writes exactly 2*frames*width bytes.
func (d *Duplicator) Convert(dst, src []byte, frames int) (int, error) {
	if err := checkBuffers(d, dst, src, frames); err != nil {
		return 0, err
	}

	w := int(d.width)
	var s [sample.Int64]byte

	// back to front so dst may alias src
	for i := frames - 1; i >= 0; i-- {
		copy(s[:w], src[i*w:(i+1)*w])
		o := i * 2 * w
		copy(dst[o:o+w], s[:w])
		copy(dst[o+w:o+2*w], s[:w])
	}

	return frames * 2 * w, nil
}
