// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"
	"slices"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audcopy/audio"
)

// blockSize is how many bytes of PCM one block asks go-mp3 for.
const blockSize = 4608

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// blocks passes go-mp3's output through; it already is 16-bit
// little-endian stereo.
type blocks struct {
	dec mp3Reader
}

func (b *blocks) ReadBlock(dst []byte) ([]byte, error) {
	start := len(dst)
	dst = slices.Grow(dst, blockSize)[:start+blockSize]

	n, err := b.dec.Read(dst[start:])
	return dst[:start+max(n, 0)], err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Stream, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return newStream(dec)
}

func newStream(dec mp3Reader) (audio.Stream, error) {
	// go-mp3 always decodes to stereo
	f := audio.Format{SampleRate: dec.SampleRate(), Channels: 2, BitDepth: 16}

	return audio.NewPCMStream(&blocks{dec: dec}, f, blockSize)
}
