// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"
	"slices"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audcopy/audio"
	"github.com/ik5/audcopy/sample"
)

const blockFrames = 1024

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// blocks converts go-audio's integers, decoded from big-endian AIFF, into
// little-endian PCM. 8-bit AIFF is signed and comes out offset to unsigned.
type blocks struct {
	dec  aiffReader
	unit sample.Unit
	ints *goaudio.IntBuffer
}

func newBlocks(dec aiffReader, f audio.Format) *blocks {
	return &blocks{
		dec:  dec,
		unit: f.Unit(),
		ints: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: f.Channels, SampleRate: f.SampleRate},
			Data:           make([]int, blockFrames*f.Channels),
			SourceBitDepth: f.BitDepth,
		},
	}
}

func (b *blocks) ReadBlock(dst []byte) ([]byte, error) {
	n, err := b.dec.PCMBuffer(b.ints)
	if n == 0 {
		if err == nil {
			err = io.EOF
		}
		return dst, err
	}

	w := int(b.unit)
	start := len(dst)
	dst = slices.Grow(dst, n*w)[:start+n*w]
	out := dst[start:]
	for i, v := range b.ints.Data[:n] {
		s := int32(v)
		if b.unit == sample.Byte {
			s = int32(int8(v))
		}
		b.unit.Put(out[i*w:], s)
	}

	return dst, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Stream, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedAiffLayout
	}

	f := audio.Format{
		SampleRate: format.SampleRate,
		Channels:   format.NumChannels,
		BitDepth:   int(dec.BitDepth),
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedAiffLayout, err)
	}

	return audio.NewPCMStream(newBlocks(dec, f), f, blockFrames*f.FrameSize())
}
