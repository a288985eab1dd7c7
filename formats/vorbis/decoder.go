// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"
	"slices"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audcopy/audio"
	"github.com/ik5/audcopy/sample"
)

const (
	blockFrames = 1024
	bitDepth    = 16
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// blocks scales the decoder's float samples to 16-bit PCM.
type blocks struct {
	dec    oggReader
	floats []float32
}

func (b *blocks) ReadBlock(dst []byte) ([]byte, error) {
	n, err := b.dec.Read(b.floats)
	if n <= 0 {
		if err == nil {
			err = io.EOF
		}
		return dst, err
	}

	start := len(dst)
	dst = slices.Grow(dst, n*bitDepth/8)[:start+n*bitDepth/8]
	sample.PutFloat32(sample.Int16, dst[start:], b.floats[:n])

	return dst, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Stream, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return newStream(dec)
}

func newStream(dec oggReader) (audio.Stream, error) {
	f := audio.Format{SampleRate: dec.SampleRate(), Channels: dec.Channels(), BitDepth: bitDepth}
	b := &blocks{dec: dec, floats: make([]float32, blockFrames*max(f.Channels, 1))}

	return audio.NewPCMStream(b, f, len(b.floats)*bitDepth/8)
}
