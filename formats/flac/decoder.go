// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"fmt"
	"io"
	"slices"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/ik5/audcopy/audio"
	"github.com/ik5/audcopy/sample"
)

// frameReader is the part of flac.Stream the block reader uses, to allow testing
type frameReader interface {
	ParseNext() (*frame.Frame, error)
}

// blocks interleaves the channels of one FLAC frame per block. Samples are
// widened to whole bytes: a 20-bit stream comes out as 24-bit PCM at the same
// loudness.
type blocks struct {
	dec frameReader

	// defaults for frame headers that defer to STREAMINFO
	rate, bits int

	cur audio.Format
}

// container returns the stored bit depth and the shift that widens a sample
// of the given depth to it.
func container(bits int) (int, int, error) {
	u, err := sample.ForBitDepth(bits)
	if err != nil {
		return 0, 0, err
	}

	return u.Bits(), u.Bits() - bits, nil
}

func (b *blocks) Format() audio.Format { return b.cur }

func (b *blocks) ReadBlock(dst []byte) ([]byte, error) {
	fr, err := b.dec.ParseNext()
	if err != nil {
		return dst, err
	}

	rate, bits := int(fr.SampleRate), int(fr.BitsPerSample)
	if rate == 0 {
		rate = b.rate
	}
	if bits == 0 {
		bits = b.bits
	}
	depth, shift, err := container(bits)
	if err != nil {
		return dst, fmt.Errorf("%w: %w", ErrUnsupportedFlacLayout, err)
	}

	channels := len(fr.Subframes)
	if channels == 0 {
		return dst, nil
	}
	b.cur = audio.Format{SampleRate: rate, Channels: channels, BitDepth: depth}

	u := b.cur.Unit()
	w := int(u)
	frames := len(fr.Subframes[0].Samples)
	for _, sub := range fr.Subframes[1:] {
		frames = min(frames, len(sub.Samples))
	}

	start := len(dst)
	dst = slices.Grow(dst, frames*channels*w)[:start+frames*channels*w]
	out := dst[start:]
	for i := range frames {
		for ch, sub := range fr.Subframes {
			u.Put(out[(i*channels+ch)*w:], sub.Samples[i]<<shift)
		}
	}

	return dst, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Stream, error) {
	stream, err := flac.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	b, err := newBlocks(stream, int(stream.Info.SampleRate), int(stream.Info.NChannels), int(stream.Info.BitsPerSample))
	if err != nil {
		stream.Close()
		return nil, err
	}

	return audio.NewPCMStream(closingBlocks{b, stream}, b.cur, 4096*b.cur.FrameSize())
}

func newBlocks(dec frameReader, rate, channels, bits int) (*blocks, error) {
	depth, _, err := container(bits)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedFlacLayout, err)
	}

	f := audio.Format{SampleRate: rate, Channels: channels, BitDepth: depth}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedFlacLayout, err)
	}

	return &blocks{dec: dec, rate: rate, bits: bits, cur: f}, nil
}

// closingBlocks closes the flac stream with the audio stream.
type closingBlocks struct {
	*blocks
	io.Closer
}
