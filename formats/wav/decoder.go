// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"
	"slices"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/audcopy/audio"
	"github.com/ik5/audcopy/sample"
)

const (
	formatPCM        = 1
	formatExtensible = 0xFFFE

	// blockFrames is how many frames one decoded block holds.
	blockFrames = 1024
)

// pcmReader is the part of wav.Decoder the block reader uses, to allow testing
type pcmReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// blocks turns go-audio integer buffers into little-endian PCM.
type blocks struct {
	dec  pcmReader
	unit sample.Unit
	ints *goaudio.IntBuffer
}

func newBlocks(dec pcmReader, f audio.Format) *blocks {
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
		// 8-bit WAV is unsigned on disk and go-audio keeps it that way
		if b.unit == sample.Byte {
			out[i] = byte(v)
			continue
		}
		b.unit.Put(out[i*w:], int32(v))
	}

	return dst, err
}

type Decoder struct{}

// Decode reads the WAV header and returns a stream of its PCM data.
// go-audio needs to seek, so readers that cannot are buffered in memory.
func (Decoder) Decode(r io.Reader) (audio.Stream, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := wav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}
	if dec.WavAudioFormat != formatPCM && dec.WavAudioFormat != formatExtensible {
		return nil, fmt.Errorf("%w: format tag %#x", ErrOnlyPCMSupported, dec.WavAudioFormat)
	}

	f := audio.Format{
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		BitDepth:   int(dec.BitDepth),
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}
	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}

	return audio.NewPCMStream(newBlocks(dec, f), f, blockFrames*f.FrameSize())
}
