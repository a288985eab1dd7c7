// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/audcopy/audio"
	"github.com/ik5/audcopy/sample"
)

// Sink encodes little-endian PCM bytes into a WAV file. It takes whole
// samples only: a write ending mid-sample is accepted up to the last whole
// sample. The header is finalized by Close.
type Sink struct {
	enc     *wav.Encoder
	format  audio.Format
	unit    sample.Unit
	ints    *goaudio.IntBuffer
	samples int

	closed bool
}

func NewSink(w io.WriteSeeker, f audio.Format) (*Sink, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if f.Unit() == sample.Int64 {
		return nil, fmt.Errorf("%w: %d-bit", ErrUnsupportedWavLayout, f.BitDepth)
	}

	return &Sink{
		enc:    wav.NewEncoder(w, f.SampleRate, f.BitDepth, f.Channels, formatPCM),
		format: f,
		unit:   f.Unit(),
		ints: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: f.Channels, SampleRate: f.SampleRate},
			SourceBitDepth: f.BitDepth,
		},
	}, nil
}

func (s *Sink) Format() audio.Format { return s.format }

// Frames is the number of whole frames written so far.
func (s *Sink) Frames() int { return s.samples / s.format.Channels }

func (s *Sink) Write(p []byte) (int, error) {
	if s.closed {
		return 0, ErrSinkClosed
	}

	n := s.unit.Samples(len(p))
	if n == 0 {
		return 0, nil
	}

	w := int(s.unit)
	s.ints.Data = s.ints.Data[:0]
	for i := range n {
		if s.unit == sample.Byte {
			s.ints.Data = append(s.ints.Data, int(p[i]))
			continue
		}
		s.ints.Data = append(s.ints.Data, int(s.unit.Get(p[i*w:])))
	}

	if err := s.enc.Write(s.ints); err != nil {
		return 0, fmt.Errorf("%w", err)
	}
	s.samples += n

	return n * w, nil
}

// Close writes the final header sizes. It does not close the underlying writer.
func (s *Sink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	if err := s.enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
