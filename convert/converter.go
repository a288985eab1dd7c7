// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"fmt"

	"github.com/ik5/audcopy/sample"
)

// MaxChannels is the largest channel count a converter accepts.
const MaxChannels = 32

// maxFrame is the largest frame in bytes, used for per-frame scratch space.
const maxFrame = MaxChannels * int(sample.Int64)

// Converter rewrites frames of interleaved samples from one channel layout
// to another.
type Converter interface {
	InputChannels() int
	OutputChannels() int
	SampleWidth() sample.Unit
	// Convert converts frames frames from src into dst and returns the number
	// of bytes written to dst.
	Convert(dst, src []byte, frames int) (int, error)
}

// InputFrame is the byte size of one input frame of c.
func InputFrame(c Converter) int { return c.SampleWidth().Frame(c.InputChannels()) }

// OutputFrame is the byte size of one output frame of c.
func OutputFrame(c Converter) int { return c.SampleWidth().Frame(c.OutputChannels()) }

// Func adapts a plain function to the Converter interface.
type Func struct {
	In, Out int
	Width   sample.Unit
	Fn      func(dst, src []byte, frames int) (int, error)
}

// NewFunc validates the declared layout and wraps fn.
func NewFunc(u sample.Unit, in, out int, fn func(dst, src []byte, frames int) (int, error)) (*Func, error) {
	if err := validLayout(u, in, out); err != nil {
		return nil, err
	}

	return &Func{In: in, Out: out, Width: u, Fn: fn}, nil
}

func (f *Func) InputChannels() int       { return f.In }
func (f *Func) OutputChannels() int      { return f.Out }
func (f *Func) SampleWidth() sample.Unit { return f.Width }

func (f *Func) Convert(dst, src []byte, frames int) (int, error) {
	if err := checkBuffers(f, dst, src, frames); err != nil {
		return 0, err
	}

	return f.Fn(dst, src, frames)
}

// ForChannels picks a converter from in to out channels.
// It returns nil when no conversion is needed.
func ForChannels(u sample.Unit, in, out int) (Converter, error) {
	if err := validLayout(u, in, out); err != nil {
		return nil, err
	}

	switch {
	case in == out:
		return nil, nil
	case in == 1 && out == 2:
		return NewDuplicator(u)
	case out == 1:
		return NewDownmix(u, in)
	}

	mapping := make([]int, out)
	for i := range mapping {
		mapping[i] = i % in
	}

	return NewRemix(u, in, mapping)
}

func validLayout(u sample.Unit, in, out int) error {
	if !u.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidWidth, u)
	}
	if in <= 0 || in > MaxChannels || out <= 0 || out > MaxChannels {
		return fmt.Errorf("%w: %d -> %d", ErrInvalidChannels, in, out)
	}

	return nil
}

func checkBuffers(c Converter, dst, src []byte, frames int) error {
	if frames < 0 || len(src) < frames*InputFrame(c) {
		return fmt.Errorf("%w: %d frames, %d bytes", ErrShortInput, frames, len(src))
	}
	if len(dst) < frames*OutputFrame(c) {
		return fmt.Errorf("%w: need %d bytes, have %d", ErrShortBuffer, frames*OutputFrame(c), len(dst))
	}

	return nil
}

// eachFrame calls fn for every frame, walking in the direction that keeps an
// in-place conversion from overwriting input it has not read yet. fn receives
// a private copy of the input frame.
func eachFrame(dst, src []byte, frames, inFrame, outFrame int, fn func(out, in []byte)) {
	var scratch [maxFrame]byte
	in := scratch[:inFrame]

	do := func(i int) {
		copy(in, src[i*inFrame:(i+1)*inFrame])
		fn(dst[i*outFrame:(i+1)*outFrame], in)
	}

	if outFrame > inFrame {
		for i := frames - 1; i >= 0; i-- {
			do(i)
		}
		return
	}

	for i := range frames {
		do(i)
	}
}
