// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"
	"sync"
)

// Stream is decoded PCM exposed as a byte source: Available reports how many
// bytes can be read without decoding further, Read copies them out.
// Once the input is exhausted Available returns 0 and Read returns io.EOF.
type Stream interface {
	Format() Format
	Available() int
	Read(p []byte) (int, error)
	// Err returns the decode error that ended the stream, if any.
	Err() error
	Close() error
}

// BlockReader is what a format package implements: ReadBlock appends the
// next decoded block of little-endian PCM to dst. It returns io.EOF once
// there is nothing left; a block may come back together with io.EOF.
type BlockReader interface {
	ReadBlock(dst []byte) ([]byte, error)
}

// FormatReporter is implemented by block readers whose format can change
// mid-stream. Format is consulted after every block.
type FormatReporter interface {
	Format() Format
}

// maxEmptyBlocks bounds how many empty blocks Available decodes in a row
// before reporting nothing available.
const maxEmptyBlocks = 16

// PCMStream buffers the blocks of a BlockReader and serves them as a Stream.
type PCMStream struct {
	mu sync.Mutex

	src    BlockReader
	format Format

	buf []byte
	off int
	err error
	eof bool

	closed    bool
	observers map[int]FormatObserver
	nextID    int
}

// NewPCMStream wraps src, which produces PCM in format f. size is a hint for
// the initial buffer capacity in bytes.
func NewPCMStream(src BlockReader, f Format, size int) (*PCMStream, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &PCMStream{
		src:       src,
		format:    f,
		buf:       make([]byte, 0, max(size, f.FrameSize())),
		observers: make(map[int]FormatObserver),
	}, nil
}

func (s *PCMStream) Format() Format {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.format
}

// Available decodes the next block when nothing is buffered.
func (s *PCMStream) Available() int {
	s.mu.Lock()
	notify := s.fill()
	n := len(s.buf) - s.off
	s.mu.Unlock()

	notify()
	return n
}

func (s *PCMStream) Read(p []byte) (int, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return 0, ErrClosed
	}
	notify := s.fill()

	n := copy(p, s.buf[s.off:])
	s.off += n

	var err error
	if n == 0 && s.eof {
		err = s.err
		if err == nil {
			err = io.EOF
		}
	}
	s.mu.Unlock()

	notify()
	return n, err
}

func (s *PCMStream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}

// Subscribe calls o with the current format, then on every change until the
// returned function is called.
func (s *PCMStream) Subscribe(o FormatObserver) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = o
	f := s.format
	s.mu.Unlock()

	o.FormatChanged(f)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		delete(s.observers, id)
	}
}

// Close releases the block reader when it is an io.Closer.
func (s *PCMStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.eof = true
	s.buf, s.off = s.buf[:0], 0

	if c, ok := s.src.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return fmt.Errorf("close: %w", err)
		}
	}

	return nil
}

// fill decodes until something is buffered or the input ends. It must be
// called with mu held; the returned function delivers format notifications
// and must be called after mu is released.
func (s *PCMStream) fill() func() {
	if s.off < len(s.buf) || s.eof {
		return func() {}
	}

	s.buf, s.off = s.buf[:0], 0
	for range maxEmptyBlocks {
		block, err := s.src.ReadBlock(s.buf)
		s.buf = block
		if err != nil {
			s.eof = true
			if !errors.Is(err, io.EOF) {
				s.err = fmt.Errorf("decode: %w", err)
			}
		}
		if len(s.buf) > 0 || s.eof {
			break
		}
	}

	return s.formatChanged()
}

func (s *PCMStream) formatChanged() func() {
	fr, ok := s.src.(FormatReporter)
	if !ok {
		return func() {}
	}

	f := fr.Format()
	if f == s.format || f.Validate() != nil {
		return func() {}
	}
	s.format = f

	observers := make([]FormatObserver, 0, len(s.observers))
	for _, o := range s.observers {
		observers = append(observers, o)
	}

	return func() {
		for _, o := range observers {
			o.FormatChanged(f)
		}
	}
}
