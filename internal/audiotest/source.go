// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides byte-level sources and sinks for exercising
// stream copies in tests.
package audiotest

import (
	"io"
	"sync"
)

// Source is a scripted byte source. It reports Avail bytes as available
// (capped by what is left) and fills at most Chunk bytes per Read when Chunk
// is positive. Every Read length is recorded.
type Source struct {
	mu sync.Mutex

	data  []byte
	off   int
	Avail int // -1 reports everything that is left
	Chunk int

	AvailableCalls int
	Reads          []int
	Err            error
}

// NewSource serves data, reporting all of it as available.
func NewSource(data []byte) *Source {
	return &Source{data: data, Avail: -1}
}

// NewPattern serves n bytes counting up from 0 (mod 251).
func NewPattern(n int) *Source {
	return NewSource(Pattern(n))
}

// Pattern returns n bytes counting up from 0, wrapping at a prime so frame
// boundaries do not line up with the wrap.
func Pattern(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i % 251)
	}
	return b
}

func (s *Source) Available() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.AvailableCalls++
	left := len(s.data) - s.off
	if s.Avail >= 0 && s.Avail < left {
		return s.Avail
	}
	return left
}

func (s *Source) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Reads = append(s.Reads, len(p))
	if s.Err != nil {
		return 0, s.Err
	}
	if s.off >= len(s.data) {
		return 0, io.EOF
	}

	n := len(p)
	if s.Chunk > 0 && n > s.Chunk {
		n = s.Chunk
	}
	n = copy(p[:n], s.data[s.off:])
	s.off += n
	return n, nil
}

// Remaining is the number of bytes not yet read.
func (s *Source) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.data) - s.off
}

// FixedSource always reports and fills the same number of bytes, never
// running dry.
type FixedSource struct {
	N     int
	Reads []int
}

func (s *FixedSource) Available() int { return s.N }

func (s *FixedSource) Read(p []byte) (int, error) {
	s.Reads = append(s.Reads, len(p))
	n := min(len(p), s.N)
	for i := range n {
		p[i] = byte(i)
	}
	return n, nil
}

// Stuck reports N bytes as available but never fills any of them.
type Stuck struct {
	N     int
	Reads []int
}

func (s *Stuck) Available() int { return s.N }

func (s *Stuck) Read(p []byte) (int, error) {
	s.Reads = append(s.Reads, len(p))
	return 0, nil
}
