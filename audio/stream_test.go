// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestPCMStream_ReadsBlocks(t *testing.T) {
	t.Parallel()

	src := &mockBlocks{blocks: [][]byte{{1, 2, 3, 4}, {5, 6, 7, 8, 9, 10, 11, 12}}}
	s, err := NewPCMStream(src, cd, 16)
	if err != nil {
		t.Fatalf("NewPCMStream() error = %v", err)
	}

	if got := s.Available(); got != 4 {
		t.Fatalf("Available() = %d, want 4", got)
	}
	// a second call does not decode again
	if got := s.Available(); got != 4 || src.calls != 1 {
		t.Fatalf("Available() = %d after %d blocks, want 4 after 1", got, src.calls)
	}

	var out bytes.Buffer
	p := make([]byte, 3)
	for {
		n, err := s.Read(p)
		out.Write(p[:n])
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("Read() error = %v", err)
		}
	}

	want := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	if !bytes.Equal(out.Bytes(), want) {
		t.Errorf("read % x, want % x", out.Bytes(), want)
	}
	if got := s.Available(); got != 0 {
		t.Errorf("Available() after EOF = %d, want 0", got)
	}
	if err := s.Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}
}

func TestPCMStream_DecodeError(t *testing.T) {
	t.Parallel()

	failure := errors.New("corrupt frame")
	s, _ := NewPCMStream(&mockBlocks{blocks: [][]byte{{1, 2}}, err: failure}, cd, 0)

	p := make([]byte, 8)
	if n, err := s.Read(p); n != 2 || err != nil {
		t.Fatalf("Read() = %d, %v, want 2, nil", n, err)
	}
	if _, err := s.Read(p); !errors.Is(err, failure) {
		t.Fatalf("Read() error = %v, want %v", err, failure)
	}
	if !errors.Is(s.Err(), failure) {
		t.Errorf("Err() = %v, want %v", s.Err(), failure)
	}
}

func TestPCMStream_SkipsEmptyBlocks(t *testing.T) {
	t.Parallel()

	src := &mockBlocks{blocks: [][]byte{{}, {}, {7, 7}}}
	s, _ := NewPCMStream(src, cd, 0)

	if got := s.Available(); got != 2 {
		t.Errorf("Available() = %d, want 2", got)
	}
}

func TestPCMStream_FormatObserver(t *testing.T) {
	t.Parallel()

	mono := Format{SampleRate: 22050, Channels: 1, BitDepth: 16}
	src := reportingBlocks{&mockBlocks{
		blocks:  [][]byte{{1, 2, 3, 4}, {5, 6}},
		formats: []Format{cd, mono},
		cur:     cd,
	}}
	s, _ := NewPCMStream(src, cd, 0)

	var seen []Format
	cancel := s.Subscribe(FormatObserverFunc(func(f Format) { seen = append(seen, f) }))

	p := make([]byte, 4)
	if _, err := s.Read(p); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(seen) != 1 || seen[0] != cd {
		t.Fatalf("observed %v after first block, want [%v]", seen, cd)
	}

	if _, err := s.Read(p); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(seen) != 2 || seen[1] != mono {
		t.Fatalf("observed %v after second block, want change to %v", seen, mono)
	}
	if s.Format() != mono {
		t.Errorf("Format() = %v, want %v", s.Format(), mono)
	}

	cancel()
	src.blocks = [][]byte{{9, 9}}
	src.formats = nil
	src.cur = cd
	s.Available()
	if len(seen) != 2 {
		t.Errorf("observer called after cancel: %v", seen)
	}
}

func TestPCMStream_Close(t *testing.T) {
	t.Parallel()

	src := &mockBlocks{blocks: [][]byte{{1, 2}}}
	s, _ := NewPCMStream(src, cd, 0)

	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !src.closed {
		t.Error("Close() did not close the block reader")
	}
	if _, err := s.Read(make([]byte, 2)); !errors.Is(err, ErrClosed) {
		t.Errorf("Read() after Close error = %v, want ErrClosed", err)
	}
	if got := s.Available(); got != 0 {
		t.Errorf("Available() after Close = %d, want 0", got)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestNewPCMStream_InvalidFormat(t *testing.T) {
	t.Parallel()

	_, err := NewPCMStream(&mockBlocks{}, Format{}, 0)
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("NewPCMStream() error = %v, want ErrInvalidFormat", err)
	}
}
