// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ik5/audcopy/sample"
)

func int16Bytes(values ...int16) []byte {
	b := make([]byte, len(values)*2)
	for i, v := range values {
		sample.Int16.Put(b[i*2:], int32(v))
	}
	return b
}

func TestDuplicator_MonoToStereo(t *testing.T) {
	t.Parallel()

	dup, err := NewDuplicator(sample.Int16)
	if err != nil {
		t.Fatalf("NewDuplicator() error = %v", err)
	}

	// 4 mono samples, 8 bytes
	src := int16Bytes(1, -2, 300, -32768)
	dst := make([]byte, 16)

	n, err := dup.Convert(dst, src, 4)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if n != 16 {
		t.Errorf("Convert() n = %d, want 16", n)
	}

	want := int16Bytes(1, 1, -2, -2, 300, 300, -32768, -32768)
	if !bytes.Equal(dst, want) {
		t.Errorf("Convert() dst = % x, want % x", dst, want)
	}
}

func TestDuplicator_InPlace(t *testing.T) {
	t.Parallel()

	for _, u := range []sample.Unit{sample.Byte, sample.Int16, sample.Int24, sample.Int32} {
		t.Run(u.String(), func(t *testing.T) {
			t.Parallel()

			dup, _ := NewDuplicator(u)
			frames := 5
			buf := make([]byte, frames*2*int(u))
			for i := range frames * int(u) {
				buf[i] = byte(i + 1)
			}
			src := append([]byte(nil), buf[:frames*int(u)]...)

			n, err := dup.Convert(buf, buf[:frames*int(u)], frames)
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if n != 2*len(src) {
				t.Fatalf("Convert() n = %d, want %d", n, 2*len(src))
			}

			w := int(u)
			for i := range frames {
				s := src[i*w : (i+1)*w]
				if !bytes.Equal(buf[2*i*w:2*i*w+w], s) || !bytes.Equal(buf[2*i*w+w:2*(i+1)*w], s) {
					t.Errorf("frame %d = % x, want % x twice", i, buf[2*i*w:2*(i+1)*w], s)
				}
			}
		})
	}
}

func TestDuplicator_OutputIsTwiceInput(t *testing.T) {
	t.Parallel()

	dup, _ := NewDuplicator(sample.Int16)
	for frames := range 32 {
		src := make([]byte, frames*2)
		dst := make([]byte, frames*4)
		n, err := dup.Convert(dst, src, frames)
		if err != nil {
			t.Fatalf("Convert(%d frames) error = %v", frames, err)
		}
		if n != 2*len(src) {
			t.Errorf("Convert(%d frames) n = %d, want %d", frames, n, 2*len(src))
		}
	}
}

func TestDuplicator_Bounds(t *testing.T) {
	t.Parallel()

	dup, _ := NewDuplicator(sample.Int16)

	if _, err := dup.Convert(make([]byte, 16), make([]byte, 6), 4); !errors.Is(err, ErrShortInput) {
		t.Errorf("Convert() short src error = %v, want ErrShortInput", err)
	}
	if _, err := dup.Convert(make([]byte, 15), make([]byte, 8), 4); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("Convert() short dst error = %v, want ErrShortBuffer", err)
	}

	// nothing past the declared output may change
	dst := bytes.Repeat([]byte{0xAA}, 12)
	if _, err := dup.Convert(dst, int16Bytes(7, 8), 2); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	for i, b := range dst[8:] {
		if b != 0xAA {
			t.Errorf("dst[%d] = %#x, written past output", 8+i, b)
		}
	}
}

func TestNewDuplicator_InvalidWidth(t *testing.T) {
	t.Parallel()

	if _, err := NewDuplicator(5); !errors.Is(err, ErrInvalidWidth) {
		t.Errorf("NewDuplicator(5) error = %v, want ErrInvalidWidth", err)
	}
}

func BenchmarkDuplicator_InPlace(b *testing.B) {
	dup, _ := NewDuplicator(sample.Int16)
	buf := make([]byte, 8192)

	b.ReportAllocs()
	for b.Loop() {
		_, _ = dup.Convert(buf, buf[:4096], 2048)
	}
}
