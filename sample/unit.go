// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"encoding/binary"
	"fmt"
)

// Unit is the byte width of one sample.
type Unit int

const (
	Byte  Unit = 1
	Int16 Unit = 2
	Int24 Unit = 3
	Int32 Unit = 4
	Int64 Unit = 8
)

// Type lists the Go types a Unit can be derived from.
type Type interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~float32 |
		~int64 | ~uint64 | ~float64
}

// UnitOf returns the width of T.
func UnitOf[T Type]() Unit {
	var zero T
	return Unit(binary.Size(zero))
}

// ForBitDepth returns the smallest unit holding bits bits.
func ForBitDepth(bits int) (Unit, error) {
	if bits <= 0 || bits > 32 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidBitDepth, bits)
	}

	return Unit((bits + 7) / 8), nil
}

// Valid reports whether u is a width samples can have.
func (u Unit) Valid() bool {
	switch u {
	case Byte, Int16, Int24, Int32, Int64:
		return true
	}

	return false
}

// Bits of one sample.
func (u Unit) Bits() int { return int(u) * 8 }

// Align rounds n down to a whole number of samples.
func (u Unit) Align(n int) int {
	if u <= 0 || n <= 0 {
		return 0
	}

	return n / int(u) * int(u)
}

// Samples returns how many whole samples fit in n bytes.
func (u Unit) Samples(n int) int {
	if u <= 0 || n <= 0 {
		return 0
	}

	return n / int(u)
}

// Frame returns the byte size of a frame of the given channel count.
func (u Unit) Frame(channels int) int { return int(u) * channels }

func (u Unit) String() string {
	return fmt.Sprintf("%d-bit", u.Bits())
}

// Max is the largest positive integer value of a sample of width u.
func (u Unit) Max() int32 {
	switch u {
	case Byte:
		return 127
	case Int16:
		return 32767
	case Int24:
		return 8388607
	case Int32:
		return 2147483647
	}

	return 0
}

// Get decodes the little-endian sample at the start of b.
// Only integer widths up to 32 bits are decoded; other widths return 0.
func (u Unit) Get(b []byte) int32 {
	switch u {
	case Byte:
		return int32(b[0]) - 128
	case Int16:
		return int32(int16(binary.LittleEndian.Uint16(b)))
	case Int24:
		v := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
		if v&0x800000 != 0 {
			v |= ^0xFFFFFF
		}
		return v
	case Int32:
		return int32(binary.LittleEndian.Uint32(b))
	}

	return 0
}

// Put encodes v as a little-endian sample at the start of b.
func (u Unit) Put(b []byte, v int32) {
	switch u {
	case Byte:
		b[0] = byte(v + 128)
	case Int16:
		binary.LittleEndian.PutUint16(b, uint16(int16(v)))
	case Int24:
		b[0] = byte(v)
		b[1] = byte(v >> 8)
		b[2] = byte(v >> 16)
	case Int32:
		binary.LittleEndian.PutUint32(b, uint32(v))
	}
}

// Silence writes the zero level into every whole sample of b.
func (u Unit) Silence(b []byte) {
	fill := byte(0)
	if u == Byte {
		fill = 0x80
	}
	for i := range b[:u.Align(len(b))] {
		b[i] = fill
	}
}
