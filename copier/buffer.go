// SPDX-License-Identifier: EPL-2.0

package copier

import (
	"github.com/ik5/audcopy/convert"
	"github.com/ik5/audcopy/sample"
)

// maxFragment bounds a partial frame carried between steps.
const maxFragment = convert.MaxChannels * int(sample.Int64)

// buffer is the copier's scratch space. It is allocated once and never
// resized. The first carry bytes of data hold a partial frame left over from
// a short read.
type buffer struct {
	data  []byte
	carry int
	tail  [maxFragment]byte
}

func newBuffer(size int) *buffer {
	return &buffer{data: make([]byte, size)}
}

func (b *buffer) Cap() int { return len(b.data) }

// stash saves data[from:to] before the buffer is overwritten.
func (b *buffer) stash(from, to int) int {
	return copy(b.tail[:], b.data[from:to])
}

// restore moves the stashed fragment to the head of the buffer.
func (b *buffer) restore(n int) {
	copy(b.data[:n], b.tail[:n])
	b.carry = n
}

func (b *buffer) reset() { b.carry = 0 }
