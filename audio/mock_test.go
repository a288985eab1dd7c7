// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
)

// mockBlocks hands out scripted blocks, then io.EOF or err.
type mockBlocks struct {
	blocks  [][]byte
	formats []Format // format reported after each block, when set
	err     error

	calls  int
	closed bool
	cur    Format
}

func (m *mockBlocks) ReadBlock(dst []byte) ([]byte, error) {
	m.calls++
	if len(m.blocks) == 0 {
		if m.err != nil {
			return dst, m.err
		}
		return dst, io.EOF
	}

	i := m.calls - 1
	if i < len(m.formats) {
		m.cur = m.formats[i]
	}
	dst = append(dst, m.blocks[0]...)
	m.blocks = m.blocks[1:]
	return dst, nil
}

func (m *mockBlocks) Close() error {
	m.closed = true
	return nil
}

// reportingBlocks also implements FormatReporter.
type reportingBlocks struct{ *mockBlocks }

func (r reportingBlocks) Format() Format { return r.cur }

var cd = Format{SampleRate: 44100, Channels: 2, BitDepth: 16}
