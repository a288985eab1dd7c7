// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"

	"github.com/ik5/audcopy/sample"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  Format
		unit    sample.Unit
		frame   int
		wantErr bool
	}{
		{"cd", cd, sample.Int16, 4, false},
		{"telephony", Format{8000, 1, 8}, sample.Byte, 1, false},
		{"studio", Format{96000, 6, 24}, sample.Int24, 18, false},
		{"odd depth", Format{48000, 2, 20}, sample.Int24, 6, false},
		{"no rate", Format{0, 2, 16}, sample.Int16, 4, true},
		{"no channels", Format{44100, 0, 16}, sample.Int16, 0, true},
		{"too many channels", Format{44100, 33, 16}, sample.Int16, 66, true},
		{"no depth", Format{44100, 2, 0}, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.format.Unit(); got != tt.unit {
				t.Errorf("Unit() = %v, want %v", got, tt.unit)
			}
			if got := tt.format.FrameSize(); got != tt.frame {
				t.Errorf("FrameSize() = %d, want %d", got, tt.frame)
			}

			err := tt.format.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("Validate() error = %v, want ErrInvalidFormat", err)
			}
		})
	}
}

func TestFormat_String(t *testing.T) {
	t.Parallel()

	if got, want := cd.String(), "44100Hz 2ch 16-bit"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
