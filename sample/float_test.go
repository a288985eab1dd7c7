// SPDX-License-Identifier: EPL-2.0

package sample

import (
	"math"
	"testing"
)

func TestFromFloat32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		unit  Unit
		input float32
		want  int32
	}{
		{"zero", Int16, 0.0, 0},
		{"max positive", Int16, 1.0, math.MaxInt16},
		{"max negative", Int16, -1.0, -math.MaxInt16},
		{"half positive", Int16, 0.5, 16383},
		{"half negative", Int16, -0.5, -16383},
		{"small positive", Int16, 0.001, 32},
		{"clamp over max", Int16, 1.5, math.MaxInt16},
		{"clamp way under min", Int16, -100.0, -math.MaxInt16},
		{"8-bit max", Byte, 1.0, 127},
		{"24-bit max", Int24, 1.0, 8388607},
		{"32-bit max", Int32, 1.0, math.MaxInt32},
		{"32-bit min", Int32, -1.0, -math.MaxInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FromFloat32(tt.unit, tt.input); got != tt.want {
				t.Errorf("FromFloat32(%v, %v) = %d, want %d", tt.unit, tt.input, got, tt.want)
			}
		})
	}
}

func TestPutFloat32(t *testing.T) {
	t.Parallel()

	src := []float32{1, -1, 0}
	dst := make([]byte, 5) // room for two 16-bit samples only

	n := PutFloat32(Int16, dst, src)
	if n != 4 {
		t.Fatalf("PutFloat32() = %d, want 4", n)
	}
	if got := Int16.Get(dst[0:]); got != math.MaxInt16 {
		t.Errorf("sample 0 = %d, want %d", got, math.MaxInt16)
	}
	if got := Int16.Get(dst[2:]); got != -math.MaxInt16 {
		t.Errorf("sample 1 = %d, want %d", got, -math.MaxInt16)
	}
}

func BenchmarkPutFloat32(b *testing.B) {
	src := make([]float32, 4096)
	for i := range src {
		src[i] = float32(math.Sin(float64(i) / 10))
	}
	dst := make([]byte, len(src)*2)

	b.ReportAllocs()
	for b.Loop() {
		PutFloat32(Int16, dst, src)
	}
}
