// SPDX-License-Identifier: EPL-2.0

package sample

// FromFloat32 scales x in [-1, 1] to an integer sample of width u.
// Values outside the range are clamped.
func FromFloat32(u Unit, x float32) int32 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// float64 keeps 32-bit samples exact at full scale
	return int32(float64(x) * float64(u.Max()))
}

// PutFloat32 encodes a run of float samples into dst and returns the bytes written.
func PutFloat32(u Unit, dst []byte, src []float32) int {
	n := min(len(src), u.Samples(len(dst)))
	w := int(u)
	for i := range n {
		u.Put(dst[i*w:], FromFloat32(u, src[i]))
	}

	return n * w
}
