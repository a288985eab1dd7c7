// SPDX-License-Identifier: EPL-2.0

// Package sample describes the byte width of a single PCM sample and the
// helpers that keep every transfer aligned to whole samples.
//
// A Unit is fixed when a pipeline is built, either from a Go numeric type:
//
//	w := sample.UnitOf[int16]() // 2
//
// or from the bit depth reported by a decoder:
//
//	w, err := sample.ForBitDepth(24) // 3
//
// Alignment always rounds down, so a fractional sample is never counted:
//
//	sample.Int32.Align(10) // 8
//
// Integer samples are little-endian and signed, except 8-bit samples which
// follow the WAV convention of unsigned values centered on 128.
package sample
