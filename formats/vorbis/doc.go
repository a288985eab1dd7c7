// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis. Vorbis decodes to
// floating point; the stream scales it to 16-bit little-endian PCM, clamping
// anything outside [-1, 1].
//
//	file, _ := os.Open("audio.ogg")
//	stream, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	defer stream.Close()
package vorbis
