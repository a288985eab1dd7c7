// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
// AIFF is Apple's standard audio file format, commonly used on macOS.
//
// Samples are big-endian on disk; the stream delivers them interleaved and
// little-endian at the file's bit depth (8 to 32 bits). 8-bit AIFF is signed
// and is offset to unsigned so it matches 8-bit WAV.
//
//	file, _ := os.Open("audio.aif")
//	stream, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	defer stream.Close()
package aiff
