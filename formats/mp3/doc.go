// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
// go-mp3 always produces 16-bit little-endian stereo, so the stream format
// is 2 channels, 16 bits, at the file's sample rate, even for mono files.
//
//	file, _ := os.Open("audio.mp3")
//	stream, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	defer stream.Close()
package mp3
