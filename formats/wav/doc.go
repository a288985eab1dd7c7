// SPDX-License-Identifier: EPL-2.0

// Package wav decodes WAV files into audio streams and encodes PCM bytes
// back into WAV files. It uses the github.com/go-audio library for the
// RIFF handling.
//
// # Supported Formats
//
//   - Integer PCM, 8, 16, 24 and 32 bits
//   - WAVE_FORMAT_EXTENSIBLE files carrying integer PCM
//   - Any channel count up to 32, any sample rate
//
// # Decoding WAV Files
//
//	file, _ := os.Open("audio.wav")
//	stream, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	defer stream.Close()
//
// The stream yields interleaved little-endian samples at the file's bit
// depth. 8-bit samples stay unsigned, as they are stored.
//
// # Writing WAV Files
//
// Sink takes the same byte layout and is finalized by Close:
//
//	out, _ := os.Create("out.wav")
//	sink, err := wav.NewSink(out, stream.Format())
//	...
//	_, err = sink.Write(pcm)
//	err = sink.Close()
//
// Sink only takes whole samples. A write that ends in the middle of a sample
// reports the shorter count, so a caller retrying the remainder keeps the
// file aligned.
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE file
//   - ErrOnlyPCMSupported: the file holds compressed or float audio
//   - ErrUnsupportedWavLayout: the header describes a format that cannot be streamed
//   - ErrSinkClosed: a write after Close
package wav
