// SPDX-License-Identifier: EPL-2.0

// Package flac provides FLAC audio file decoding.
//
// This package uses github.com/mewkiz/flac and decodes one FLAC frame per
// block. Channels are interleaved and samples are stored little-endian in
// whole bytes; depths that are not a multiple of 8 are shifted up to the
// next byte boundary, so a 20-bit file streams as 24-bit PCM.
//
// A FLAC frame may change the channel count or sample rate. The stream
// reports the new format to anyone subscribed with PCMStream.Subscribe:
//
//	stream, err := flac.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	if ps, ok := stream.(*audio.PCMStream); ok {
//	    ps.Subscribe(audio.FormatObserverFunc(func(f audio.Format) {
//	        log.Println("format", f)
//	    }))
//	}
package flac
