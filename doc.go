// SPDX-License-Identifier: EPL-2.0

// Package audcopy moves decoded audio through a bounded, sample-aligned copy
// engine and writes it out as WAV.
//
// The building blocks live in subpackages:
//   - copier: the stream copy engine. It reads whole samples from a source
//     into a fixed buffer, optionally converts them in place and flushes them
//     to a sink with a bounded number of retries.
//   - convert: channel converters (duplicate, remix, downmix).
//   - sample: sample widths, alignment and little-endian sample access.
//   - audio: decoded PCM streams and the decoder registry.
//   - formats/wav, formats/mp3, formats/vorbis, formats/aiff, formats/flac:
//     decoders, plus a WAV sink.
//
// # Quick Start
//
//	st, err := audcopy.TranscodeFile(ctx, nil, "in.flac", "out.wav", "", audcopy.Options{
//	    Channels: 2,
//	})
//
// Transcode does the same for a stream that is already open:
//
//	stream, _ := mp3.Decoder{}.Decode(file)
//	st, err := audcopy.Transcode(ctx, out, stream, audcopy.Options{Channels: 1})
//
// # Using the Copier Directly
//
// Anything with Available and Read can be a source and anything with Write
// can be a sink:
//
//	c, _ := copier.NewTyped[int16](copier.DefaultConfig())
//	c.Configure(src, dst)
//	for {
//	    st, err := c.Step(ctx)
//	    if err != nil || st.Idle() {
//	        break
//	    }
//	}
//
// A sink that accepts fewer bytes than offered is retried at a fixed delay
// up to the configured number of attempts. What is still left is dropped
// and counted, or, with copier.PolicyBlock, retried until the context ends.
package audcopy
