// SPDX-License-Identifier: EPL-2.0

// Package convert provides channel converters for interleaved PCM byte
// buffers.
//
// A Converter reads frames of InputChannels samples and writes frames of
// OutputChannels samples, all of the same SampleWidth:
//
//	dup := convert.NewDuplicator(sample.Int16) // mono -> stereo
//	n, err := dup.Convert(dst, src, frames)    // n == frames*2*2
//
// Converters are stateless. They never read past frames input frames and
// never write past len(dst). dst and src may be the same buffer (starting
// at the same byte), which lets a caller convert in place as long as the
// buffer can hold the larger of the input and the output.
//
// # Policies
//
//   - Duplicator copies one channel into two.
//   - Remix maps each output channel to an input channel (or silence), which
//     covers upmix, reorder and channel extraction.
//   - Downmix averages every input channel into one.
//   - Func wraps any function with declared channel counts.
package convert
