// SPDX-License-Identifier: EPL-2.0

// Package audio defines decoded PCM streams and the registry of decoders
// that produce them.
//
// # Streams
//
// A Stream is interleaved little-endian integer PCM exposed as a byte
// source, so it can be handed straight to a copier:
//
//	type Stream interface {
//	    Format() Format
//	    Available() int
//	    Read(p []byte) (int, error)
//	    Err() error
//	    Close() error
//	}
//
// Available never blocks on I/O other than decoding the next block of the
// input. It returns 0 once the input is exhausted, after which Read returns
// io.EOF. A decode failure also ends the stream; Err reports it.
//
// # Writing a decoder
//
// Format packages implement BlockReader and wrap it in a PCMStream:
//
//	func (Decoder) Decode(r io.Reader) (audio.Stream, error) {
//	    br, f, err := open(r)
//	    if err != nil {
//	        return nil, err
//	    }
//	    return audio.NewPCMStream(br, f, 4096)
//	}
//
// A BlockReader that also implements FormatReporter can change format
// mid-stream. Subscribers registered with PCMStream.Subscribe are told the
// current format immediately and every new one as it appears.
//
// # Format Registry
//
// The registry maps format keys and file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.Lookup("input.wav")
package audio
