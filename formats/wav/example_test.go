// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/audcopy/audio"
	"github.com/ik5/audcopy/formats/wav"
)

// Example_roundTrip writes PCM through a Sink and decodes it again.
func Example_roundTrip() {
	dir, err := os.MkdirTemp("", "wav-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	out, err := os.Create(filepath.Join(dir, "tone.wav"))
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()

	f := audio.Format{SampleRate: 8000, Channels: 2, BitDepth: 16}
	sink, err := wav.NewSink(out, f)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := sink.Write([]byte{1, 0, 2, 0, 3, 0, 4, 0}); err != nil {
		log.Fatal(err)
	}
	if err := sink.Close(); err != nil {
		log.Fatal(err)
	}

	if _, err := out.Seek(0, io.SeekStart); err != nil {
		log.Fatal(err)
	}
	stream, err := wav.Decoder{}.Decode(out)
	if err != nil {
		log.Fatal(err)
	}
	defer stream.Close()

	pcm, err := io.ReadAll(stream)
	fmt.Println(stream.Format())
	fmt.Println(pcm, err)
	// Output:
	// 8000Hz 2ch 16-bit
	// [1 0 2 0 3 0 4 0] <nil>
}

// Example_errorNotWAV shows how to detect non-WAV input.
func Example_errorNotWAV() {
	_, err := wav.Decoder{}.Decode(strings.NewReader("ID3 this is an mp3"))
	fmt.Println(errors.Is(err, wav.ErrNotWavFile))
	// Output: true
}
