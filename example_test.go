// SPDX-License-Identifier: EPL-2.0

package audcopy_test

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/ik5/audcopy"
	"github.com/ik5/audcopy/audio"
	"github.com/ik5/audcopy/formats/wav"
)

// Example_monoToStereo writes a mono WAV file and turns it into stereo.
func Example_monoToStereo() {
	dir, err := os.MkdirTemp("", "audcopy-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	in := filepath.Join(dir, "mono.wav")
	out := filepath.Join(dir, "stereo.wav")

	// a tiny mono input
	file, err := os.Create(in)
	if err != nil {
		log.Fatal(err)
	}
	sink, err := wav.NewSink(file, audio.Format{SampleRate: 8000, Channels: 1, BitDepth: 16})
	if err != nil {
		log.Fatal(err)
	}
	if _, err := sink.Write([]byte{1, 0, 2, 0}); err != nil {
		log.Fatal(err)
	}
	sink.Close()
	file.Close()

	st, err := audcopy.TranscodeFile(context.Background(), nil, in, out, "", audcopy.Options{Channels: 2})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("read %d bytes, wrote %d bytes\n", st.Read, st.Written)

	result, err := os.Open(out)
	if err != nil {
		log.Fatal(err)
	}
	defer result.Close()

	stream, err := wav.Decoder{}.Decode(result)
	if err != nil {
		log.Fatal(err)
	}
	pcm, _ := io.ReadAll(stream)
	fmt.Println(stream.Format(), pcm)
	// Output:
	// read 4 bytes, wrote 8 bytes
	// 8000Hz 2ch 16-bit [1 0 1 0 2 0 2 0]
}
