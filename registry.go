// SPDX-License-Identifier: EPL-2.0

package audcopy

import (
	"github.com/ik5/audcopy/audio"
	"github.com/ik5/audcopy/formats/aiff"
	"github.com/ik5/audcopy/formats/flac"
	"github.com/ik5/audcopy/formats/mp3"
	"github.com/ik5/audcopy/formats/vorbis"
	"github.com/ik5/audcopy/formats/wav"
)

// DefaultRegistry returns a registry with every bundled decoder, keyed by
// the file extensions they usually carry.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()

	r.Register("wav", wav.Decoder{})
	r.Register("wave", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("flac", flac.Decoder{})

	return r
}
