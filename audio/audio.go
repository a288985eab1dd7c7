// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// Decoder constructs a Stream from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Stream, error)
}

// DecoderFunc adapts a function to a Decoder.
type DecoderFunc func(r io.Reader) (Stream, error)

func (f DecoderFunc) Decode(r io.Reader) (Stream, error) { return f(r) }

// Registry for decoders by format key (e.g., "wav", "mp3", "ogg").
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

// Register binds format to d. Keys are case insensitive and a leading dot
// is ignored, so ".WAV" and "wav" are the same key.
func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[normalize(format)] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[normalize(format)]
	return d, ok
}

// Formats lists the registered keys in order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return slices.Sorted(maps.Keys(r.codecs))
}

// Lookup finds the decoder for a file by its extension.
func (r *Registry) Lookup(path string) (Decoder, error) {
	ext := filepath.Ext(path)
	if d, ok := r.Get(ext); ok {
		return d, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
}

// Open decodes r with the decoder registered for format.
func (r *Registry) Open(format string, src io.Reader) (Stream, error) {
	d, ok := r.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return d.Decode(src)
}

func normalize(format string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(format), "."))
}
