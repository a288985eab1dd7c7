// SPDX-License-Identifier: EPL-2.0

package audcopy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/ik5/audcopy/audio"
	"github.com/ik5/audcopy/convert"
	"github.com/ik5/audcopy/copier"
	"github.com/ik5/audcopy/formats/wav"
)

// Options for Transcode.
type Options struct {
	// Copier shapes the copy engine. SampleWidth is taken from the input
	// and BufferSize is aligned to it. The zero value means copier.DefaultConfig.
	Copier copier.Config
	// Channels of the output; 0 keeps the input's.
	Channels int

	Logger  logrus.FieldLogger
	Metrics *copier.Metrics
}

// Transcode streams src through a copier into a WAV file written to w,
// changing the channel count on the way when opts asks for it. It returns
// the summed copy statistics.
//
// The WAV header is finalized before returning, also on error. w is not closed.
func Transcode(ctx context.Context, w io.WriteSeeker, src audio.Stream, opts Options) (copier.Stats, error) {
	var st copier.Stats

	in := src.Format()
	out := in
	if opts.Channels > 0 {
		out.Channels = opts.Channels
	}

	u := in.Unit()
	conv, err := convert.ForChannels(u, in.Channels, out.Channels)
	if err != nil {
		return st, fmt.Errorf("channels %d -> %d: %w", in.Channels, out.Channels, err)
	}

	conf := opts.Copier
	if conf == (copier.Config{}) {
		conf = copier.DefaultConfig()
	}
	conf.SampleWidth = u
	conf.BufferSize = max(u.Align(conf.BufferSize), in.FrameSize(), out.FrameSize())

	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	log = log.WithFields(logrus.Fields{"input": in.String(), "output": out.String()})

	c, err := copier.New(conf, copier.WithLogger(log), copier.WithMetrics(opts.Metrics))
	if err != nil {
		return st, err
	}

	sink, err := wav.NewSink(w, out)
	if err != nil {
		return st, err
	}

	guard := newGuard(src, in, log)
	defer guard.cancel()

	if err := c.Configure(guard, sink); err != nil {
		return st, errors.Join(err, sink.Close())
	}

	if conv == nil {
		st, err = c.CopyAll(ctx)
	} else {
		st, err = c.CopyAllConvert(ctx, conv)
	}
	if err == nil {
		err = src.Err()
	}
	if err == nil && guard.changed.Load() {
		err = ErrFormatChanged
	}
	if cerr := sink.Close(); cerr != nil {
		err = errors.Join(err, fmt.Errorf("finalize wav: %w", cerr))
	}

	log.WithFields(logrus.Fields{
		"read":    st.Read,
		"written": st.Written,
		"frames":  sink.Frames(),
	}).Debug("transcode done")

	return st, err
}

// TranscodeFile decodes the file at inPath with the decoder registered for
// format, or for its extension when format is empty, and writes a WAV file
// to outPath.
func TranscodeFile(ctx context.Context, reg *audio.Registry, inPath, outPath, format string, opts Options) (copier.Stats, error) {
	var st copier.Stats

	if reg == nil {
		reg = DefaultRegistry()
	}

	var (
		dec audio.Decoder
		err error
	)
	if format != "" {
		var ok bool
		if dec, ok = reg.Get(format); !ok {
			err = fmt.Errorf("%w: %q", audio.ErrUnknownFormat, format)
		}
	} else {
		dec, err = reg.Lookup(inPath)
	}
	if err != nil {
		return st, err
	}

	in, err := os.Open(inPath)
	if err != nil {
		return st, err
	}
	defer in.Close()

	src, err := dec.Decode(in)
	if err != nil {
		return st, fmt.Errorf("decode %s: %w", inPath, err)
	}
	defer src.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return st, err
	}

	st, err = Transcode(ctx, out, src, opts)
	if cerr := out.Close(); cerr != nil {
		err = errors.Join(err, cerr)
	}

	return st, err
}

// guard stops the copy when the stream's format changes: from then on it
// reports nothing available, so the copier goes idle before reading any
// sample of the new format.
type guard struct {
	audio.Stream

	changed atomic.Bool
	cancel  func()
}

// subscriber is implemented by streams that report format changes.
type subscriber interface {
	Subscribe(o audio.FormatObserver) func()
}

func newGuard(s audio.Stream, initial audio.Format, log logrus.FieldLogger) *guard {
	g := &guard{Stream: s, cancel: func() {}}

	if sub, ok := s.(subscriber); ok {
		g.cancel = sub.Subscribe(audio.FormatObserverFunc(func(f audio.Format) {
			if f == initial || g.changed.Swap(true) {
				return
			}
			log.WithField("format", f.String()).Warn("input format changed, stopping")
		}))
	}

	return g
}

func (g *guard) Available() int {
	n := g.Stream.Available()
	if g.changed.Load() {
		return 0
	}

	return n
}
