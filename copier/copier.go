// SPDX-License-Identifier: EPL-2.0

package copier

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ik5/audcopy/convert"
	"github.com/ik5/audcopy/sample"
)

// Source is pulled from. Available must not block and may return 0.
// Read may return fewer bytes than asked for; io.EOF is not an error here.
type Source interface {
	Available() int
	Read(p []byte) (int, error)
}

// Sink is pushed to. A short count with a nil error means the sink is full
// for now; a non-nil error is a failure.
type Sink interface {
	Write(p []byte) (int, error)
}

// Copier copies from a Source to a Sink one bounded step at a time.
type Copier struct {
	conf Config
	unit sample.Unit
	buf  *buffer

	src Source
	dst Sink

	log     logrus.FieldLogger
	metrics *Metrics
	totals  counters
}

// New builds an unbound copier. Call Configure before stepping it.
func New(conf Config, opts ...Option) (*Copier, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	c := &Copier{
		conf: conf,
		unit: conf.SampleWidth,
		buf:  newBuffer(conf.BufferSize),
		log:  logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// NewTyped builds a copier aligned to samples of type T.
func NewTyped[T sample.Type](conf Config, opts ...Option) (*Copier, error) {
	conf.SampleWidth = sample.UnitOf[T]()
	return New(conf, opts...)
}

// Configure binds the copier to a new source and sink. It performs no I/O.
// A partial sample held from the previous source is discarded.
func (c *Copier) Configure(src Source, dst Sink) error {
	if src == nil {
		return ErrNilSource
	}
	if dst == nil {
		return ErrNilSink
	}

	c.src, c.dst = src, dst
	c.buf.reset()

	return nil
}

// Capacity of the copy buffer in bytes.
func (c *Copier) Capacity() int { return c.buf.Cap() }

// SampleWidth every transfer is aligned to.
func (c *Copier) SampleWidth() sample.Unit { return c.unit }

// Totals since the copier was built.
func (c *Copier) Totals() Totals { return c.totals.snapshot() }

// Step copies whatever whole samples are available, up to one buffer.
func (c *Copier) Step(ctx context.Context) (Stats, error) {
	return c.step(ctx, nil)
}

// StepConvert is Step with conv applied to the frames before they are
// flushed. The read is sized so the converted frames fit the buffer.
func (c *Copier) StepConvert(ctx context.Context, conv convert.Converter) (Stats, error) {
	if conv == nil {
		return Stats{}, ErrNilConverter
	}

	return c.step(ctx, conv)
}

// CopyAll steps until a step gets nothing to the sink, yielding between steps.
func (c *Copier) CopyAll(ctx context.Context) (Stats, error) {
	return c.copyAll(ctx, nil)
}

// CopyAllConvert is CopyAll with conv applied on every step.
func (c *Copier) CopyAllConvert(ctx context.Context, conv convert.Converter) (Stats, error) {
	if conv == nil {
		return Stats{}, ErrNilConverter
	}

	return c.copyAll(ctx, conv)
}

func (c *Copier) copyAll(ctx context.Context, conv convert.Converter) (Stats, error) {
	var total Stats
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		st, err := c.step(ctx, conv)
		total.add(st)
		if err != nil {
			return total, err
		}
		if st.stalled() {
			return total, nil
		}

		runtime.Gosched()
		if err := sleep(ctx, c.conf.IdleDelay); err != nil {
			return total, err
		}
	}
}

func (c *Copier) step(ctx context.Context, conv convert.Converter) (Stats, error) {
	var st Stats
	if c.src == nil || c.dst == nil {
		return st, ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return st, err
	}

	// in and out are the byte sizes of one frame before and after conversion
	in, out := int(c.unit), int(c.unit)
	if conv != nil {
		if err := c.checkConverter(conv); err != nil {
			return st, err
		}
		in, out = convert.InputFrame(conv), convert.OutputFrame(conv)
	}
	maxFrames := c.buf.Cap() / max(in, out)
	if maxFrames == 0 {
		return st, fmt.Errorf("%w: %d bytes, frame of %d", ErrBufferTooSmall, c.buf.Cap(), max(in, out))
	}

	available := c.src.Available()
	if available <= 0 {
		c.record(st)
		return st, nil
	}

	carry := c.buf.carry
	room := maxFrames*in - carry
	toRead := (carry+min(available, room))/in*in - carry
	if toRead <= 0 {
		c.record(st)
		return st, nil
	}
	st.Requested = toRead

	n, rerr := c.src.Read(c.buf.data[carry : carry+toRead])
	n = max(0, min(n, toRead))
	st.Read = n
	if rerr != nil {
		if errors.Is(rerr, io.EOF) {
			rerr = nil
		} else {
			rerr = fmt.Errorf("read: %w", rerr)
		}
	}

	have := carry + n
	frames := have / in
	whole := frames * in
	rest := c.buf.stash(whole, have)

	pending := whole
	if conv != nil && frames > 0 {
		var err error
		pending, err = conv.Convert(c.buf.data, c.buf.data[:whole], frames)
		if err != nil {
			c.buf.reset()
			return st, fmt.Errorf("convert: %w", err)
		}
	}
	st.Flushed = pending

	written, attempts, ferr := c.flush(ctx, c.buf.data[:pending])
	st.Written, st.Attempts = written, attempts

	c.buf.restore(rest)
	st.Carried = rest
	c.record(st)

	if ferr != nil {
		return st, ferr
	}

	return st, rerr
}

func (c *Copier) checkConverter(conv convert.Converter) error {
	w := conv.SampleWidth()
	if !w.Valid() || int(w)%int(c.unit) != 0 {
		return fmt.Errorf("%w: converter %v, copier %v", ErrWidthMismatch, w, c.unit)
	}

	return nil
}

func (c *Copier) record(st Stats) {
	c.totals.add(st)
	c.metrics.observe(st)

	if st.Idle() {
		return
	}

	l := c.log.WithFields(c.fields(st.Flushed, st.Written, st.Attempts)).WithFields(logrus.Fields{
		"requested": st.Requested,
		"read":      st.Read,
	})
	if st.Lossy() {
		l.WithField("dropped", st.Dropped()).Warn("flush gave up, dropping data")
		return
	}
	l.Debugf("copy %d -> %d -> %d bytes in %d attempts", st.Requested, st.Read, st.Written, st.Attempts)
}

func (c *Copier) fields(flushed, written, attempts int) logrus.Fields {
	return logrus.Fields{
		"flushed":  flushed,
		"written":  written,
		"attempts": attempts,
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
