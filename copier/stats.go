// SPDX-License-Identifier: EPL-2.0

package copier

import "sync/atomic"

// Stats describes one step, or the sum of the steps of a CopyAll run.
type Stats struct {
	Requested int // bytes asked of the source
	Read      int // bytes the source delivered
	Carried   int // bytes of a partial sample held for the next step
	Flushed   int // bytes offered to the sink, after conversion
	Written   int // bytes the sink accepted
	Attempts  int // sink writes
}

// Idle reports a step that found nothing to copy.
func (s Stats) Idle() bool { return s.Requested == 0 }

// Dropped is the number of bytes offered to the sink and never accepted.
func (s Stats) Dropped() int { return s.Flushed - s.Written }

// Lossy reports a flush that gave up before the sink took everything.
func (s Stats) Lossy() bool { return s.Written < s.Flushed }

// stalled reports a step that got nothing to the sink. A step that only
// completed part of a sample still counts as progress.
func (s Stats) stalled() bool {
	return s.Written == 0 && (s.Flushed > 0 || s.Read == 0)
}

func (s *Stats) add(o Stats) {
	s.Requested += o.Requested
	s.Read += o.Read
	s.Carried = o.Carried
	s.Flushed += o.Flushed
	s.Written += o.Written
	s.Attempts += o.Attempts
}

// Totals accumulate over the life of a Copier.
type Totals struct {
	Steps        int64
	IdleSteps    int64
	BytesRead    int64
	BytesWritten int64
	BytesDropped int64
	Attempts     int64
	LossyFlushes int64
}

type counters struct {
	steps, idle, read, written, dropped, attempts, lossy atomic.Int64
}

func (c *counters) add(st Stats) {
	c.steps.Add(1)
	if st.Idle() {
		c.idle.Add(1)
		return
	}
	c.read.Add(int64(st.Read))
	c.written.Add(int64(st.Written))
	c.attempts.Add(int64(st.Attempts))
	if st.Lossy() {
		c.dropped.Add(int64(st.Dropped()))
		c.lossy.Add(1)
	}
}

func (c *counters) snapshot() Totals {
	return Totals{
		Steps:        c.steps.Load(),
		IdleSteps:    c.idle.Load(),
		BytesRead:    c.read.Load(),
		BytesWritten: c.written.Load(),
		BytesDropped: c.dropped.Load(),
		Attempts:     c.attempts.Load(),
		LossyFlushes: c.lossy.Load(),
	}
}
