// SPDX-License-Identifier: EPL-2.0

// Package copier moves PCM bytes from a pull-style Source to a push-style
// Sink in bounded, sample-aligned steps.
//
// A Copier owns one fixed buffer. Each step asks the source how much is
// available, reads at most one buffer of whole samples, optionally converts
// the frames in place, and flushes the result to the sink:
//
//	c, err := copier.New(copier.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	if err := c.Configure(src, dst); err != nil {
//	    return err
//	}
//	st, err := c.Step(ctx)
//
// # Backpressure
//
// A sink may accept fewer bytes than offered, including none. The copier
// retries the remainder up to Config.MaxAttempts times with Config.RetryDelay
// between attempts. With PolicyDrop the rest is then dropped: the step
// returns normally and Stats.Lossy reports it. With PolicyBlock the copier
// keeps retrying until the sink takes everything or the context ends.
//
// # Stats
//
// Every step returns Stats. A step with nothing available has Requested == 0;
// a step whose data could not be delivered has Written < Flushed. Running
// totals are available from Copier.Totals and, when configured, as
// Prometheus counters.
//
// A Copier is not safe for concurrent use. Steps run on the caller's
// goroutine, one after the other.
package copier
