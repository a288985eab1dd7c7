// SPDX-License-Identifier: EPL-2.0

package copier

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// flush writes p to the sink, retrying short writes. It returns the bytes the
// sink accepted and the number of writes made. Running out of attempts under
// PolicyDrop is not an error; the caller sees written < len(p).
func (c *Copier) flush(ctx context.Context, p []byte) (written, attempts int, err error) {
	if len(p) == 0 {
		return 0, 0, nil
	}

	write := func() (struct{}, error) {
		attempts++
		n, werr := c.dst.Write(p[written:])
		if n > 0 {
			written += min(n, len(p)-written)
		}
		if werr != nil {
			return struct{}{}, backoff.Permanent(fmt.Errorf("write: %w", werr))
		}
		if written < len(p) {
			if c.conf.Policy == PolicyBlock && attempts == c.conf.MaxAttempts {
				c.log.WithFields(c.fields(len(p), written, attempts)).Warn("sink still full, blocking")
			}
			return struct{}{}, errBackpressure
		}
		return struct{}{}, nil
	}

	notify := func(_ error, next time.Duration) {
		c.log.WithField("attempt", attempts+1).WithField("delay", next).Debug("retrying write")
	}

	opts := []backoff.RetryOption{
		backoff.WithBackOff(backoff.NewConstantBackOff(c.conf.RetryDelay)),
		backoff.WithNotify(notify),
		backoff.WithMaxElapsedTime(0),
	}
	if c.conf.Policy == PolicyDrop {
		opts = append(opts, backoff.WithMaxTries(uint(c.conf.MaxAttempts)))
	}

	_, err = backoff.Retry(ctx, write, opts...)
	if errors.Is(err, errBackpressure) {
		err = nil
	}

	return written, attempts, err
}
