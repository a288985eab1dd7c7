// SPDX-License-Identifier: EPL-2.0

package copier

import "github.com/sirupsen/logrus"

// Option customizes a Copier.
type Option func(*Copier)

// WithLogger sets the logger. The logrus standard logger is used otherwise.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Copier) {
		if l != nil {
			c.log = l
		}
	}
}

// WithMetrics reports every step to m.
func WithMetrics(m *Metrics) Option {
	return func(c *Copier) { c.metrics = m }
}
