// SPDX-License-Identifier: EPL-2.0

package copier

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exports copier activity as Prometheus counters.
// One Metrics value may be shared by several copiers.
type Metrics struct {
	Steps        prometheus.Counter
	IdleSteps    prometheus.Counter
	BytesRead    prometheus.Counter
	BytesWritten prometheus.Counter
	BytesDropped prometheus.Counter
	Attempts     prometheus.Counter
	LossyFlushes prometheus.Counter
}

// NewMetrics registers the copier counters with reg, or with the default
// registerer when reg is nil. Counters already registered under the same
// name and labels are reused.
func NewMetrics(reg prometheus.Registerer, labels prometheus.Labels) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{}
	for _, c := range []struct {
		dst  *prometheus.Counter
		name string
		help string
	}{
		{&m.Steps, "steps_total", "Copy steps run"},
		{&m.IdleSteps, "idle_steps_total", "Copy steps that found nothing to copy"},
		{&m.BytesRead, "read_bytes_total", "Bytes read from sources"},
		{&m.BytesWritten, "written_bytes_total", "Bytes accepted by sinks"},
		{&m.BytesDropped, "dropped_bytes_total", "Bytes dropped after the retry ceiling"},
		{&m.Attempts, "write_attempts_total", "Sink write calls"},
		{&m.LossyFlushes, "lossy_flushes_total", "Flushes that dropped data"},
	} {
		counter, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "audcopy",
			Subsystem:   "copier",
			Name:        c.name,
			Help:        c.help,
			ConstLabels: labels,
		}))
		if err != nil {
			return nil, fmt.Errorf("register %s: %w", c.name, err)
		}
		*c.dst = counter
	}

	return m, nil
}

func register(reg prometheus.Registerer, c prometheus.Counter) (prometheus.Counter, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}

	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
			return existing, nil
		}
	}

	return nil, err
}

func (m *Metrics) observe(st Stats) {
	if m == nil {
		return
	}

	m.Steps.Inc()
	if st.Idle() {
		m.IdleSteps.Inc()
		return
	}
	m.BytesRead.Add(float64(st.Read))
	m.BytesWritten.Add(float64(st.Written))
	m.Attempts.Add(float64(st.Attempts))
	if st.Lossy() {
		m.BytesDropped.Add(float64(st.Dropped()))
		m.LossyFlushes.Inc()
	}
}
