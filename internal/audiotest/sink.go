// SPDX-License-Identifier: EPL-2.0

package audiotest

import "sync"

// Sink records everything it accepts.
//
// Accept decides how many bytes of each write are taken; nil accepts all of
// them. Writes records the length of every call.
type Sink struct {
	mu sync.Mutex

	Accept func(call, n int) int
	Err    error

	Writes []int
	Data   []byte
}

func (s *Sink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	call := len(s.Writes)
	s.Writes = append(s.Writes, len(p))
	if s.Err != nil {
		return 0, s.Err
	}

	n := len(p)
	if s.Accept != nil {
		n = max(0, min(n, s.Accept(call, n)))
	}
	s.Data = append(s.Data, p[:n]...)
	return n, nil
}

// Calls returns how many times Write was called.
func (s *Sink) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.Writes)
}

// AcceptNone never accepts anything, like a stalled device.
func AcceptNone(int, int) int { return 0 }

// AcceptUpTo accepts at most limit bytes per call.
func AcceptUpTo(limit int) func(int, int) int {
	return func(_, n int) int { return min(n, limit) }
}

// AcceptAfter rejects the first k calls, then accepts everything.
func AcceptAfter(k int) func(int, int) int {
	return func(call, n int) int {
		if call < k {
			return 0
		}
		return n
	}
}

// Ring imitates a bounded hardware queue: it holds at most Capacity bytes,
// accepts whole multiples of Align, and drains Drain bytes before every write.
type Ring struct {
	Capacity int
	Align    int
	Drain    int

	queued int
	Writes []int
	Total  int
}

func (r *Ring) Write(p []byte) (int, error) {
	r.Writes = append(r.Writes, len(p))
	r.queued = max(0, r.queued-r.Drain)

	n := min(len(p), r.Capacity-r.queued)
	if r.Align > 1 {
		n = n / r.Align * r.Align
	}
	r.queued += n
	r.Total += n
	return n, nil
}
