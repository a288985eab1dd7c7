// SPDX-License-Identifier: EPL-2.0

package copier

import (
	"fmt"
	"strings"
	"time"

	"github.com/ik5/audcopy/sample"
)

const (
	DefaultBufferSize  = 1024
	DefaultMaxAttempts = 20
	DefaultRetryDelay  = 5 * time.Millisecond
)

// Policy decides what happens when the sink still has not taken everything
// after MaxAttempts writes.
type Policy int

const (
	// PolicyDrop gives up and drops the rest.
	PolicyDrop Policy = iota
	// PolicyBlock keeps retrying until the write completes or the context ends.
	PolicyBlock
)

func (p Policy) String() string {
	switch p {
	case PolicyDrop:
		return "drop"
	case PolicyBlock:
		return "block"
	}

	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy accepts "drop" or "block".
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "drop":
		return PolicyDrop, nil
	case "block":
		return PolicyBlock, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
}

func (p Policy) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Policy) UnmarshalText(text []byte) error {
	v, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = v

	return nil
}

// Config fixes the shape of a Copier at construction.
type Config struct {
	// BufferSize is the capacity of the copy buffer in bytes.
	BufferSize int `yaml:"buffer_size"`
	// SampleWidth is the byte width every transfer is aligned to.
	SampleWidth sample.Unit `yaml:"sample_width"`
	// MaxAttempts caps sink writes per step under PolicyDrop.
	MaxAttempts int `yaml:"max_attempts"`
	// RetryDelay is the pause before every write after the first.
	RetryDelay time.Duration `yaml:"retry_delay"`
	// IdleDelay is slept between iterations of CopyAll.
	IdleDelay time.Duration `yaml:"idle_delay"`
	Policy    Policy        `yaml:"policy"`
}

// DefaultConfig copies raw bytes through a 1 KiB buffer with 20 attempts
// 5ms apart and drops what the sink cannot take.
func DefaultConfig() Config {
	return Config{
		BufferSize:  DefaultBufferSize,
		SampleWidth: sample.Byte,
		MaxAttempts: DefaultMaxAttempts,
		RetryDelay:  DefaultRetryDelay,
		Policy:      PolicyDrop,
	}
}

func (c Config) Validate() error {
	if !c.SampleWidth.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidWidth, c.SampleWidth)
	}
	if c.BufferSize <= 0 || c.BufferSize%int(c.SampleWidth) != 0 {
		return fmt.Errorf("%w: %d bytes for %v samples", ErrInvalidBufferSize, c.BufferSize, c.SampleWidth)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidAttempts, c.MaxAttempts)
	}
	if c.RetryDelay < 0 || c.IdleDelay < 0 {
		return ErrInvalidDelay
	}
	if c.Policy != PolicyDrop && c.Policy != PolicyBlock {
		return fmt.Errorf("%w: %v", ErrInvalidPolicy, c.Policy)
	}

	return nil
}
