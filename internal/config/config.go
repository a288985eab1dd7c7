// SPDX-License-Identifier: EPL-2.0

// Package config loads the audcopy command configuration.
package config

import (
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/ik5/audcopy/convert"
	"github.com/ik5/audcopy/copier"
)

type Config struct {
	Copy        copier.Config `yaml:"copy"`
	Channels    int           `yaml:"channels"`     // 0 keeps the input's
	Format      string        `yaml:"format"`       // decoder key, empty picks by extension
	MetricsFile string        `yaml:"metrics_file"` // Prometheus text file written on exit

	Logging LoggingConfig `yaml:"logging"`

	// internal
	ServiceName string `yaml:"-"`
	RunID       string `yaml:"-"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// NewConfig parses confString over the defaults.
func NewConfig(confString string) (*Config, error) {
	conf := &Config{
		Copy:        copier.DefaultConfig(),
		Logging:     LoggingConfig{Level: "info"},
		ServiceName: "audcopy",
	}
	if confString != "" {
		if err := yaml.Unmarshal([]byte(confString), conf); err != nil {
			return nil, errors.Wrap(err, "could not parse config")
		}
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

// ReadFile loads the config at path; an empty path gives the defaults.
func ReadFile(path string) (*Config, error) {
	if path == "" {
		return NewConfig("")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read config %s", path)
	}

	return NewConfig(string(data))
}

func (c *Config) Validate() error {
	if c.Channels < 0 || c.Channels > convert.MaxChannels {
		return errors.Errorf("channels must be between 0 and %d, got %d", convert.MaxChannels, c.Channels)
	}
	if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
		return errors.Wrap(err, "invalid logging level")
	}

	// the sample width comes from the input, only the buffer has to be sane here
	copyConf := c.Copy
	copyConf.SampleWidth = 1
	if err := copyConf.Validate(); err != nil {
		return errors.Wrap(err, "invalid copy config")
	}

	return nil
}

// Init assigns the run ID and sets up logging.
func (c *Config) Init() (logrus.FieldLogger, error) {
	c.RunID = uuid.NewString()

	return c.InitLogger()
}

// InitLogger configures the logrus standard logger and returns it carrying
// the config's fields.
func (c *Config) InitLogger() (logrus.FieldLogger, error) {
	level, err := logrus.ParseLevel(strings.TrimSpace(c.Logging.Level))
	if err != nil {
		return nil, errors.Wrap(err, "invalid logging level")
	}

	l := logrus.StandardLogger()
	l.SetLevel(level)
	if c.Logging.JSON {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return l.WithFields(c.GetLoggerFields()), nil
}

// GetLoggerFields returns the fields every log line of a run carries.
func (c *Config) GetLoggerFields() logrus.Fields {
	fields := logrus.Fields{
		"logger": c.ServiceName,
	}
	if c.RunID != "" {
		fields["runID"] = c.RunID
	}

	return fields
}
