// SPDX-License-Identifier: EPL-2.0

// Command audcopy decodes an audio file and streams it through the copy
// engine into a WAV file, optionally changing the channel count.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/ik5/audcopy"
	"github.com/ik5/audcopy/copier"
	"github.com/ik5/audcopy/internal/config"
)

// Populated via -ldflags="-X main.Version=...".
var Version = "dev"

const helpString = `Stream an audio file into a WAV file

Usage: audcopy [OPTION]... INPUT OUTPUT.wav

Input formats: wav, mp3, ogg, aiff, flac (picked by extension unless --format is set)

Copy:
  -c, --config=FILE        YAML configuration file
  -n, --channels=NUM       Output channel count (default: same as input)
  -b, --buffer-size=NUM    Copy buffer size in bytes (default: 1024)
      --max-attempts=NUM   Sink writes per step before dropping (default: 20)
      --retry-delay=DUR    Pause between sink writes (default: 5ms)
      --policy=drop|block  What to do when the sink stays full (default: drop)
  -f, --format=NAME        Input format, overrides the extension

Miscellaneous:
      --log-level=LEVEL    Log level (default: info)
      --metrics-file=FILE  Write Prometheus metrics to FILE on exit
  -h, --help               Prints this help message and exits
  -v, --version            Prints version information and exits
`

type options struct {
	config      string
	channels    int
	bufferSize  int
	maxAttempts int
	retryDelay  time.Duration
	policy      string
	format      string
	logLevel    string
	metricsFile string
	help        bool
	version     bool
}

func newFlagSet(o *options) *flag.FlagSet {
	fs := flag.NewFlagSet("audcopy", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVarP(&o.config, "config", "c", "", "YAML configuration file")
	fs.IntVarP(&o.channels, "channels", "n", 0, "Output channel count")
	fs.IntVarP(&o.bufferSize, "buffer-size", "b", copier.DefaultBufferSize, "Copy buffer size in bytes")
	fs.IntVar(&o.maxAttempts, "max-attempts", copier.DefaultMaxAttempts, "Sink writes per step")
	fs.DurationVar(&o.retryDelay, "retry-delay", copier.DefaultRetryDelay, "Pause between sink writes")
	fs.StringVar(&o.policy, "policy", "drop", "drop or block")
	fs.StringVarP(&o.format, "format", "f", "", "Input format")
	fs.StringVar(&o.logLevel, "log-level", "info", "Log level")
	fs.StringVar(&o.metricsFile, "metrics-file", "", "Prometheus text file")
	fs.BoolVarP(&o.help, "help", "h", false, "Print usage information and exit")
	fs.BoolVarP(&o.version, "version", "v", false, "Print version information and exit")

	return fs
}

// apply overrides conf with the flags given on the command line.
func apply(fs *flag.FlagSet, o *options, conf *config.Config) error {
	if fs.Changed("channels") {
		conf.Channels = o.channels
	}
	if fs.Changed("buffer-size") {
		conf.Copy.BufferSize = o.bufferSize
	}
	if fs.Changed("max-attempts") {
		conf.Copy.MaxAttempts = o.maxAttempts
	}
	if fs.Changed("retry-delay") {
		conf.Copy.RetryDelay = o.retryDelay
	}
	if fs.Changed("policy") {
		p, err := copier.ParsePolicy(o.policy)
		if err != nil {
			return err
		}
		conf.Copy.Policy = p
	}
	if fs.Changed("format") {
		conf.Format = o.format
	}
	if fs.Changed("log-level") {
		conf.Logging.Level = o.logLevel
	}
	if fs.Changed("metrics-file") {
		conf.MetricsFile = o.metricsFile
	}

	return conf.Validate()
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	var o options
	fs := newFlagSet(&o)
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "invalid arguments")
	}

	if o.help {
		fmt.Fprint(stdout, helpString)
		return nil
	}
	if o.version {
		fmt.Fprintln(stdout, "audcopy", Version)
		return nil
	}
	if fs.NArg() != 2 {
		return errors.New("expected INPUT and OUTPUT, see --help")
	}
	in, out := fs.Arg(0), fs.Arg(1)

	conf, err := config.ReadFile(o.config)
	if err != nil {
		return err
	}
	if err := apply(fs, &o, conf); err != nil {
		return err
	}

	log, err := conf.Init()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	metrics, err := copier.NewMetrics(reg, nil)
	if err != nil {
		return errors.Wrap(err, "could not register metrics")
	}

	start := time.Now()
	st, err := audcopy.TranscodeFile(ctx, audcopy.DefaultRegistry(), in, out, conf.Format, audcopy.Options{
		Copier:   conf.Copy,
		Channels: conf.Channels,
		Logger:   log,
		Metrics:  metrics,
	})

	if conf.MetricsFile != "" {
		if merr := prometheus.WriteToTextfile(conf.MetricsFile, reg); merr != nil {
			log.WithError(merr).Warn("could not write metrics")
		}
	}

	log.WithFields(logrus.Fields{
		"input":    in,
		"output":   out,
		"read":     st.Read,
		"written":  st.Written,
		"dropped":  st.Dropped(),
		"attempts": st.Attempts,
		"elapsed":  time.Since(start).String(),
	}).Info("copy finished")

	if err != nil {
		return errors.Wrapf(err, "copy %s -> %s", in, out)
	}

	summary := color.New(color.FgGreen)
	if st.Lossy() {
		summary = color.New(color.FgYellow)
	}
	summary.Fprintf(stdout, "%s -> %s: %d bytes read, %d written, %d dropped\n",
		in, out, st.Read, st.Written, st.Dropped())

	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout)
	stop()

	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "audcopy: %v\n", err)
		os.Exit(1)
	}
}
