// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ik5/audcopy/audio"
	"github.com/ik5/audcopy/copier"
	"github.com/ik5/audcopy/formats/wav"
	"github.com/ik5/audcopy/internal/config"
)

func writeInput(t *testing.T, dir string, pcm []byte) string {
	t.Helper()

	path := filepath.Join(dir, "in.wav")
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()

	sink, err := wav.NewSink(file, audio.Format{SampleRate: 8000, Channels: 1, BitDepth: 16})
	require.NoError(t, err)
	_, err = sink.Write(pcm)
	require.NoError(t, err)
	require.NoError(t, sink.Close())

	return path
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, []byte{1, 0, 2, 0, 3, 0})
	out := filepath.Join(dir, "out.wav")
	metrics := filepath.Join(dir, "audcopy.prom")

	var stdout bytes.Buffer
	err := run(context.Background(), []string{
		"--channels", "2",
		"--buffer-size", "8",
		"--metrics-file", metrics,
		"--log-level", "error",
		in, out,
	}, &stdout)
	require.NoError(t, err)
	require.Contains(t, stdout.String(), "6 bytes read, 12 written, 0 dropped")

	file, err := os.Open(out)
	require.NoError(t, err)
	defer file.Close()
	s, err := wav.Decoder{}.Decode(file)
	require.NoError(t, err)
	pcm, err := io.ReadAll(s)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 0, 1, 0, 2, 0, 2, 0, 3, 0, 3, 0}, pcm)

	prom, err := os.ReadFile(metrics)
	require.NoError(t, err)
	require.Contains(t, string(prom), "audcopy_copier_written_bytes_total 12")
}

func TestRun_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, []byte{1, 0})
	out := filepath.Join(dir, "out.wav")
	conf := filepath.Join(dir, "audcopy.yaml")
	require.NoError(t, os.WriteFile(conf, []byte("channels: 3\nlogging:\n  level: error\n"), 0o600))

	var stdout bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-c", conf, in, out}, &stdout))
	require.Contains(t, stdout.String(), "2 bytes read, 6 written")
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, []byte{1, 0})
	out := filepath.Join(dir, "out.wav")

	tests := map[string][]string{
		"no arguments":    {},
		"one argument":    {in},
		"unknown flag":    {"--volume", "11", in, out},
		"bad policy":      {"--policy", "wait", in, out},
		"bad channels":    {"--channels", "99", in, out},
		"unknown format":  {"--format", "opus", in, out},
		"missing input":   {filepath.Join(dir, "missing.wav"), out},
		"missing config":  {"--config", filepath.Join(dir, "missing.yaml"), in, out},
		"bad buffer size": {"--buffer-size", "0", in, out},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			require.Error(t, run(context.Background(), args, io.Discard))
		})
	}
}

func TestRun_HelpAndVersion(t *testing.T) {
	var stdout bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"--help"}, &stdout))
	require.Contains(t, stdout.String(), "Usage: audcopy")

	stdout.Reset()
	require.NoError(t, run(context.Background(), []string{"-v"}, &stdout))
	require.Equal(t, "audcopy dev\n", stdout.String())
}

func TestApply(t *testing.T) {
	var o options
	fs := newFlagSet(&o)
	require.NoError(t, fs.Parse([]string{"--policy", "block", "--retry-delay", "1ms", "-f", "mp3"}))

	conf, err := config.NewConfig("channels: 2\n")
	require.NoError(t, err)
	require.NoError(t, apply(fs, &o, conf))

	require.Equal(t, copier.PolicyBlock, conf.Copy.Policy)
	require.Equal(t, "mp3", conf.Format)
	require.Equal(t, 2, conf.Channels, "flags not given keep the file value")
	require.Equal(t, copier.DefaultBufferSize, conf.Copy.BufferSize)
}
