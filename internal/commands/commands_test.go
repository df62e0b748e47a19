package commands

import (
	"bytes"
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(ran *[]string, cfg *string) *Registry {
	r := NewRegistry("run")
	run := flag.NewFlagSet("run", flag.ContinueOnError)
	run.SetOutput(io.Discard)
	run.StringVar(cfg, "config", "default.yaml", "")
	r.Register("run", "open the viewer", run, func(args []string) error {
		*ran = append(*ran, args...)
		return nil
	})
	r.Register("init-config", "write defaults", flag.NewFlagSet("init-config", flag.ContinueOnError), func([]string) error {
		*ran = append(*ran, "init")
		return nil
	})
	return r
}

func TestExecuteNamedCommand(t *testing.T) {
	var ran []string
	var cfg string
	r := newTestRegistry(&ran, &cfg)
	require.NoError(t, r.Execute([]string{"run", "-config", "x.toml", "a.obj", "b.yaml"}))
	assert.Equal(t, "x.toml", cfg)
	assert.Equal(t, []string{"a.obj", "b.yaml"}, ran)
}

func TestExecuteFallback(t *testing.T) {
	var ran []string
	var cfg string
	r := newTestRegistry(&ran, &cfg)
	require.NoError(t, r.Execute(nil))
	assert.Equal(t, "default.yaml", cfg)

	require.NoError(t, r.Execute([]string{"-config", "y.yaml", "m.obj"}))
	assert.Equal(t, "y.yaml", cfg)
	assert.Equal(t, []string{"m.obj"}, ran)
}

func TestExecuteErrors(t *testing.T) {
	var ran []string
	var cfg string
	r := newTestRegistry(&ran, &cfg)
	assert.EqualError(t, r.Execute([]string{"explode"}), "unknown command: explode")
	assert.Error(t, r.Execute([]string{"run", "-nope"}))

	assert.EqualError(t, NewRegistry("").Execute(nil), "missing subcommand")
}

func TestUsage(t *testing.T) {
	var ran []string
	var cfg string
	r := newTestRegistry(&ran, &cfg)
	var buf bytes.Buffer
	r.Usage(&buf)
	assert.Equal(t, []string{"init-config", "run"}, r.Names())
	assert.Contains(t, buf.String(), "init-config")
	assert.Contains(t, buf.String(), "open the viewer")
}
