package main

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/kk-code-lab/page/internal/app"
	"github.com/spf13/viper"
)

func execute(t *testing.T, run runFunc, args ...string) error {
	t.Helper()
	cmd := newRootCmd(viper.New(), run)
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func capture(got *app.Options) runFunc {
	return func(opts app.Options) error {
		*got = opts
		return nil
	}
}

func TestRootPassesPath(t *testing.T) {
	tests := []struct {
		name string
		args []string
		path string
	}{
		{name: "stdin", args: nil, path: ""},
		{name: "file", args: []string{"notes.txt"}, path: "notes.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got app.Options
			if err := execute(t, capture(&got), tt.args...); err != nil {
				t.Fatalf("Execute: %v", err)
			}
			if got.Path != tt.path {
				t.Fatalf("path=%q want %q", got.Path, tt.path)
			}
			if got.Config == nil || got.Logger == nil {
				t.Fatalf("config and logger must be set")
			}
		})
	}
}

func TestRootFlags(t *testing.T) {
	var got app.Options
	err := execute(t, capture(&got), "--escape-timeout=250ms", "--log-level=debug", "file")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got.Config.EscapeTimeout != 250*time.Millisecond {
		t.Fatalf("escape timeout=%s want 250ms", got.Config.EscapeTimeout)
	}
	if got.Config.LogLevel != "debug" {
		t.Fatalf("log level=%q want debug", got.Config.LogLevel)
	}
}

func TestRootReadsEnvironment(t *testing.T) {
	t.Setenv("PAGE_ESCAPE_TIMEOUT", "40ms")
	var got app.Options
	if err := execute(t, capture(&got)); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got.Config.EscapeTimeout != 40*time.Millisecond {
		t.Fatalf("escape timeout=%s want 40ms", got.Config.EscapeTimeout)
	}
}

func TestRootExitCodes(t *testing.T) {
	ok := func(app.Options) error { return nil }
	tests := []struct {
		name string
		run  runFunc
		args []string
		want int
	}{
		{name: "success", run: ok, want: 0},
		{name: "too many files", run: ok, args: []string{"a", "b"}, want: 2},
		{name: "unknown flag", run: ok, args: []string{"--nope"}, want: 2},
		{name: "bad duration", run: ok, args: []string{"--escape-timeout=soon"}, want: 2},
		{name: "non-positive timeout", run: ok, args: []string{"--escape-timeout=0s"}, want: 2},
		{name: "unknown log level", run: ok, args: []string{"--log-level=loud"}, want: 2},
		{
			name: "interactive stdin",
			run: func(app.Options) error {
				return &usageError{fmt.Errorf("setup: %w", app.ErrInteractiveStdin)}
			},
			want: 2,
		},
		{
			name: "setup failure",
			run:  func(app.Options) error { return errors.New("cannot open") },
			want: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := execute(t, tt.run, tt.args...)
			if got := exitCode(err); got != tt.want {
				t.Fatalf("exitCode=%d want %d (err=%v)", got, tt.want, err)
			}
		})
	}
}

func TestTooManyFilesDoesNotRun(t *testing.T) {
	called := false
	run := func(app.Options) error {
		called = true
		return nil
	}
	_ = execute(t, run, "a", "b")
	if called {
		t.Fatalf("run called for invalid invocation")
	}
}
