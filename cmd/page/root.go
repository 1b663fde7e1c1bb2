package main

import (
	"errors"
	"fmt"

	"github.com/kk-code-lab/page/internal/app"
	"github.com/kk-code-lab/page/internal/config"
	"github.com/kk-code-lab/page/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const longHelp = `page shows a file or standard input one screen at a time.

KEYS:
    RETURN, j, Down     forward one line
    SPACE, f, Ctrl-F    forward one screen (also PgDn)
    d                   forward half a screen
    k, Up               back one line
    b, Ctrl-B           back one screen (also PgUp)
    u, Ctrl-U           back half a screen
    g                   go to line N (default 1)
    G                   go to end
    q, Q, Ctrl-D, ESC   quit

A number typed before a key repeats it N times. Backward moves need a
seekable file; on pipes they do nothing.

ENVIRONMENT:
    PAGE_ESCAPE_TIMEOUT, PAGE_LOG_FILE, PAGE_LOG_LEVEL mirror the flags.
    LINES and COLUMNS are used when the terminal size cannot be read.`

// usageError marks an invalid invocation.
type usageError struct {
	err error
}

func (e *usageError) Error() string {
	return e.err.Error()
}

func (e *usageError) Unwrap() error {
	return e.err
}

type runFunc func(opts app.Options) error

func newRootCmd(v *viper.Viper, run runFunc) *cobra.Command {
	config.SetDefaults(v)
	config.BindEnv(v)

	cmd := &cobra.Command{
		Use:           "page [file]",
		Short:         "Terminal pager",
		Long:          longHelp,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 1 {
				return &usageError{fmt.Errorf("accepts at most one file, received %d", len(args))}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return &usageError{err}
			}
			logger, err := logging.NewLogger(cfg.LogFile, cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("cannot open log file: %w", err)
			}
			defer func() {
				_ = logger.Close()
			}()

			opts := app.Options{Config: cfg, Logger: logger}
			if len(args) == 1 {
				opts.Path = args[0]
			}
			return run(opts)
		},
	}

	defaults := config.Default()
	flags := cmd.Flags()
	flags.Duration("escape-timeout", defaults.EscapeTimeout, "wait this long after ESC for an arrow-key sequence")
	flags.String("log-file", defaults.LogFile, "write JSON logs to this file")
	flags.String("log-level", defaults.LogLevel, "log level: DEBUG, INFO, WARN or ERROR")
	_ = v.BindPFlag("escape_timeout", flags.Lookup("escape-timeout"))
	_ = v.BindPFlag("log_file", flags.Lookup("log-file"))
	_ = v.BindPFlag("log_level", flags.Lookup("log-level"))

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err}
	})
	return cmd
}

func runPager(opts app.Options) error {
	application, err := app.NewApplication(opts)
	if err != nil {
		if errors.Is(err, app.ErrInteractiveStdin) {
			return &usageError{err}
		}
		return err
	}
	runErr := application.Run()
	closeErr := application.Close()
	return errors.Join(runErr, closeErr)
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var usage *usageError
	if errors.As(err, &usage) {
		return 2
	}
	return 1
}
