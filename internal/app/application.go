package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/kk-code-lab/page/internal/config"
	"github.com/kk-code-lab/page/internal/fs"
	"github.com/kk-code-lab/page/internal/logging"
	"github.com/kk-code-lab/page/internal/ui/input"
	"github.com/kk-code-lab/page/internal/ui/pager"
	"github.com/kk-code-lab/page/internal/ui/render"
	"golang.org/x/term"
)

const controlDevice = "/dev/tty"

// ErrInteractiveStdin is returned when there is no file to page and standard
// input is a terminal.
var ErrInteractiveStdin = errors.New("no file given and standard input is a terminal")

var (
	isTerminal = term.IsTerminal
	openTTY    = func() (*os.File, error) {
		return os.OpenFile(controlDevice, os.O_RDWR, 0)
	}
	exit          = os.Exit
	setCbreak     = enterCbreak
	resetTerminal = restoreTerminal
)

var errClosed = errors.New("session already closed")

// Options selects what to page and where.
type Options struct {
	// Path names the file to page; empty pages standard input.
	Path   string
	Config *config.Config
	Logger *logging.Logger
	// Stdin and Stdout default to the process streams.
	Stdin  *os.File
	Stdout *os.File
}

// Application represents one paging session.
type Application struct {
	cfg         *config.Config
	logger      *logging.Logger
	src         *fs.Source
	stdout      *os.File
	out         *bufio.Writer
	pos         render.Position
	screen      *render.Screen
	geometry    Geometry
	interactive bool

	tty *os.File

	// mu guards the fields the signal goroutine reads during teardown.
	mu        sync.Mutex
	saved     *terminalState
	stopWatch func()
	closed    bool

	closeOnce sync.Once
	closeErr  error
}

// NewApplication opens the source and, when stdout is a terminal, the
// control device.
func NewApplication(opts Options) (*Application, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	stdin := opts.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	src, err := openSource(opts.Path, stdin)
	if err != nil {
		return nil, err
	}

	logger = logger.With("source", src.Name())
	app := &Application{
		cfg:         cfg,
		logger:      logger,
		src:         src,
		stdout:      stdout,
		out:         bufio.NewWriter(stdout),
		interactive: isTerminal(int(stdout.Fd())),
	}

	fds := []int{int(stdout.Fd())}
	if app.interactive {
		tty, err := openTTY()
		if err != nil {
			_ = src.Close()
			return nil, fmt.Errorf("cannot open control terminal %s: %w", controlDevice, err)
		}
		app.tty = tty
		fds = append([]int{int(tty.Fd())}, fds...)
	} else if tty, err := openTTY(); err == nil {
		// Redirected output still wraps at the terminal's width.
		defer func() {
			_ = tty.Close()
		}()
		fds = append([]int{int(tty.Fd())}, fds...)
	}
	app.geometry = detectGeometry(fds...)
	app.screen = render.NewScreen(app.out, &app.pos, src.Size(), app.interactive)

	logger.Info("session start",
		"seekable", src.Seekable(),
		"size", src.Size(),
		"encoding", src.Encoding().String(),
		"interactive", app.interactive,
		"rows", app.geometry.Rows,
		"columns", app.geometry.Columns)
	return app, nil
}

func openSource(path string, stdin *os.File) (*fs.Source, error) {
	if path != "" {
		return fs.Open(path)
	}
	if isTerminal(int(stdin.Fd())) {
		return nil, ErrInteractiveStdin
	}
	return fs.NewStreamSource("stdin", stdin), nil
}

// Interactive reports whether keys are read from the control terminal.
func (app *Application) Interactive() bool {
	return app.interactive
}

// Run pages the source until the user quits or, when stdout is not a
// terminal, until the source is exhausted.
func (app *Application) Run() error {
	rows, columns := app.geometry.Rows, app.geometry.Columns
	if !app.interactive {
		page := rows - 1
		if page < 1 {
			page = 1
		}
		return app.screen.RenderAll(page, columns, app.src)
	}

	app.mu.Lock()
	app.stopWatch = app.watchSignals()
	app.mu.Unlock()

	if err := app.enterTerminalMode(); err != nil {
		return err
	}

	tracker := pager.NewTracker(app.screen, app.src, rows, columns, app.logger)
	session := pager.NewSession(tracker, app.logger)
	decoder := input.NewDecoder(input.NewTTYDevice(app.tty), app.cfg.EscapeTimeout)
	termName, _ := lookupEnv("TERM")
	decoder.UseSequences(input.TerminalSequences(termName))

	if err := tracker.Start(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return app.drive(decoder, session)
}

// enterTerminalMode switches the control terminal to cbreak mode. The saved
// state is published under mu, so a concurrent teardown either sees it or
// runs first and makes this a no-op.
func (app *Application) enterTerminalMode() error {
	app.mu.Lock()
	defer app.mu.Unlock()
	if app.closed {
		return errClosed
	}
	saved, err := setCbreak(int(app.tty.Fd()))
	if err != nil {
		return fmt.Errorf("cannot set terminal mode: %w", err)
	}
	app.saved = saved
	return nil
}

type keyReader interface {
	ReadKey() (input.Key, error)
}

func (app *Application) drive(keys keyReader, session *pager.Session) error {
	for {
		key, err := keys.ReadKey()
		if err != nil {
			if errors.Is(err, io.EOF) {
				app.logger.Info("quit", "cause", "control terminal closed")
				return nil
			}
			app.logger.Error("key read failed", "error", err)
			return fmt.Errorf("read control terminal: %w", err)
		}
		quit, err := session.Dispatch(key)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		if quit {
			app.logger.Info("quit", "cause", "key", "kind", key.Kind.String())
			return nil
		}
	}
}

// Close erases the status line, restores the terminal and releases the
// source and control device. It is safe to call more than once.
func (app *Application) Close() error {
	app.teardown(false)
	return app.closeErr
}

func (app *Application) teardown(fromSignal bool) {
	app.closeOnce.Do(func() {
		app.mu.Lock()
		defer app.mu.Unlock()
		app.closed = true

		var errs []error
		if app.interactive {
			if fromSignal {
				// The control goroutine may be mid-write on the buffer.
				_, _ = app.stdout.WriteString(render.EraseLine)
			} else {
				app.screen.EraseStatus()
			}
		}
		if !fromSignal {
			if err := app.out.Flush(); err != nil {
				errs = append(errs, fmt.Errorf("flush output: %w", err))
			}
		}
		if app.saved != nil {
			if err := resetTerminal(int(app.tty.Fd()), app.saved); err != nil {
				errs = append(errs, fmt.Errorf("restore terminal: %w", err))
			}
		}
		if app.tty != nil {
			_ = app.tty.Close()
		}
		if err := app.src.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close source: %w", err))
		}
		if !fromSignal && app.stopWatch != nil {
			app.stopWatch()
		}
		app.closeErr = errors.Join(errs...)
	})
}
