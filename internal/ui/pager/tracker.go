package pager

import (
	"errors"
	"io"
	"math"

	"github.com/kk-code-lab/page/internal/logging"
	"github.com/kk-code-lab/page/internal/ui/render"
)

// Source is what the tracker pages through. Rewind fails on forward-only
// sources and must leave the read position untouched when it does.
type Source interface {
	render.ByteSource
	Rewind() error
}

// Tracker moves through a source on behalf of the command interpreter. It
// owns the session's position counters and re-derives earlier screens by
// rewinding to the start and skipping forward: line offsets are never
// stored, and line 0 is the only position known without a re-scan.
type Tracker struct {
	screen  *render.Screen
	src     Source
	pos     *render.Position
	rows    uint64
	columns uint64
	logger  *logging.Logger
}

// NewTracker returns a Tracker drawing screens of rows-1 content lines (one
// row is kept for the status line) and columns columns.
func NewTracker(screen *render.Screen, src Source, rows, columns uint64, logger *logging.Logger) *Tracker {
	if rows < 2 {
		rows = 2
	}
	if columns < 1 {
		columns = 1
	}
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Tracker{
		screen:  screen,
		src:     src,
		pos:     screen.Position(),
		rows:    rows,
		columns: columns,
		logger:  logger,
	}
}

// PageSize is the number of content lines on one screen.
func (t *Tracker) PageSize() uint64 {
	return t.rows - 1
}

// Position returns a copy of the current counters.
func (t *Tracker) Position() render.Position {
	return *t.pos
}

// Start draws the first screen, padding short inputs so the status line
// sits on the last row.
func (t *Tracker) Start() error {
	_, err := t.screen.Render(t.PageSize(), t.columns, t.src, true)
	return err
}

// RenderLines draws n more lines.
func (t *Tracker) RenderLines(n uint64) error {
	_, err := t.screen.Render(n, t.columns, t.src, false)
	return err
}

// RenderToEnd draws everything up to end of input.
func (t *Tracker) RenderToEnd() error {
	_, err := t.screen.Render(math.MaxUint64, t.columns, t.src, false)
	return err
}

// SkipLines consumes n newline-terminated lines without drawing them. The
// counters advance exactly as if the lines had been rendered.
func (t *Tracker) SkipLines(n uint64) (render.Signal, error) {
	for i := uint64(0); i < n; i++ {
		for {
			ch, err := t.src.ReadByte()
			if errors.Is(err, io.EOF) {
				return render.SignalEOF, nil
			}
			if err != nil {
				return render.SignalEOF, err
			}
			t.pos.Progress++
			if ch == '\n' {
				t.pos.Line++
				break
			}
		}
	}
	return render.SignalEOL, nil
}

// GotoLine draws a screen starting at line target (1-based; 0 means 1).
// Targets at or before the current line need a rewind; when the source
// refuses one, nothing changes.
func (t *Tracker) GotoLine(target uint64) error {
	if target == 0 {
		target = 1
	}
	if target <= t.pos.Line {
		if !t.rewind(target) {
			return nil
		}
	}
	if _, err := t.SkipLines(target - t.pos.Line - 1); err != nil {
		return err
	}
	_, err := t.screen.Render(t.PageSize(), t.columns, t.src, false)
	return err
}

// ScrollBack redraws the screen whose top line is n lines above the
// current top line, never going before line 1. The terminal's own
// scrollback keeps what was shown before.
func (t *Tracker) ScrollBack(n uint64) error {
	top := uint64(1)
	if t.pos.Line+1 > t.PageSize() {
		top = t.pos.Line + 1 - t.PageSize()
	}
	target := uint64(1)
	if top > n {
		target = top - n
	}
	if target > t.pos.Line {
		// Nothing has scrolled off yet.
		return nil
	}
	return t.GotoLine(target)
}

func (t *Tracker) rewind(target uint64) bool {
	if err := t.src.Rewind(); err != nil {
		t.logger.Warn("rewind refused",
			"target", target,
			"line", t.pos.Line,
			"progress", t.pos.Progress,
			"error", err)
		return false
	}
	t.pos.Reset()
	return true
}
