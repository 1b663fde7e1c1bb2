package render

import (
	"errors"
	"io"

	"github.com/kk-code-lab/page/internal/textutil"
)

// Signal reports how a line render ended.
type Signal int

const (
	// SignalMore means the line was soft-wrapped; its tail is still pending.
	SignalMore Signal = iota
	// SignalEOL means a newline from the source ended the line.
	SignalEOL
	// SignalEOF means the source is exhausted.
	SignalEOF
)

func (s Signal) String() string {
	switch s {
	case SignalMore:
		return "more"
	case SignalEOL:
		return "eol"
	case SignalEOF:
		return "eof"
	default:
		return "unknown"
	}
}

// ByteSource is the input a line render reads from. PushBack must hold one
// byte for the next ReadByte.
type ByteSource interface {
	ReadByte() (byte, error)
	PushBack(b byte) error
}

// Writer is the output a render writes to; *bufio.Writer and *bytes.Buffer
// both satisfy it.
type Writer interface {
	io.Writer
	io.ByteWriter
	io.StringWriter
}

// Position holds the cumulative consumption counters of a session.
type Position struct {
	// Progress counts bytes rendered or skipped.
	Progress uint64
	// Line counts newline-terminated lines rendered or skipped.
	Line uint64
}

// Reset zeroes both counters. Only a rewind of the source may call it.
func (p *Position) Reset() {
	p.Progress = 0
	p.Line = 0
}

// RenderLine writes one physical line of at most columns printing columns.
//
// A printing byte that would exceed the budget is pushed back onto src and
// begins the next line, unless a UTF-8 codepoint or escape sequence is still
// in flight: those are always finished on the current line. Every emitted
// line ends with a newline.
func RenderLine(w Writer, columns uint64, src ByteSource, pos *Position) (Signal, error) {
	if columns < 1 {
		columns = 1
	}

	var column uint64
	state := textutil.EscDefault
	wrote := false
	for {
		ch, err := src.ReadByte()
		if errors.Is(err, io.EOF) {
			if wrote {
				_ = w.WriteByte('\n')
			}
			return SignalEOF, nil
		}
		if err != nil {
			return SignalEOF, err
		}

		if ch == '\n' {
			pos.Progress++
			pos.Line++
			_ = w.WriteByte('\n')
			return SignalEOL, nil
		}

		state = textutil.Transition(state, ch)
		if column >= columns && textutil.Printable(ch) && !state.InSequence() {
			if err := src.PushBack(ch); err != nil {
				return SignalEOF, err
			}
			_ = w.WriteByte('\n')
			return SignalMore, nil
		}

		_ = w.WriteByte(ch)
		pos.Progress++
		wrote = true
		if !state.InSequence() {
			column = textutil.Advance(ch, column)
		}
	}
}
