package render

// Screen renders whole screens of a source followed by a status line.
type Screen struct {
	out         Writer
	pos         *Position
	size        int64
	interactive bool
}

// NewScreen returns a Screen writing to out and counting into pos. size is
// the total byte size of the source, or 0 when unknown. A non-interactive
// screen never draws or erases the status line.
func NewScreen(out Writer, pos *Position, size int64, interactive bool) *Screen {
	return &Screen{
		out:         out,
		pos:         pos,
		size:        size,
		interactive: interactive,
	}
}

// Position returns the counters the screen advances.
func (s *Screen) Position() *Position {
	return s.pos
}

// Interactive reports whether the status line is drawn.
func (s *Screen) Interactive() bool {
	return s.interactive
}

// EraseStatus clears the status line drawn by the previous Render.
func (s *Screen) EraseStatus() {
	if !s.interactive {
		return
	}
	_, _ = s.out.WriteString(EraseLine)
}

// Render writes up to rows lines of src, then the status line, and flushes.
// With fillShort, rows the source could not fill are padded with empty
// lines so the status line lands at the bottom of the terminal.
func (s *Screen) Render(rows, columns uint64, src ByteSource, fillShort bool) (Signal, error) {
	s.EraseStatus()

	sig := SignalEOL
	var drawn uint64
	for drawn < rows {
		before := s.pos.Progress
		var err error
		sig, err = RenderLine(s.out, columns, src, s.pos)
		if err != nil {
			return sig, err
		}
		if sig == SignalEOF {
			if s.pos.Progress > before {
				drawn++
			}
			break
		}
		drawn++
	}

	if fillShort {
		for ; drawn < rows; drawn++ {
			_ = s.out.WriteByte('\n')
		}
	}

	return sig, s.finish(columns, sig)
}

// RenderAll pages through the rest of src, rows lines at a time.
func (s *Screen) RenderAll(rows, columns uint64, src ByteSource) error {
	if rows < 1 {
		rows = 1
	}
	for {
		sig, err := s.Render(rows, columns, src, false)
		if err != nil {
			return err
		}
		if sig == SignalEOF {
			return nil
		}
	}
}

func (s *Screen) finish(columns uint64, sig Signal) error {
	if s.interactive {
		_, _ = s.out.WriteString(fitStatus(StatusText(s.pos.Progress, s.size, sig), columns))
	}
	return s.flush()
}

func (s *Screen) flush() error {
	if f, ok := s.out.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}
