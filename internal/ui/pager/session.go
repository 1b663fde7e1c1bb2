package pager

import (
	"math"

	"github.com/kk-code-lab/page/internal/logging"
	"github.com/kk-code-lab/page/internal/ui/input"
)

// Session interprets decoded keys: digits build a repeat count, every other
// key dispatches one tracker operation and clears it.
type Session struct {
	tracker *Tracker
	prefix  uint64
	logger  *logging.Logger
}

// NewSession returns an interpreter driving tracker.
func NewSession(tracker *Tracker, logger *logging.Logger) *Session {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Session{tracker: tracker, logger: logger}
}

// Prefix returns the repeat count typed so far.
func (s *Session) Prefix() uint64 {
	return s.prefix
}

// Dispatch runs the command bound to key and reports whether the session
// should quit.
func (s *Session) Dispatch(key input.Key) (bool, error) {
	if key.Kind == input.KeyByte && isDigit(key.Byte) {
		s.prefix = appendDigit(s.prefix, key.Byte)
		return false, nil
	}

	count := s.count()
	s.prefix = 0

	act := actionNone
	switch key.Kind {
	case input.KeyEscape:
		act = actionQuit
	case input.KeyUp:
		act = actionBackLine
	case input.KeyDown:
		act = actionForwardLine
	case input.KeyPageUp:
		act = actionBackPage
	case input.KeyPageDown:
		act = actionForwardPage
	case input.KeyByte:
		act = actionForByte(key.Byte)
	}

	if act != actionNone {
		s.logger.Debug("dispatch", "action", act.String(), "count", count)
	}
	return s.run(act, count)
}

func (s *Session) run(act action, count uint64) (bool, error) {
	page := s.tracker.PageSize()
	half := page / 2
	if half < 1 {
		half = 1
	}

	switch act {
	case actionForwardLine:
		return false, s.tracker.RenderLines(count)
	case actionForwardPage:
		return false, s.tracker.RenderLines(mulSat(count, page))
	case actionForwardHalf:
		return false, s.tracker.RenderLines(mulSat(count, half))
	case actionBackLine:
		return false, s.tracker.ScrollBack(count)
	case actionBackPage:
		return false, s.tracker.ScrollBack(mulSat(count, page))
	case actionBackHalf:
		return false, s.tracker.ScrollBack(mulSat(count, half))
	case actionGoto:
		return false, s.tracker.GotoLine(count)
	case actionEnd:
		return false, s.tracker.RenderToEnd()
	case actionQuit:
		return true, nil
	default:
		return false, nil
	}
}

func (s *Session) count() uint64 {
	if s.prefix == 0 {
		return 1
	}
	return s.prefix
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// appendDigit returns n*10 + digit, saturating at the maximum count.
func appendDigit(n uint64, digit byte) uint64 {
	d := uint64(digit - '0')
	if n > (math.MaxUint64-d)/10 {
		return math.MaxUint64
	}
	return n*10 + d
}

func mulSat(a, b uint64) uint64 {
	if a != 0 && b > math.MaxUint64/a {
		return math.MaxUint64
	}
	return a * b
}
