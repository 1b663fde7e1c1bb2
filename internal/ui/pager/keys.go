package pager

import "github.com/gdamore/tcell/v2"

type action int

const (
	actionNone action = iota
	actionForwardLine
	actionForwardPage
	actionForwardHalf
	actionBackLine
	actionBackPage
	actionBackHalf
	actionGoto
	actionEnd
	actionQuit
)

func (a action) String() string {
	switch a {
	case actionForwardLine:
		return "forward-line"
	case actionForwardPage:
		return "forward-page"
	case actionForwardHalf:
		return "forward-half"
	case actionBackLine:
		return "back-line"
	case actionBackPage:
		return "back-page"
	case actionBackHalf:
		return "back-half"
	case actionGoto:
		return "goto"
	case actionEnd:
		return "end"
	case actionQuit:
		return "quit"
	default:
		return "none"
	}
}

var byteActions = map[byte]action{
	byte(tcell.KeyLF):    actionForwardLine,
	byte(tcell.KeyEnter): actionForwardLine,
	'j':                  actionForwardLine,
	' ':                  actionForwardPage,
	'f':                  actionForwardPage,
	byte(tcell.KeyCtrlF): actionForwardPage,
	'd':                  actionForwardHalf,
	'k':                  actionBackLine,
	'b':                  actionBackPage,
	byte(tcell.KeyCtrlB): actionBackPage,
	'u':                  actionBackHalf,
	byte(tcell.KeyCtrlU): actionBackHalf,
	'g':                  actionGoto,
	'G':                  actionEnd,
	'q':                  actionQuit,
	'Q':                  actionQuit,
	byte(tcell.KeyCtrlD): actionQuit, // end of transmission
}

func actionForByte(b byte) action {
	return byteActions[b]
}
