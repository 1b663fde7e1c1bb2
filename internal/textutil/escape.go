package textutil

// EscState tracks progress through an ANSI escape sequence.
// See https://en.wikipedia.org/wiki/ANSI_escape_code for the byte classes.
type EscState int

const (
	EscDefault EscState = iota
	EscEscape
	EscNF
	EscCSI
	EscFinal
)

const escByte = 0x1b

func (s EscState) String() string {
	switch s {
	case EscDefault:
		return "default"
	case EscEscape:
		return "escape"
	case EscNF:
		return "nf"
	case EscCSI:
		return "csi"
	case EscFinal:
		return "final"
	default:
		return "unknown"
	}
}

// Transition returns the classifier state after ch.
func Transition(state EscState, ch byte) EscState {
	if ch < 0x20 || ch > 0x7e {
		if ch == escByte {
			return EscEscape
		}
		return EscDefault
	}
	switch state {
	case EscEscape:
		switch {
		case ch <= 0x2f:
			// nF: intermediate byte, one more byte follows
			return EscNF
		case ch == '[':
			return EscCSI
		default:
			// Fp, Fe and Fs two-byte codes
			return EscFinal
		}
	case EscNF:
		return EscFinal
	case EscCSI:
		if ch <= 0x3f {
			return EscCSI
		}
		return EscFinal
	default:
		return EscDefault
	}
}

// InSequence reports whether a sequence is still in flight.
func (s EscState) InSequence() bool {
	return s != EscDefault
}
