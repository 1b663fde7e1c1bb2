package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// DefaultEscapeTimeout is how long the decoder waits after an Escape byte
// for the rest of a key sequence.
const DefaultEscapeTimeout = 100 * time.Millisecond

const escByte = byte(tcell.KeyESC)

// KeyKind classifies a decoded key press.
type KeyKind int

const (
	// KeyByte is an ordinary byte; Key.Byte holds it.
	KeyByte KeyKind = iota
	// KeyEscape is a lone Escape press.
	KeyEscape
	KeyUp
	KeyDown
	// KeyOther is a recognised but unsupported escape sequence.
	KeyOther
	KeyPageUp
	KeyPageDown
)

func (k KeyKind) String() string {
	switch k {
	case KeyByte:
		return "byte"
	case KeyEscape:
		return "escape"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyOther:
		return "other"
	case KeyPageUp:
		return "page-up"
	case KeyPageDown:
		return "page-down"
	default:
		return "unknown"
	}
}

// Key is one logical key press.
type Key struct {
	Kind KeyKind
	Byte byte
}

// Device is the control terminal as seen by the decoder.
type Device interface {
	// ReadByte blocks until a byte is available.
	ReadByte() (byte, error)
	// ReadByteWithin waits at most timeout for a byte; ok is false when
	// none arrived.
	ReadByteWithin(timeout time.Duration) (b byte, ok bool, err error)
}

type decodeState int

const (
	stateGround decodeState = iota
	stateEscape
	stateCSI
	stateSS3
)

// step feeds b to the decoder in state s. done reports that key is complete.
func step(s decodeState, b byte) (next decodeState, key Key, done bool) {
	switch s {
	case stateGround:
		if b == escByte {
			return stateEscape, Key{}, false
		}
		return stateGround, Key{Kind: KeyByte, Byte: b}, true
	case stateEscape:
		switch b {
		case escByte:
			return stateGround, Key{Kind: KeyEscape}, true
		case '[':
			return stateCSI, Key{}, false
		case 'O':
			return stateSS3, Key{}, false
		default:
			return stateGround, Key{Kind: KeyOther}, true
		}
	case stateCSI:
		if (b >= '0' && b <= '9') || b == ';' {
			return stateCSI, Key{}, false
		}
		return stateGround, finalKey(b), true
	case stateSS3:
		return stateGround, finalKey(b), true
	default:
		return stateGround, Key{Kind: KeyOther}, true
	}
}

// expire is the key produced when the bounded read in state s times out.
func expire(s decodeState) Key {
	if s == stateEscape {
		return Key{Kind: KeyEscape}
	}
	return Key{Kind: KeyOther}
}

func finalKey(b byte) Key {
	switch b {
	case 'A':
		return Key{Kind: KeyUp}
	case 'B':
		return Key{Kind: KeyDown}
	default:
		return Key{Kind: KeyOther}
	}
}

// Sequences maps complete escape sequences, ESC included, to the keys a
// terminal sends them for. It refines sequences the built-in table only
// knows as KeyOther.
type Sequences map[string]KeyKind

// Decoder reads logical key presses from a Device.
type Decoder struct {
	dev     Device
	timeout time.Duration
	seqs    Sequences
	buf     []byte
}

// NewDecoder returns a Decoder that waits up to timeout for the bytes that
// follow an Escape. Non-positive timeouts use DefaultEscapeTimeout.
func NewDecoder(dev Device, timeout time.Duration) *Decoder {
	if timeout <= 0 {
		timeout = DefaultEscapeTimeout
	}
	return &Decoder{dev: dev, timeout: timeout}
}

// UseSequences installs terminal-specific sequences, usually from
// TerminalSequences.
func (d *Decoder) UseSequences(seqs Sequences) {
	d.seqs = seqs
}

// ReadKey blocks for the next key press. Only the first byte blocks without
// bound; Escape-prefixed sequences are read with the decoder timeout.
func (d *Decoder) ReadKey() (Key, error) {
	b, err := d.dev.ReadByte()
	if err != nil {
		return Key{}, err
	}
	state, key, done := step(stateGround, b)
	d.buf = append(d.buf[:0], b)
	for !done {
		next, ok, err := d.dev.ReadByteWithin(d.timeout)
		if err != nil {
			return Key{}, err
		}
		if !ok {
			return expire(state), nil
		}
		d.buf = append(d.buf, next)
		state, key, done = step(state, next)
	}
	if key.Kind == KeyOther {
		if kind, ok := d.seqs[string(d.buf)]; ok {
			key = Key{Kind: kind}
		}
	}
	return key, nil
}
