//go:build !(darwin || dragonfly || freebsd || linux || netbsd || openbsd)

package app

import (
	"errors"

	"golang.org/x/term"
)

var errNoCbreak = errors.New("cbreak mode is not supported on this platform")

func enterCbreak(int) (*terminalState, error) {
	return nil, errNoCbreak
}

func restoreTerminal(fd int, state *terminalState) error {
	return term.Restore(fd, state)
}
