//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package app

import (
	"fmt"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// enterCbreak turns off line buffering and echo on fd and returns the state
// to restore. Signal keys and output post-processing stay enabled, so
// Ctrl-C still interrupts and "\n" still ends a row.
func enterCbreak(fd int) (*terminalState, error) {
	saved, err := term.GetState(fd)
	if err != nil {
		return nil, fmt.Errorf("read terminal state: %w", err)
	}
	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, fmt.Errorf("read termios: %w", err)
	}
	termios.Lflag &^= unix.ICANON | unix.ECHO
	termios.Cc[unix.VMIN] = 1
	termios.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, termios); err != nil {
		return nil, fmt.Errorf("write termios: %w", err)
	}
	return saved, nil
}

func restoreTerminal(fd int, state *terminalState) error {
	return term.Restore(fd, state)
}
