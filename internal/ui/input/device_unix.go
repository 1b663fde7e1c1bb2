//go:build !windows && !plan9 && !js && !wasip1

package input

import (
	"errors"
	"io"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// TTYDevice reads key bytes straight from the controlling terminal with no
// buffering, so pending input is always visible to select(2).
type TTYDevice struct {
	file *os.File
	fd   int
}

// NewTTYDevice wraps an open terminal file.
func NewTTYDevice(file *os.File) *TTYDevice {
	return &TTYDevice{file: file, fd: int(file.Fd())}
}

// ReadByte blocks until a byte arrives.
func (d *TTYDevice) ReadByte() (byte, error) {
	var buf [1]byte
	n, err := d.file.Read(buf[:])
	if n == 1 {
		return buf[0], nil
	}
	if err != nil {
		return 0, err
	}
	return 0, io.EOF
}

// ReadByteWithin waits up to timeout for the terminal to become readable.
func (d *TTYDevice) ReadByteWithin(timeout time.Duration) (byte, bool, error) {
	deadline := time.Now().Add(timeout)
	for {
		remaining := time.Until(deadline)
		if remaining < 0 {
			remaining = 0
		}
		tv := unix.NsecToTimeval(remaining.Nanoseconds())

		var readfds unix.FdSet
		readfds.Zero()
		readfds.Set(d.fd)
		n, err := unix.Select(d.fd+1, &readfds, nil, nil, &tv)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return 0, false, err
		}
		if n == 0 || !readfds.IsSet(d.fd) {
			return 0, false, nil
		}
		b, err := d.ReadByte()
		if err != nil {
			return 0, false, err
		}
		return b, true, nil
	}
}
