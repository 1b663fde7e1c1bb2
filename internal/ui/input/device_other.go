//go:build windows || plan9 || js || wasip1

package input

import (
	"io"
	"os"
	"time"
)

// TTYDevice reads key bytes from a terminal file. Without select(2) the
// bounded read cannot be honoured, so every Escape is reported on its own.
type TTYDevice struct {
	file *os.File
}

// NewTTYDevice wraps an open terminal file.
func NewTTYDevice(file *os.File) *TTYDevice {
	return &TTYDevice{file: file}
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

// ReadByteWithin always times out immediately.
func (d *TTYDevice) ReadByteWithin(time.Duration) (byte, bool, error) {
	return 0, false, nil
}
