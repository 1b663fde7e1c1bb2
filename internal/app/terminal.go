package app

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

// Geometry is the terminal size captured at startup.
type Geometry struct {
	Rows    uint64
	Columns uint64
}

// DefaultGeometry is used when no terminal or environment reports a size.
var DefaultGeometry = Geometry{Rows: 24, Columns: 80}

type terminalState = term.State

var (
	termGetSize = term.GetSize
	lookupEnv   = os.LookupEnv
)

// detectGeometry asks each fd in turn, then LINES and COLUMNS, then falls
// back to DefaultGeometry.
func detectGeometry(fds ...int) Geometry {
	for _, fd := range fds {
		if fd < 0 {
			continue
		}
		width, height, err := termGetSize(fd)
		if err == nil && width > 0 && height > 0 {
			return Geometry{Rows: uint64(height), Columns: uint64(width)}
		}
	}
	return Geometry{
		Rows:    envDimension("LINES", DefaultGeometry.Rows),
		Columns: envDimension("COLUMNS", DefaultGeometry.Columns),
	}
}

func envDimension(name string, fallback uint64) uint64 {
	raw, ok := lookupEnv(name)
	if !ok {
		return fallback
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || n == 0 {
		return fallback
	}
	return n
}
