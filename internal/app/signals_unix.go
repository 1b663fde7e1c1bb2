//go:build !windows

package app

import (
	"os"
	"syscall"
)

func terminationSignals() []os.Signal {
	return []os.Signal{
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTSTP,
		syscall.SIGTERM,
		syscall.SIGHUP,
	}
}
