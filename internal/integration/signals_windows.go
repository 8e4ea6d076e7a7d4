//go:build windows

// Package integration holds end-to-end tests of the config loader and the
// scheduler working together.
package integration

import (
	"os"
	"syscall"
)

func getUnixSignals() []os.Signal {
	return []os.Signal{
		syscall.SIGINT,
		syscall.SIGTERM,
	}
}
