//go:build windows

package main

import (
	"os"
	"syscall"
)

// Closing the console window arrives as SIGTERM.
func getSignalsForPlatform() []os.Signal {
	return []os.Signal{
		syscall.SIGINT,
		syscall.SIGTERM,
	}
}
