//go:build windows

package app

import (
	"os"
	"syscall"
)

// Windows has no SIGUSR1/SIGUSR2; pause and resume are unavailable and the
// session only reacts to interrupt and terminate.
var controlSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

func isPause(os.Signal) bool { return false }

func isResume(os.Signal) bool { return false }
