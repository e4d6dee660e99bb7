//go:build !windows

package app

import (
	"os"
	"syscall"
)

// controlSignals are the process signals a session reacts to.
var controlSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM, syscall.SIGUSR1, syscall.SIGUSR2}

func isPause(sig os.Signal) bool { return sig == syscall.SIGUSR1 }

func isResume(sig os.Signal) bool { return sig == syscall.SIGUSR2 }
