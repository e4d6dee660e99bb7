// Package tap implements a pausable delivery controller for a single
// push-based stream.
//
// A Controller attaches and detaches delivery of stream events to a sink
// without destroying the logical consumer. It exposes four operations
// (Start, Stop, Pause, Resume) plus a uniform Command dispatcher, guarded
// by a small explicit state machine:
//
//	Stopped --Start--> Running --Pause--> Paused --Resume--> Running
//	Running/Paused --Stop--> Stopped
//
// Calling an operation from a state where its guard fails is a silent
// no-op, never an error. Callers may issue control actions without first
// inspecting state.
//
// Pausing fully releases the underlying subscription; resuming creates an
// entirely new one. A live subscription exists if and only if the
// controller is Running. Nothing produced while Paused or Stopped is
// buffered or replayed.
//
// # Calling context
//
// The four operations never block, and they must be invoked from a single
// calling context; no internal locking is provided. The value gate itself
// is an atomic state read, so delivery may arrive from whatever goroutine
// the source uses.
package tap
