// Package log provides the logging abstraction used by streamtap components.
//
// The library itself never writes to stderr; every component takes a Logger
// and defaults to the no-op implementation. The CLI installs the zerolog
// adapter.
//
// # Usage
//
//	logger := log.NewZerologAdapter()
//
// Or, for embedding and tests:
//
//	logger := log.NewNoopLogger()
//
// # Custom Loggers
//
// Implement the Logger interface to integrate with existing logging
// infrastructure:
//
//	type MyLogger struct { ... }
//
//	func (l *MyLogger) Debug(msg string, fields ...log.Field) { ... }
//	func (l *MyLogger) Info(msg string, fields ...log.Field)  { ... }
//	func (l *MyLogger) Warn(msg string, fields ...log.Field)  { ... }
//	func (l *MyLogger) Error(msg string, fields ...log.Field) { ... }
package log
