package logger

import corelogger "github.com/SimranYelave/Car-Rental-System/core/logger"

// Logger mirrors the core logging interface.
type Logger = corelogger.Logger

// NopLogger re-exports the silent implementation for tests.
type NopLogger = corelogger.NopLogger

// New returns a Logger for the given component. The output format follows
// the APP_ENV environment variable.
func New(component string) Logger {
	return NewZerologLogger(component)
}
