// FILE: lixenwraith/devlog/default.go
package devlog

import (
	"time"
)

// Global instance for package-level functions
var defaultLogger = NewLogger()

// Default returns the logger behind the package-level functions
func Default() *Logger {
	return defaultLogger
}

// Default package-level functions that delegate to the default logger.
// Logging functions call log directly, see callerSkip.

// Init sets the master switch, file mirroring, console filter and global tag
func Init(enabled, fileEnabled bool, filter Severity, tag string) error {
	return defaultLogger.Init(enabled, fileEnabled, filter, tag)
}

// Configure returns a builder seeded with the default logger's configuration;
// Build applies it to the default logger
func Configure() *Builder {
	return defaultLogger.Builder()
}

// ApplyConfig applies a validated configuration to the default logger
func ApplyConfig(cfg *Config) error {
	return defaultLogger.ApplyConfig(cfg)
}

// ApplyOverride applies "key=value" overrides to the default logger
func ApplyOverride(overrides ...string) error {
	return defaultLogger.ApplyOverride(overrides...)
}

// GetConfig returns a copy of the default logger's configuration
func GetConfig() *Config {
	return defaultLogger.GetConfig()
}

// SaveConfig saves the current logger configuration to a file
func SaveConfig(path string) error {
	return defaultLogger.SaveConfig(path)
}

// Shutdown drains and stops the default logger's file processor
func Shutdown(timeout ...time.Duration) error {
	return defaultLogger.Shutdown(timeout...)
}

// Flush waits until queued file entries are written
func Flush(timeout time.Duration) error {
	return defaultLogger.Flush(timeout)
}

// Verbose logs a message at verbose severity
func Verbose(args ...any) {
	defaultLogger.log(kindPlain, SeverityVerbose, "", nil, args)
}

// Debug logs a message at debug severity
func Debug(args ...any) {
	defaultLogger.log(kindPlain, SeverityDebug, "", nil, args)
}

// Info logs a message at info severity
func Info(args ...any) {
	defaultLogger.log(kindPlain, SeverityInfo, "", nil, args)
}

// Warn logs a message at warn severity
func Warn(args ...any) {
	defaultLogger.log(kindPlain, SeverityWarn, "", nil, args)
}

// Error logs a message at error severity
func Error(args ...any) {
	defaultLogger.log(kindPlain, SeverityError, "", nil, args)
}

// Assert logs a message at assert severity
func Assert(args ...any) {
	defaultLogger.log(kindPlain, SeverityAssert, "", nil, args)
}

// File writes a message to the day file only
func File(args ...any) {
	defaultLogger.log(kindFile, SeverityVerbose, "", nil, args)
}

// JSON pretty-prints a JSON document at debug severity
func JSON(s string) {
	defaultLogger.log(kindJSON, SeverityDebug, "", nil, []any{s})
}

// XML pretty-prints an XML document at debug severity
func XML(s string) {
	defaultLogger.log(kindXML, SeverityDebug, "", nil, []any{s})
}

// Log is the generic entry point taking every parameter explicitly
func Log(sev Severity, tag string, err error, args ...any) {
	defaultLogger.log(kindPlain, sev, tag, err, args)
}

// Tag starts an entry with a per-call tag on the default logger
func Tag(tag string) *Entry {
	return &Entry{logger: defaultLogger, tag: tag}
}

// WithError starts an entry carrying err on the default logger
func WithError(err error) *Entry {
	return &Entry{logger: defaultLogger, err: err}
}

// GetStats returns the default logger's counters
func GetStats() Stats {
	return defaultLogger.Stats()
}
