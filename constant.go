// FILE: lixenwraith/devlog/constant.go
package devlog

import (
	"time"

	"github.com/lixenwraith/devlog/formatter"
)

// Severity constants, ordered from least to most important
const (
	SeverityVerbose Severity = iota
	SeverityDebug
	SeverityInfo
	SeverityWarn
	SeverityError
	SeverityAssert
)

// Entry kinds, selecting the formatting and routing path of a call
const (
	kindPlain int = iota
	kindFile
	kindJSON
	kindXML
)

// Decoration
const (
	TopBorder    = formatter.TopBorder
	LeftBorder   = formatter.LeftBorder
	BottomBorder = formatter.BottomBorder
)

// Tags and markers
const (
	// Used when neither a global nor a per-call tag is set and the caller cannot be resolved
	fallbackTag = "devlog"
	// Tag of diagnostics the logger emits about itself
	internalTag = "devlog"
	// Marker written for File() entries in place of a severity letter
	fileMarker = "F"
)

// File naming
const (
	dayFileFormat = "2006-01-02"
	// Fixed key used when encryption is enabled without an explicit key
	defaultEncryptionKey = "DEVLOG_SECRETKEY"
)

// File size
const (
	megabyte = 1024 * 1024
	// Size cap lumberjack applies when max_file_size_mb is 0
	lumberjackDefaultMaxMB = 100
)

// Timers
const (
	// Minimum wait time used throughout the package
	minWaitTime = 10 * time.Millisecond
	// Default wait for the processor to drain on Shutdown and restarts
	defaultStopTimeout = 2 * time.Second
	// Upper bound of one encrypted or plain entry line read back by ReadEntries
	maxEntryLineBytes = 64 * 1024 * 1024
)

// Frames between captureCaller and user code: captureCaller -> log -> entry point -> caller.
// Every public entry point (Logger, Entry and package-level) must call log directly.
const callerSkip = 3
