// FILE: lixenwraith/devlog/type.go
package devlog

import (
	"strconv"
	"strings"
)

// Severity is the ordered importance of a log call
type Severity int64

// String returns the upper-case severity name
func (s Severity) String() string {
	switch s {
	case SeverityVerbose:
		return "VERBOSE"
	case SeverityDebug:
		return "DEBUG"
	case SeverityInfo:
		return "INFO"
	case SeverityWarn:
		return "WARN"
	case SeverityError:
		return "ERROR"
	case SeverityAssert:
		return "ASSERT"
	default:
		return "SEVERITY(" + strconv.FormatInt(int64(s), 10) + ")"
	}
}

// Letter returns the single-letter marker used in file entries
func (s Severity) Letter() string {
	switch s {
	case SeverityVerbose:
		return "V"
	case SeverityDebug:
		return "D"
	case SeverityInfo:
		return "I"
	case SeverityWarn:
		return "W"
	case SeverityError:
		return "E"
	case SeverityAssert:
		return "A"
	default:
		return "?"
	}
}

// Valid reports whether s is one of the defined severities
func (s Severity) Valid() bool {
	return s >= SeverityVerbose && s <= SeverityAssert
}

// MarshalText implements encoding.TextMarshaler
func (s Severity) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmtErrorf("invalid severity %d", int64(s))
	}
	return []byte(strings.ToLower(s.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// callerLocation identifies the user code that invoked a public entry point
type callerLocation struct {
	Goroutine uint64
	Function  string // Simple function or method name, closure suffixes removed
	Type      string // Receiver type for methods, package name otherwise
	File      string // Base name of the source file
	Line      int
	OK        bool
}

// fileRecord is one composed entry queued for the file processor
type fileRecord struct {
	path string
	data []byte
}
