// FILE: lixenwraith/devlog/utility.go
package devlog

import (
	"fmt"
	"strings"
)

// fmtErrorf wrapper
func fmtErrorf(format string, args ...any) error {
	if !strings.HasPrefix(format, "devlog: ") {
		format = "devlog: " + format
	}
	return fmt.Errorf(format, args...)
}

// combineErrors helper
func combineErrors(err1, err2 error) error {
	if err1 == nil {
		return err2
	}
	if err2 == nil {
		return err1
	}
	return fmt.Errorf("%v; %w", err1, err2)
}

// parseKeyValue splits a "key=value" string.
func parseKeyValue(arg string) (string, string, error) {
	parts := strings.SplitN(strings.TrimSpace(arg), "=", 2)
	if len(parts) != 2 {
		return "", "", fmtErrorf("invalid format in override string '%s', expected key=value", arg)
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", fmtErrorf("key cannot be empty in override string '%s'", arg)
	}
	return key, value, nil
}

// ParseSeverity converts a severity name or letter to its constant.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "verbose", "v", "trace":
		return SeverityVerbose, nil
	case "debug", "d":
		return SeverityDebug, nil
	case "info", "i":
		return SeverityInfo, nil
	case "warn", "warning", "w":
		return SeverityWarn, nil
	case "error", "e":
		return SeverityError, nil
	case "assert", "wtf", "a":
		return SeverityAssert, nil
	default:
		return SeverityVerbose, fmtErrorf("invalid severity string: '%s' (use verbose, debug, info, warn, error, assert)", s)
	}
}

// isBlank reports whether s is empty or only whitespace
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
