// FILE: lixenwraith/devlog/compat/structured_gnet.go
package compat

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/panjf2000/gnet/v2/pkg/logging"

	"github.com/lixenwraith/devlog"
)

var _ logging.Logger = (*StructuredGnetAdapter)(nil)

// keyValuePattern matches "key=%v" or "key: %v" verbs in a format string
var keyValuePattern = regexp.MustCompile(`(\w+)\s*[:=]\s*%[vsdqxXeEfFgGpbcU]`)

// parseFormat splits a printf-style call into a message and the key/value
// pairs named in the format. ok is false when the format names no fields.
func parseFormat(format string, args []any) (msg string, fields map[string]any, ok bool) {
	matches := keyValuePattern.FindAllStringSubmatchIndex(format, -1)
	if len(matches) == 0 || len(matches) > len(args) || strings.Count(format, "%") != len(args) {
		return fmt.Sprintf(format, args...), nil, false
	}

	fields = make(map[string]any, len(matches))
	var text []string
	lastEnd := 0
	argIndex := 0

	for _, match := range matches {
		// Text between fields becomes the message, verbs in it consume args
		if match[0] > lastEnd {
			segment := format[lastEnd:match[0]]
			n := strings.Count(segment, "%")
			if s := trimSeparators(fmt.Sprintf(segment, args[argIndex:argIndex+n]...)); s != "" {
				text = append(text, s)
			}
			argIndex += n
		}

		key := format[match[2]:match[3]]
		fields[key] = args[argIndex]
		argIndex++
		lastEnd = match[1]
	}

	if lastEnd < len(format) {
		if s := trimSeparators(fmt.Sprintf(format[lastEnd:], args[argIndex:]...)); s != "" {
			text = append(text, s)
		}
	}

	return strings.Join(text, " "), fields, true
}

func trimSeparators(s string) string {
	return strings.Trim(s, ",; \t")
}

// StructuredGnetAdapter logs gnet messages with their key/value pairs
// rendered as a separate argument
type StructuredGnetAdapter struct {
	*GnetAdapter
	extractFields bool
}

// NewStructuredGnetAdapter creates a gnet adapter with structured field extraction
func NewStructuredGnetAdapter(logger *devlog.Logger, opts ...GnetOption) *StructuredGnetAdapter {
	return &StructuredGnetAdapter{
		GnetAdapter:   NewGnetAdapter(logger, opts...),
		extractFields: true,
	}
}

// logFields logs the message and, when present, the extracted field map
func (a *StructuredGnetAdapter) logFields(sev devlog.Severity, format string, args []any) {
	msg, fields, ok := parseFormat(format, args)
	switch {
	case !a.extractFields || !ok:
		a.logger.Log(sev, a.tag, nil, fmt.Sprintf(format, args...))
	case msg == "":
		a.logger.Log(sev, a.tag, nil, fields)
	default:
		a.logger.Log(sev, a.tag, nil, msg, fields)
	}
}

// Debugf logs with structured field extraction
func (a *StructuredGnetAdapter) Debugf(format string, args ...any) {
	a.logFields(devlog.SeverityDebug, format, args)
}

// Infof logs with structured field extraction
func (a *StructuredGnetAdapter) Infof(format string, args ...any) {
	a.logFields(devlog.SeverityInfo, format, args)
}

// Warnf logs with structured field extraction
func (a *StructuredGnetAdapter) Warnf(format string, args ...any) {
	a.logFields(devlog.SeverityWarn, format, args)
}

// Errorf logs with structured field extraction
func (a *StructuredGnetAdapter) Errorf(format string, args ...any) {
	a.logFields(devlog.SeverityError, format, args)
}

// Fatalf logs with structured field extraction and triggers the fatal handler
func (a *StructuredGnetAdapter) Fatalf(format string, args ...any) {
	a.logFields(devlog.SeverityAssert, format, args)
	_ = a.logger.Flush(fatalFlushTimeout)

	if a.fatalHandler != nil {
		a.fatalHandler(fmt.Sprintf(format, args...))
	}
}
