// FILE: lixenwraith/devlog/console.go
package devlog

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/devlog/formatter"
)

// ConsoleSink receives every console line the logger emits, in order.
// Implementations must be safe for concurrent use.
type ConsoleSink interface {
	Print(sev Severity, tag, msg string)
}

// tagFieldName is the zerolog field carrying the resolved tag
const tagFieldName = "tag"

// zerologSink writes console lines through a zerolog ConsoleWriter
type zerologSink struct {
	logger zerolog.Logger
}

// NewZerologSink returns the default console sink writing human readable lines to w
func NewZerologSink(w io.Writer, noColor bool) ConsoleSink {
	cw := zerolog.ConsoleWriter{
		Out:           w,
		NoColor:       noColor,
		TimeFormat:    "15:04:05.000",
		PartsOrder:    []string{zerolog.TimestampFieldName, zerolog.LevelFieldName, tagFieldName, zerolog.MessageFieldName},
		FieldsExclude: []string{tagFieldName},
	}
	logger := zerolog.New(cw).Level(zerolog.TraceLevel).With().Timestamp().Logger()
	return &zerologSink{logger: logger}
}

// Print emits one line at the zerolog level matching sev
func (s *zerologSink) Print(sev Severity, tag, msg string) {
	s.logger.WithLevel(zerologLevel(sev)).Str(tagFieldName, tag).Msg(msg)
}

// zerologLevel maps severities onto zerolog levels; Assert uses the fatal
// level through WithLevel, which does not exit the process
func zerologLevel(sev Severity) zerolog.Level {
	switch sev {
	case SeverityVerbose:
		return zerolog.TraceLevel
	case SeverityDebug:
		return zerolog.DebugLevel
	case SeverityInfo:
		return zerolog.InfoLevel
	case SeverityWarn:
		return zerolog.WarnLevel
	case SeverityError:
		return zerolog.ErrorLevel
	case SeverityAssert:
		return zerolog.FatalLevel
	default:
		return zerolog.NoLevel
	}
}

// emitConsole prints one composed message: top border, chunks, bottom border
func (l *Logger) emitConsole(cfg *Config, out *outputs, sev Severity, tag, msg string) {
	wrapPrefix := ""
	if cfg.BorderEnabled {
		wrapPrefix = LeftBorder
	}
	segments := formatter.Chunk(formatter.Decorate(msg, cfg.BorderEnabled), int(cfg.MaxSegmentLength), wrapPrefix)

	l.consoleMu.Lock()
	defer l.consoleMu.Unlock()

	if cfg.BorderEnabled {
		out.console.Print(sev, tag, TopBorder)
	}
	for _, seg := range segments {
		out.console.Print(sev, tag, seg)
	}
	if cfg.BorderEnabled {
		out.console.Print(sev, tag, BottomBorder)
	}
	l.state.ConsoleEntries.Inc()
}
