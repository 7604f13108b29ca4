// FILE: lixenwraith/devlog/record.go
package devlog

import (
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/devlog/formatter"
)

// log handles the core logging logic. Every public entry point calls it
// directly so the caller frame sits at a fixed depth.
func (l *Logger) log(kind int, sev Severity, tag string, err error, args []any) {
	cfg := l.getConfig()
	if !cfg.Enabled {
		return
	}

	toConsole := kind != kindFile && sev >= cfg.Level
	toFile := kind == kindFile || cfg.FileEnabled
	if !toConsole && !toFile {
		return
	}

	loc := captureCaller(callerSkip)
	tag = resolveTag(cfg, tag, loc)
	msg := composeMessage(cfg, kind, loc, err, args)
	out := l.outputs.Load()

	if toConsole {
		l.emitConsole(cfg, out, sev, tag, msg)
	}

	if toFile {
		marker := sev.Letter()
		if kind == kindFile {
			marker = fileMarker
		}
		l.enqueueFile(cfg, out, l.now(), marker, tag, msg)
	}
}

// composeMessage renders header, body and error text for one call
func composeMessage(cfg *Config, kind int, loc callerLocation, err error, args []any) string {
	var body string
	switch kind {
	case kindJSON, kindXML:
		s := ""
		if len(args) > 0 {
			s = formatter.Value(args[0])
		}
		if kind == kindJSON {
			body = formatter.PrettyJSON(s)
		} else {
			body = formatter.PrettyXML(s)
		}
	default:
		body = formatter.Body(args)
	}

	header := ""
	if cfg.HeadEnabled && loc.OK {
		header = formatter.Header(loc.Goroutine, loc.Function, loc.File, loc.Line)
	}
	return formatter.Compose(header, body, err)
}

// composeFileEntry lays out one day file entry, bordered or plain
func composeFileEntry(cfg *Config, ts time.Time, marker, tag, msg string) string {
	line := ts.Format(cfg.TimestampFormat) + " " + marker + "/" + tag

	var sb strings.Builder
	if cfg.BorderEnabled {
		sb.WriteString(TopBorder)
		sb.WriteByte('\n')
		sb.WriteString(LeftBorder)
		sb.WriteString(line)
		sb.WriteByte('\n')
		sb.WriteString(formatter.Decorate(msg, true))
		sb.WriteByte('\n')
		sb.WriteString(BottomBorder)
	} else {
		sb.WriteString(line)
		sb.WriteByte('\n')
		sb.WriteString(msg)
	}
	sb.WriteString("\n\n")
	return sb.String()
}

// enqueueFile composes, optionally encrypts and queues one file entry
func (l *Logger) enqueueFile(cfg *Config, out *outputs, ts time.Time, marker, tag, msg string) {
	entry := composeFileEntry(cfg, ts, marker, tag, msg)

	data := []byte(entry)
	if cfg.EncryptEnabled && out.encrypter != nil {
		enc, err := out.encrypter.Encrypt(entry)
		if err != nil {
			l.state.EncryptFailures.Inc()
			l.internalLog("failed to encrypt file entry, entry skipped: %v", err)
			return
		}
		data = []byte(enc + "\n")
	}

	l.sendRecord(fileRecord{path: dayFilePath(cfg, ts), data: data})
}

// sendRecord queues a record for the processor, blocking while the queue is full
func (l *Logger) sendRecord(record fileRecord) {
	l.state.sendMu.RLock()
	defer l.state.sendMu.RUnlock()

	ch := l.getCurrentLogChannel()
	if ch == nil || l.state.ShutdownCalled.Load() {
		l.state.DroppedEntries.Inc()
		return
	}
	ch <- record
}

// internalLog reports logger diagnostics through the console sink at ERROR.
// Nothing is printed while the master switch is off.
func (l *Logger) internalLog(format string, args ...any) {
	if !l.getConfig().Enabled {
		return
	}
	out := l.outputs.Load()
	if out == nil || out.console == nil {
		return
	}

	// Ensure consistent "devlog: " prefix
	if !strings.HasPrefix(format, "devlog: ") {
		format = "devlog: " + format
	}
	msg := strings.TrimSuffix(fmt.Sprintf(format, args...), "\n")

	l.consoleMu.Lock()
	defer l.consoleMu.Unlock()
	out.console.Print(SeverityError, internalTag, msg)
}
