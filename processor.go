// FILE: lixenwraith/devlog/processor.go
package devlog

import (
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// dayWriter is the open day file. One lumberjack instance serves every day
// file and every processor of a Logger; its mill goroutine starts on the
// first open and lives as long as the instance.
type dayWriter struct {
	path string
	out  *lumberjack.Logger
}

// processLogs is the file processor loop running in its own goroutine.
// Entries are appended in queue order.
func (l *Logger) processLogs(ch <-chan fileRecord, done chan<- struct{}) {
	defer close(done)
	defer l.closeDayFile()

	timers := l.setupProcessingTimers()
	defer l.closeProcessingTimers(timers)

	// Initial retention pass
	l.handleRetentionCheck()

	// --- Main Loop ---
	for {
		select {
		case record, ok := <-ch:
			if !ok {
				// Channel closed and drained
				return
			}
			l.processLogRecord(record)

		case confirmChan := <-l.state.flushRequestChan:
			open := l.drainPending(ch)
			close(confirmChan) // Signal completion back to the Flush caller
			if !open {
				return
			}

		case <-timers.retentionChan:
			l.handleRetentionCheck()
		}
	}
}

// drainPending writes every record already queued, reporting whether ch is still open
func (l *Logger) drainPending(ch <-chan fileRecord) bool {
	for {
		select {
		case record, ok := <-ch:
			if !ok {
				return false
			}
			l.processLogRecord(record)
		default:
			return true
		}
	}
}

// processLogRecord appends one record, switching day files when the path changes.
// Failures are reported to the console only; the processor keeps running.
func (l *Logger) processLogRecord(record fileRecord) {
	l.fileMu.Lock()
	defer l.fileMu.Unlock()

	w := &l.dayFile
	c := l.getConfig()
	if record.path != w.path {
		l.closeWriter(w)

		if err := ensureFile(record.path); err != nil {
			l.state.WriteErrors.Inc()
			l.internalLog("failed to prepare log file '%s': %v", record.path, err)
			return
		}

		if w.out == nil {
			// Backups are pruned by pruneRolledParts, so the mill never reads
			// fields that change after the first open
			w.out = &lumberjack.Logger{LocalTime: true}
		}
		w.out.Filename = record.path
		w.out.MaxSize = int(c.MaxFileSizeMB)
		w.path = record.path
		l.state.CurrentPath.Store(record.path)
		l.state.FilesOpened.Inc()

		if c.MaxBackups > 0 {
			if _, err := l.pruneRolledParts(); err != nil {
				l.internalLog("failed to prune rolled log files: %v", err)
			}
		}
	}

	var err error
	if int64(len(record.data)) > fileSizeLimit(c) {
		err = l.appendOversized(w, record.data)
	} else {
		_, err = w.out.Write(record.data)
	}
	if err != nil {
		l.state.WriteErrors.Inc()
		l.internalLog("failed to write to log file '%s': %v", w.path, err)
		// Reopen on the next record
		l.closeWriter(w)
		return
	}
	l.state.FileEntries.Inc()
}

// appendOversized writes an entry larger than the size cap straight to the
// day file. lumberjack rolls the file over on its next write.
func (l *Logger) appendOversized(w *dayWriter, data []byte) error {
	if err := w.out.Close(); err != nil {
		return err
	}
	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// fileSizeLimit is the byte size lumberjack enforces for one write
func fileSizeLimit(c *Config) int64 {
	if c.MaxFileSizeMB <= 0 {
		return lumberjackDefaultMaxMB * megabyte
	}
	return c.MaxFileSizeMB * megabyte
}

// closeDayFile closes the day file when a processor exits
func (l *Logger) closeDayFile() {
	l.fileMu.Lock()
	defer l.fileMu.Unlock()
	l.closeWriter(&l.dayFile)
}

// closeWriter closes the open day file, if any. Assumes fileMu is held.
func (l *Logger) closeWriter(w *dayWriter) {
	if w.path == "" {
		return
	}
	if err := w.out.Close(); err != nil {
		l.internalLog("failed to close log file '%s': %v", w.path, err)
	}
	w.path = ""
}

// handleRetentionCheck deletes day files older than the retention window
// and rolled parts beyond max_backups
func (l *Logger) handleRetentionCheck() {
	c := l.getConfig()
	if c.RetentionDays > 0 {
		if _, err := l.cleanExpiredLogs(l.now()); err != nil {
			l.internalLog("failed to clean expired logs: %v", err)
		}
	}
	if c.MaxBackups > 0 {
		if _, err := l.pruneRolledParts(); err != nil {
			l.internalLog("failed to prune rolled log files: %v", err)
		}
	}
}
