// FILE: lixenwraith/devlog/state.go
package devlog

import (
	"sync"
	"time"

	"go.uber.org/atomic"
)

// State encapsulates the runtime state of the logger
type State struct {
	ShutdownCalled atomic.Bool

	flushRequestChan chan chan struct{} // Channel to request a flush
	flushMutex       sync.Mutex         // Protect concurrent Flush calls

	// Senders hold the read side while enqueueing, channel swaps take the write side
	sendMu           sync.RWMutex
	ActiveLogChannel atomic.Value // stores chan fileRecord, nil after shutdown

	CurrentPath     atomic.String // Day file the processor is appending to
	LoggerStartTime atomic.Time

	// Statistics
	ConsoleEntries  atomic.Uint64 // Entries emitted to the console sink
	FileEntries     atomic.Uint64 // Entries appended to day files
	DroppedEntries  atomic.Uint64 // File entries refused after shutdown
	EncryptFailures atomic.Uint64 // File entries skipped because encryption failed
	WriteErrors     atomic.Uint64 // File entries lost to I/O errors
	FilesOpened     atomic.Uint64 // Day file writers opened
	TotalDeletions  atomic.Uint64 // Day files and rolled parts removed
}

// Stats is a point-in-time copy of the logger counters
type Stats struct {
	ConsoleEntries  uint64
	FileEntries     uint64
	DroppedEntries  uint64
	EncryptFailures uint64
	WriteErrors     uint64
	FilesOpened     uint64
	FilesDeleted    uint64
	QueueLength     int
	CurrentFile     string
	Uptime          time.Duration
}

// Stats returns a snapshot of the logger counters
func (l *Logger) Stats() Stats {
	s := &l.state
	queued := 0
	if ch := l.getCurrentLogChannel(); ch != nil {
		queued = len(ch)
	}
	return Stats{
		ConsoleEntries:  s.ConsoleEntries.Load(),
		FileEntries:     s.FileEntries.Load(),
		DroppedEntries:  s.DroppedEntries.Load(),
		EncryptFailures: s.EncryptFailures.Load(),
		WriteErrors:     s.WriteErrors.Load(),
		FilesOpened:     s.FilesOpened.Load(),
		FilesDeleted:    s.TotalDeletions.Load(),
		QueueLength:     queued,
		CurrentFile:     s.CurrentPath.Load(),
		Uptime:          time.Since(s.LoggerStartTime.Load()),
	}
}

// outputs pairs the sinks a configuration was applied with, swapped as one value
type outputs struct {
	console   ConsoleSink
	encrypter Encrypter // nil when encryption is off
}
