// FILE: lixenwraith/devlog/logger.go
package devlog

import (
	"io"
	"os"
	"sync"
	"time"

	"go.uber.org/atomic"

	"github.com/lixenwraith/devlog/crypt"
)

// clockFunc supplies the time used for timestamps and day file names
type clockFunc func() time.Time

// Logger is the core struct that encapsulates all logger functionality
type Logger struct {
	currentConfig atomic.Pointer[Config]
	outputs       atomic.Pointer[outputs]
	clock         atomic.Pointer[clockFunc]
	state         State

	initMu          sync.Mutex    // Serializes configuration writers
	procDone        chan struct{} // Closed when the current processor exits, guarded by initMu
	customConsole   ConsoleSink   // Caller supplied sinks survive later ApplyConfig calls
	customEncrypter Encrypter

	consoleMu sync.Mutex // Keeps the segments of one console entry together

	fileMu  sync.Mutex // Guards dayFile across processor generations
	dayFile dayWriter
}

// NewLogger creates a new Logger with default settings and a running file processor
func NewLogger() *Logger {
	l := &Logger{}

	cfg := DefaultConfig()
	l.currentConfig.Store(cfg)
	l.setClock(time.Now)

	l.state.LoggerStartTime.Store(time.Now())
	l.state.flushRequestChan = make(chan chan struct{}, 1)

	// Default configuration never enables encryption, building outputs cannot fail
	out, _ := l.buildOutputs(cfg)
	l.outputs.Store(out)

	l.initMu.Lock()
	_ = l.startProcessor(cfg.BufferSize, defaultStopTimeout)
	l.initMu.Unlock()

	return l
}

// ApplyConfig applies a validated configuration to the logger.
// On error the previous configuration stays active.
func (l *Logger) ApplyConfig(cfg *Config) error {
	if cfg == nil {
		return fmtErrorf("configuration cannot be nil")
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	l.initMu.Lock()
	defer l.initMu.Unlock()

	return l.applyConfig(cfg.Clone())
}

// Init is the one-shot setup of the four most used settings
func (l *Logger) Init(enabled, fileEnabled bool, filter Severity, tag string) error {
	cfg := l.GetConfig()
	cfg.Enabled = enabled
	cfg.FileEnabled = fileEnabled
	cfg.Level = filter
	cfg.GlobalTag = tag
	return l.ApplyConfig(cfg)
}

// GetConfig returns a copy of current configuration
func (l *Logger) GetConfig() *Config {
	return l.getConfig().Clone()
}

// Builder returns a builder seeded with the logger's current configuration.
// Build applies the result to this logger.
func (l *Logger) Builder() *Builder {
	return &Builder{logger: l, cfg: l.GetConfig()}
}

// Shutdown stops the file processor after it drains every queued entry.
// File entries logged afterwards are dropped until the logger is configured again.
func (l *Logger) Shutdown(timeout ...time.Duration) error {
	if !l.state.ShutdownCalled.CompareAndSwap(false, true) {
		return nil
	}

	effectiveTimeout := defaultStopTimeout
	if len(timeout) > 0 {
		effectiveTimeout = timeout[0]
	}

	l.initMu.Lock()
	defer l.initMu.Unlock()

	l.swapLogChannel(nil)
	done := l.procDone
	l.procDone = nil

	return waitProcessorExit(done, effectiveTimeout)
}

// Flush waits until every entry queued before the call is written to its day file
func (l *Logger) Flush(timeout time.Duration) error {
	l.state.flushMutex.Lock()
	defer l.state.flushMutex.Unlock()

	if l.state.ShutdownCalled.Load() {
		return fmtErrorf("logger already shut down")
	}

	// Create a channel to wait for confirmation from the processor
	confirmChan := make(chan struct{})

	select {
	case l.state.flushRequestChan <- confirmChan:
		// Request sent
	case <-time.After(timeout):
		return fmtErrorf("failed to send flush request to processor (possible deadlock or high load)")
	}

	select {
	case <-confirmChan:
		return nil
	case <-time.After(timeout):
		return fmtErrorf("timeout waiting for flush confirmation (%v)", timeout)
	}
}

// getConfig returns the current configuration (thread-safe)
func (l *Logger) getConfig() *Config {
	return l.currentConfig.Load()
}

// now reads the logger clock
func (l *Logger) now() time.Time {
	return (*l.clock.Load())()
}

// setClock replaces the logger clock
func (l *Logger) setClock(fn func() time.Time) {
	c := clockFunc(fn)
	l.clock.Store(&c)
}

// applyConfig is the internal implementation for applying configuration, assuming initMu is held
func (l *Logger) applyConfig(cfg *Config) error {
	out, err := l.buildOutputs(cfg)
	if err != nil {
		return err
	}

	oldCfg := l.getConfig()
	l.outputs.Store(out)
	l.currentConfig.Store(cfg)

	// Queue size is fixed per channel, a new size needs a new processor
	needsStart := l.procDone == nil || oldCfg.BufferSize != cfg.BufferSize
	if !needsStart {
		return nil
	}

	startErr := l.startProcessor(cfg.BufferSize, defaultStopTimeout)
	l.state.ShutdownCalled.Store(false)
	if startErr != nil {
		return fmtErrorf("failed to restart processor: %w", startErr)
	}
	return nil
}

// buildOutputs resolves the console sink and encrypter for cfg
func (l *Logger) buildOutputs(cfg *Config) (*outputs, error) {
	out := &outputs{console: l.customConsole}
	if out.console == nil {
		out.console = NewZerologSink(consoleWriter(cfg.ConsoleTarget), cfg.ConsoleNoColor)
	}

	if cfg.EncryptEnabled {
		out.encrypter = l.customEncrypter
		if out.encrypter == nil {
			key := cfg.EncryptionKey
			if key == "" {
				key = defaultEncryptionKey
			}
			aes, err := crypt.NewAES([]byte(key))
			if err != nil {
				return nil, fmtErrorf("failed to create encrypter: %w", err)
			}
			out.encrypter = aes
		}
	}

	return out, nil
}

// consoleWriter maps the console target name to its stream
func consoleWriter(target string) io.Writer {
	if target == "stdout" {
		return os.Stdout
	}
	return os.Stderr
}

// startProcessor installs a fresh queue and starts a processor draining it.
// A running processor first finishes its old queue. Assumes initMu is held.
func (l *Logger) startProcessor(bufferSize int64, timeout time.Duration) error {
	ch := make(chan fileRecord, bufferSize)
	l.swapLogChannel(ch)

	err := waitProcessorExit(l.procDone, timeout)
	if err != nil {
		l.internalLog("previous processor still running, starting a new one: %v", err)
	}

	done := make(chan struct{})
	l.procDone = done
	go l.processLogs(ch, done)

	return err
}

// swapLogChannel replaces the active queue and closes the old one.
// Holding the write lock guarantees no sender is mid-send on the old queue.
func (l *Logger) swapLogChannel(next chan fileRecord) {
	l.state.sendMu.Lock()
	defer l.state.sendMu.Unlock()

	if old := l.getCurrentLogChannel(); old != nil {
		close(old)
	}
	l.state.ActiveLogChannel.Store(next)
}

// getCurrentLogChannel safely retrieves the current log channel
func (l *Logger) getCurrentLogChannel() chan fileRecord {
	ch, _ := l.state.ActiveLogChannel.Load().(chan fileRecord)
	return ch
}

// waitProcessorExit blocks until done is closed or the timeout expires
func waitProcessorExit(done <-chan struct{}, timeout time.Duration) error {
	if done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return fmtErrorf("processor did not exit within timeout (%v)", timeout)
	}
}
