// FILE: lixenwraith/devlog/builder.go
package devlog

// Builder provides a fluent API for configuring a logger.
// It wraps a Config instance and provides chainable methods for setting values;
// nothing takes effect until Build.
type Builder struct {
	logger    *Logger // Target of Build, nil creates a new logger
	cfg       *Config
	console   ConsoleSink
	encrypter Encrypter
	notes     []string // Diagnostics reported through the built logger
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build validates the accumulated configuration and applies it in one step.
// On error no setting changes.
func (b *Builder) Build() (*Logger, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}

	logger := b.logger
	if logger == nil {
		logger = NewLogger()
	}

	if err := logger.applyBuilt(b.cfg.Clone(), b.console, b.encrypter); err != nil {
		if b.logger == nil {
			_ = logger.Shutdown()
		}
		return nil, err
	}

	for _, note := range b.notes {
		logger.internalLog("%s", note)
	}
	return logger, nil
}

// applyBuilt installs caller supplied sinks together with cfg
func (l *Logger) applyBuilt(cfg *Config, console ConsoleSink, encrypter Encrypter) error {
	l.initMu.Lock()
	defer l.initMu.Unlock()

	prevConsole, prevEncrypter := l.customConsole, l.customEncrypter
	if console != nil {
		l.customConsole = console
	}
	if encrypter != nil {
		l.customEncrypter = encrypter
	}

	if err := l.applyConfig(cfg); err != nil {
		// Rollback
		l.customConsole, l.customEncrypter = prevConsole, prevEncrypter
		return err
	}
	return nil
}

// LogSwitch sets the master switch.
func (b *Builder) LogSwitch(enabled bool) *Builder {
	b.cfg.Enabled = enabled
	return b
}

// EncryptSwitch enables encryption of file entries.
func (b *Builder) EncryptSwitch(enabled bool) *Builder {
	b.cfg.EncryptEnabled = enabled
	return b
}

// GlobalTag sets a tag that overrides every per-call tag. Blank clears it.
func (b *Builder) GlobalTag(tag string) *Builder {
	b.cfg.GlobalTag = tag
	return b
}

// LogHeadSwitch toggles the thread/caller header line.
func (b *Builder) LogHeadSwitch(enabled bool) *Builder {
	b.cfg.HeadEnabled = enabled
	return b
}

// Log2FileSwitch toggles mirroring severity calls to the day file.
func (b *Builder) Log2FileSwitch(enabled bool) *Builder {
	b.cfg.FileEnabled = enabled
	return b
}

// BorderSwitch toggles box drawing around entries.
func (b *Builder) BorderSwitch(enabled bool) *Builder {
	b.cfg.BorderEnabled = enabled
	return b
}

// LogFilter sets the minimum console severity.
func (b *Builder) LogFilter(sev Severity) *Builder {
	if !sev.Valid() {
		b.notes = append(b.notes, "ignoring invalid log filter "+sev.String())
		return b
	}
	b.cfg.Level = sev
	return b
}

// LogFilterString sets the minimum console severity by name.
// Unknown names keep the previous filter.
func (b *Builder) LogFilterString(level string) *Builder {
	sev, err := ParseSeverity(level)
	if err != nil {
		b.notes = append(b.notes, "ignoring log filter: "+err.Error())
		return b
	}
	b.cfg.Level = sev
	return b
}

// Directory sets the day file directory.
func (b *Builder) Directory(dir string) *Builder {
	b.cfg.Directory = dir
	return b
}

// CallerTag toggles "[tag at fn(file:line)]" tags.
func (b *Builder) CallerTag(enabled bool) *Builder {
	b.cfg.CallerTag = enabled
	return b
}

// MaxSegmentLength sets the console segment size in bytes.
func (b *Builder) MaxSegmentLength(n int64) *Builder {
	b.cfg.MaxSegmentLength = n
	return b
}

// EncryptionKey sets the AES key used when no custom encrypter is supplied.
func (b *Builder) EncryptionKey(key string) *Builder {
	b.cfg.EncryptionKey = key
	return b
}

// Encrypter supplies a custom encrypter for file entries.
func (b *Builder) Encrypter(enc Encrypter) *Builder {
	b.encrypter = enc
	return b
}

// ConsoleSink supplies a custom console sink.
func (b *Builder) ConsoleSink(sink ConsoleSink) *Builder {
	b.console = sink
	return b
}

// BufferSize sets the file queue capacity.
func (b *Builder) BufferSize(size int64) *Builder {
	b.cfg.BufferSize = size
	return b
}

// RetentionDays sets how many day files are kept, 0 keeps all.
func (b *Builder) RetentionDays(days int64) *Builder {
	b.cfg.RetentionDays = days
	return b
}

// Example usage:
// logger, err := devlog.NewBuilder().
//
//	Directory("/var/log/app").
//	LogFilterString("debug").
//	Log2FileSwitch(true).
//	GlobalTag("App").
//	Build()
//
// if err == nil {
//
//	 defer logger.Shutdown()
//	 logger.Info("Logger initialized successfully")
//
// }
