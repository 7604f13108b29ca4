// FILE: lixenwraith/devlog/interface.go
package devlog

// Encrypter turns a composed file entry into a single line of text and back.
// Ciphertext must not contain newlines.
type Encrypter interface {
	Encrypt(plain string) (string, error)
	Decrypt(cipher string) (string, error)
}

// Entry carries a per-call tag and error into a log call
type Entry struct {
	logger *Logger
	tag    string
	err    error
}

// Logger instance methods for logging at different severities.
// Each one calls log directly, see callerSkip.

// Verbose logs a message at verbose severity
func (l *Logger) Verbose(args ...any) {
	l.log(kindPlain, SeverityVerbose, "", nil, args)
}

// Debug logs a message at debug severity
func (l *Logger) Debug(args ...any) {
	l.log(kindPlain, SeverityDebug, "", nil, args)
}

// Info logs a message at info severity
func (l *Logger) Info(args ...any) {
	l.log(kindPlain, SeverityInfo, "", nil, args)
}

// Warn logs a message at warn severity
func (l *Logger) Warn(args ...any) {
	l.log(kindPlain, SeverityWarn, "", nil, args)
}

// Error logs a message at error severity
func (l *Logger) Error(args ...any) {
	l.log(kindPlain, SeverityError, "", nil, args)
}

// Assert logs a message at assert severity. It never terminates the process.
func (l *Logger) Assert(args ...any) {
	l.log(kindPlain, SeverityAssert, "", nil, args)
}

// File writes a message to the day file only, whatever file_enabled says
func (l *Logger) File(args ...any) {
	l.log(kindFile, SeverityVerbose, "", nil, args)
}

// JSON pretty-prints a JSON document at debug severity
func (l *Logger) JSON(s string) {
	l.log(kindJSON, SeverityDebug, "", nil, []any{s})
}

// XML pretty-prints an XML document at debug severity
func (l *Logger) XML(s string) {
	l.log(kindXML, SeverityDebug, "", nil, []any{s})
}

// Log is the generic entry point taking every parameter explicitly
func (l *Logger) Log(sev Severity, tag string, err error, args ...any) {
	l.log(kindPlain, sev, tag, err, args)
}

// Tag starts an entry with a per-call tag
func (l *Logger) Tag(tag string) *Entry {
	return &Entry{logger: l, tag: tag}
}

// WithError starts an entry carrying err
func (l *Logger) WithError(err error) *Entry {
	return &Entry{logger: l, err: err}
}

// target resolves the logger an entry writes to; a zero or nil Entry uses the default logger
func (e *Entry) target() (*Logger, string, error) {
	if e == nil {
		return defaultLogger, "", nil
	}
	if e.logger == nil {
		return defaultLogger, e.tag, e.err
	}
	return e.logger, e.tag, e.err
}

// Tag returns a copy of the entry with tag set
func (e *Entry) Tag(tag string) *Entry {
	next := Entry{}
	if e != nil {
		next = *e
	}
	next.tag = tag
	return &next
}

// WithError returns a copy of the entry carrying err
func (e *Entry) WithError(err error) *Entry {
	next := Entry{}
	if e != nil {
		next = *e
	}
	next.err = err
	return &next
}

func (e *Entry) Verbose(args ...any) {
	l, tag, err := e.target()
	l.log(kindPlain, SeverityVerbose, tag, err, args)
}

func (e *Entry) Debug(args ...any) {
	l, tag, err := e.target()
	l.log(kindPlain, SeverityDebug, tag, err, args)
}

func (e *Entry) Info(args ...any) {
	l, tag, err := e.target()
	l.log(kindPlain, SeverityInfo, tag, err, args)
}

func (e *Entry) Warn(args ...any) {
	l, tag, err := e.target()
	l.log(kindPlain, SeverityWarn, tag, err, args)
}

func (e *Entry) Error(args ...any) {
	l, tag, err := e.target()
	l.log(kindPlain, SeverityError, tag, err, args)
}

func (e *Entry) Assert(args ...any) {
	l, tag, err := e.target()
	l.log(kindPlain, SeverityAssert, tag, err, args)
}

func (e *Entry) File(args ...any) {
	l, tag, err := e.target()
	l.log(kindFile, SeverityVerbose, tag, err, args)
}

func (e *Entry) JSON(s string) {
	l, tag, err := e.target()
	l.log(kindJSON, SeverityDebug, tag, err, []any{s})
}

func (e *Entry) XML(s string) {
	l, tag, err := e.target()
	l.log(kindXML, SeverityDebug, tag, err, []any{s})
}
