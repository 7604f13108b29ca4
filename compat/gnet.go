// FILE: lixenwraith/devlog/compat/gnet.go
package compat

import (
	"fmt"
	"os"
	"time"

	"github.com/panjf2000/gnet/v2/pkg/logging"

	"github.com/lixenwraith/devlog"
)

var _ logging.Logger = (*GnetAdapter)(nil)

// fatalFlushTimeout bounds the flush before the fatal handler runs
const fatalFlushTimeout = 100 * time.Millisecond

// GnetAdapter routes gnet engine logs through a devlog.Logger
type GnetAdapter struct {
	logger       *devlog.Logger
	tag          string
	fatalHandler func(msg string) // Customizable fatal behavior
}

// NewGnetAdapter creates a new gnet-compatible logger adapter
func NewGnetAdapter(logger *devlog.Logger, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		logger: logger,
		tag:    "gnet",
		fatalHandler: func(msg string) {
			os.Exit(1) // gnet expects Fatalf not to return
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// WithGnetTag replaces the "gnet" tag
func WithGnetTag(tag string) GnetOption {
	return func(a *GnetAdapter) {
		a.tag = tag
	}
}

// Debugf logs at debug severity with printf-style formatting
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.logger.Log(devlog.SeverityDebug, a.tag, nil, fmt.Sprintf(format, args...))
}

// Infof logs at info severity with printf-style formatting
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.logger.Log(devlog.SeverityInfo, a.tag, nil, fmt.Sprintf(format, args...))
}

// Warnf logs at warn severity with printf-style formatting
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.logger.Log(devlog.SeverityWarn, a.tag, nil, fmt.Sprintf(format, args...))
}

// Errorf logs at error severity with printf-style formatting
func (a *GnetAdapter) Errorf(format string, args ...any) {
	a.logger.Log(devlog.SeverityError, a.tag, nil, fmt.Sprintf(format, args...))
}

// Fatalf logs at assert severity and triggers the fatal handler
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.logger.Log(devlog.SeverityAssert, a.tag, nil, msg)

	// Ensure the day file has the entry before exit
	_ = a.logger.Flush(fatalFlushTimeout)

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}
