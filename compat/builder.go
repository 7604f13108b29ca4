// FILE: lixenwraith/devlog/compat/builder.go
package compat

import (
	"fmt"

	"github.com/lixenwraith/devlog"
)

// Builder creates gnet and fasthttp adapters sharing one devlog.Logger.
// It can use an existing logger or create a new one from a *devlog.Config.
type Builder struct {
	logger *devlog.Logger
	logCfg *devlog.Config
	err    error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithLogger specifies an existing logger to use for the adapters.
// If this is set WithConfig is ignored.
func (b *Builder) WithLogger(l *devlog.Logger) *Builder {
	if l == nil {
		b.err = fmt.Errorf("devlog/compat: provided logger cannot be nil")
		return b
	}
	b.logger = l
	return b
}

// WithConfig provides a configuration for a new logger instance.
// Without WithLogger or WithConfig a logger with default settings is created.
func (b *Builder) WithConfig(cfg *devlog.Config) *Builder {
	b.logCfg = cfg
	return b
}

// getLogger resolves the logger to be used, creating one if necessary
func (b *Builder) getLogger() (*devlog.Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.logger != nil {
		return b.logger, nil
	}

	l := devlog.NewLogger()
	cfg := b.logCfg
	if cfg == nil {
		cfg = devlog.DefaultConfig()
	}

	if err := l.ApplyConfig(cfg); err != nil {
		_ = l.Shutdown()
		return nil, err
	}

	// Cache the newly created logger for subsequent builds with this builder
	b.logger = l
	return l, nil
}

// BuildGnet creates a gnet adapter
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(l, opts...), nil
}

// BuildStructuredGnet creates a gnet adapter that logs "key=%v" pairs as a field map
func (b *Builder) BuildStructuredGnet(opts ...GnetOption) (*StructuredGnetAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewStructuredGnetAdapter(l, opts...), nil
}

// BuildFastHTTP creates a fasthttp adapter
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(l, opts...), nil
}

// GetLogger returns the underlying logger, creating it if needed
func (b *Builder) GetLogger() (*devlog.Logger, error) {
	return b.getLogger()
}

// Example usage:
//
//	appLogger, err := devlog.NewBuilder().
//		Directory("/var/log/app").
//		Log2FileSwitch(true).
//		Build()
//	if err != nil { /* handle error */ }
//
//	builder := compat.NewBuilder().WithLogger(appLogger)
//	gnetLogger, _ := builder.BuildGnet()
//	fasthttpLogger, _ := builder.BuildFastHTTP()
//
//	go gnet.Run(events, "tcp://:9000", gnet.WithLogger(gnetLogger))
//
//	server := &fasthttp.Server{Handler: handler, Logger: fasthttpLogger}
//	go server.ListenAndServe(":8080")
