// FILE: lixenwraith/devlog/builder_test.go
package devlog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Build(t *testing.T) {
	t.Run("successful build returns configured logger", func(t *testing.T) {
		tmpDir := t.TempDir()
		sink := &captureSink{}

		logger, err := NewBuilder().
			Directory(tmpDir).
			ConsoleSink(sink).
			LogSwitch(true).
			Log2FileSwitch(true).
			EncryptSwitch(true).
			EncryptionKey("0123456789abcdef").
			GlobalTag("App").
			LogHeadSwitch(false).
			BorderSwitch(false).
			LogFilter(SeverityInfo).
			CallerTag(true).
			MaxSegmentLength(256).
			BufferSize(2048).
			RetentionDays(7).
			Build()

		if logger != nil {
			defer logger.Shutdown()
		}

		require.NoError(t, err, "Builder.Build() should not return an error on valid config")
		require.NotNil(t, logger, "Builder.Build() should return a non-nil logger")

		cfg := logger.GetConfig()
		assert.Equal(t, tmpDir, cfg.Directory)
		assert.True(t, cfg.Enabled)
		assert.True(t, cfg.FileEnabled)
		assert.True(t, cfg.EncryptEnabled)
		assert.Equal(t, "0123456789abcdef", cfg.EncryptionKey)
		assert.Equal(t, "App", cfg.GlobalTag)
		assert.False(t, cfg.HeadEnabled)
		assert.False(t, cfg.BorderEnabled)
		assert.Equal(t, SeverityInfo, cfg.Level)
		assert.True(t, cfg.CallerTag)
		assert.Equal(t, int64(256), cfg.MaxSegmentLength)
		assert.Equal(t, int64(2048), cfg.BufferSize)
		assert.Equal(t, int64(7), cfg.RetentionDays)
		assert.Equal(t, 2048, cap(logger.getCurrentLogChannel()))

		logger.Info("through the custom sink")
		require.Len(t, sink.Lines(), 1)
	})

	t.Run("invalid configuration fails build", func(t *testing.T) {
		logger, err := NewBuilder().
			Directory(t.TempDir()).
			EncryptionKey("too-short").
			Build()

		require.Error(t, err)
		assert.Nil(t, logger)
		assert.Contains(t, err.Error(), "invalid encryption_key")
	})

	t.Run("empty directory fails build", func(t *testing.T) {
		logger, err := NewBuilder().Directory("").Build()
		require.Error(t, err)
		assert.Nil(t, logger)
	})
}

func TestBuilder_LogFilterString(t *testing.T) {
	t.Run("known names", func(t *testing.T) {
		for name, want := range map[string]Severity{
			"verbose": SeverityVerbose,
			"DEBUG":   SeverityDebug,
			"i":       SeverityInfo,
			"warning": SeverityWarn,
			"error":   SeverityError,
			"wtf":     SeverityAssert,
		} {
			b := NewBuilder().LogFilterString(name)
			assert.Equal(t, want, b.cfg.Level, name)
		}
	})

	t.Run("unknown name keeps previous filter and reports", func(t *testing.T) {
		sink := &captureSink{}
		logger, err := NewBuilder().
			Directory(t.TempDir()).
			ConsoleSink(sink).
			LogFilterString("warn").
			LogFilterString("loudest").
			Build()
		require.NoError(t, err)
		defer logger.Shutdown()

		assert.Equal(t, SeverityWarn, logger.GetConfig().Level)

		lines := sink.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, internalTag, lines[0].tag)
		assert.Contains(t, lines[0].msg, "loudest")
	})

	t.Run("out of range severity is ignored", func(t *testing.T) {
		b := NewBuilder().LogFilter(SeverityError).LogFilter(Severity(9))
		assert.Equal(t, SeverityError, b.cfg.Level)
		require.Len(t, b.notes, 1)
	})
}

func TestBuilder_TargetsExistingLogger(t *testing.T) {
	logger, sink, tmpDir := createTestLogger(t)

	built, err := logger.Builder().GlobalTag("Again").Build()
	require.NoError(t, err)
	assert.Same(t, logger, built)
	assert.Equal(t, "Again", logger.GetConfig().GlobalTag)
	assert.Equal(t, tmpDir, logger.GetConfig().Directory)

	// Custom sink survives a rebuild without one
	logger.Info("still captured")
	assert.NotEmpty(t, sink.Lines())

	t.Run("failed build changes nothing", func(t *testing.T) {
		_, err := logger.Builder().
			GlobalTag("Lost").
			Directory(filepath.Join(tmpDir, "other")).
			BufferSize(0).
			Build()
		require.Error(t, err)

		cfg := logger.GetConfig()
		assert.Equal(t, "Again", cfg.GlobalTag)
		assert.Equal(t, tmpDir, cfg.Directory)
	})
}

func TestBuilder_CustomEncrypter(t *testing.T) {
	logger, _, _ := createTestLogger(t)

	_, err := logger.Builder().EncryptSwitch(true).Encrypter(failingEncrypter{}).Build()
	require.NoError(t, err)

	out := logger.outputs.Load()
	require.NotNil(t, out)
	assert.IsType(t, failingEncrypter{}, out.encrypter)

	// Switching encryption off clears the active encrypter
	_, err = logger.Builder().EncryptSwitch(false).Build()
	require.NoError(t, err)
	assert.Nil(t, logger.outputs.Load().encrypter)
}
