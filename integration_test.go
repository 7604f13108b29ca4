// FILE: lixenwraith/devlog/integration_test.go
package devlog

import (
	"errors"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/devlog/crypt"
)

// TestPackageLevelAPI drives the default logger end to end. It is the only
// test touching the default logger, so it runs without t.Parallel.
func TestPackageLevelAPI(t *testing.T) {
	tmpDir := t.TempDir()
	sink := &captureSink{}

	logger, err := Configure().
		Directory(tmpDir).
		ConsoleSink(sink).
		LogHeadSwitch(false).
		BorderSwitch(false).
		Log2FileSwitch(true).
		Build()
	require.NoError(t, err)
	require.Same(t, Default(), logger)
	defer func() {
		assert.NoError(t, Shutdown(2*time.Second))
	}()

	Verbose("v")
	Debug("d")
	Info("i")
	Warn("w")
	Error("e")
	Assert("a")
	File("f")
	JSON(`{"k":"v"}`)
	XML(`<k>v</k>`)
	Log(SeverityInfo, "Explicit", errors.New("boom"), "generic")
	Tag("Tagged").Info("tagged")
	WithError(errors.New("cause")).Tag("Failing").Error("with error")

	lines := sink.Lines()
	require.Len(t, lines, 11)
	assert.Equal(t, "v", lines[0].msg)
	assert.Equal(t, SeverityAssert, lines[5].sev)
	assert.Equal(t, "devlog", lines[0].tag)
	assert.Equal(t, "{\n    \"k\": \"v\"\n}", lines[6].msg)
	assert.Equal(t, "Explicit", lines[8].tag)
	assert.Equal(t, "generic\nboom", lines[8].msg)
	assert.Equal(t, "Tagged", lines[9].tag)
	assert.Equal(t, "Failing", lines[10].tag)
	assert.Equal(t, "with error\ncause", lines[10].msg)

	require.NoError(t, Flush(time.Second))
	data, err := os.ReadFile(dayFilePath(GetConfig(), logger.now()))
	require.NoError(t, err)
	entries := splitEntries(string(data))
	assert.Len(t, entries, 12)
	assert.Contains(t, entries[6], " F/devlog\nf")

	stats := GetStats()
	assert.Equal(t, uint64(11), stats.ConsoleEntries)
	assert.Equal(t, uint64(12), stats.FileEntries)

	t.Run("init and overrides", func(t *testing.T) {
		require.NoError(t, Init(true, false, SeverityError, "Pkg"))
		require.NoError(t, ApplyOverride("caller_tag=false"))

		sink.Reset()
		Warn("hidden")
		Error("shown")
		require.Len(t, sink.Lines(), 1)
		assert.Equal(t, "Pkg", sink.Lines()[0].tag)

		cfg := GetConfig()
		cfg.GlobalTag = ""
		cfg.Level = SeverityVerbose
		require.NoError(t, ApplyConfig(cfg))
	})

	t.Run("zero and nil entries", func(t *testing.T) {
		sink.Reset()
		var zero Entry
		var missing *Entry
		assert.NotPanics(t, func() {
			zero.Info("zero")
			missing.Tag("Nil").Warn("nil")
			missing.Error("bare")
		})

		lines := sink.Lines()
		require.Len(t, lines, 3)
		assert.Equal(t, "zero", lines[0].msg)
		assert.Equal(t, "Nil", lines[1].tag)
		assert.Equal(t, "nil", lines[1].msg)
		assert.Equal(t, SeverityError, lines[2].sev)
	})

	t.Run("save config", func(t *testing.T) {
		path := tmpDir + "/saved.toml"
		require.NoError(t, SaveConfig(path))
		assert.FileExists(t, path)
	})
}

// TestEncryptedRoundTrip writes from several goroutines and reads the file back
func TestEncryptedRoundTrip(t *testing.T) {
	logger, _, _ := createTestLogger(t)
	key := "fedcba9876543210"
	_, err := logger.Builder().
		Log2FileSwitch(true).
		EncryptSwitch(true).
		EncryptionKey(key).
		Build()
	require.NoError(t, err)

	const goroutines = 4
	const perGoroutine = 25

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				logger.Tag("Round").Info("secret payload", i)
			}
		}()
	}
	wg.Wait()
	require.NoError(t, logger.Flush(time.Second))

	path := dayFilePath(logger.GetConfig(), logger.now())
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret payload")

	aes, err := crypt.NewAES([]byte(key))
	require.NoError(t, err)
	entries, err := ReadEntries(path, aes)
	require.NoError(t, err)
	require.Len(t, entries, goroutines*perGoroutine)
	for _, entry := range entries {
		assert.True(t, strings.HasPrefix(entry, TopBorder+"\n"), entry)
		assert.True(t, strings.HasSuffix(entry, BottomBorder+"\n\n"), entry)
		assert.Contains(t, entry, "I/Round")
		assert.Contains(t, entry, "secret payload")
	}
}
