// FILE: lixenwraith/devlog/utility_test.go
package devlog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		input    string
		expected Severity
		wantErr  bool
	}{
		{"verbose", SeverityVerbose, false},
		{"trace", SeverityVerbose, false},
		{"v", SeverityVerbose, false},
		{"debug", SeverityDebug, false},
		{"DEBUG", SeverityDebug, false},
		{" info ", SeverityInfo, false},
		{"warn", SeverityWarn, false},
		{"warning", SeverityWarn, false},
		{"error", SeverityError, false},
		{"assert", SeverityAssert, false},
		{"wtf", SeverityAssert, false},
		{"invalid", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			sev, err := ParseSeverity(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, sev)
			}
		})
	}
}

func TestSeverityText(t *testing.T) {
	for sev := SeverityVerbose; sev <= SeverityAssert; sev++ {
		text, err := sev.MarshalText()
		assert.NoError(t, err)

		var back Severity
		assert.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, sev, back)
		assert.Len(t, sev.Letter(), 1)
	}

	assert.Equal(t, "I", SeverityInfo.Letter())
	assert.Equal(t, "A", SeverityAssert.Letter())
	assert.Equal(t, "WARN", SeverityWarn.String())
	assert.Equal(t, "SEVERITY(9)", Severity(9).String())
	assert.False(t, Severity(9).Valid())

	_, err := Severity(-1).MarshalText()
	assert.Error(t, err)
}

func TestParseKeyValue(t *testing.T) {
	tests := []struct {
		input     string
		wantKey   string
		wantValue string
		wantErr   bool
	}{
		{"key=value", "key", "value", false},
		{" key = value ", "key", "value", false},
		{"key=value=with=equals", "key", "value=with=equals", false},
		{"noequals", "", "", true},
		{"=value", "", "", true},
		{"key=", "key", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			key, value, err := parseKeyValue(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantKey, key)
				assert.Equal(t, tt.wantValue, value)
			}
		})
	}
}

func TestFmtErrorf(t *testing.T) {
	err := fmtErrorf("test error: %s", "details")
	assert.Error(t, err)
	assert.Equal(t, "devlog: test error: details", err.Error())

	// Already prefixed
	err = fmtErrorf("devlog: already prefixed")
	assert.Equal(t, "devlog: already prefixed", err.Error())

	// Wrapping keeps the cause reachable
	cause := errors.New("cause")
	assert.ErrorIs(t, fmtErrorf("wrapped: %w", cause), cause)
}

func TestCombineErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	assert.Nil(t, combineErrors(nil, nil))
	assert.Equal(t, err1, combineErrors(err1, nil))
	assert.Equal(t, err2, combineErrors(nil, err2))

	combined := combineErrors(err1, err2)
	assert.Equal(t, "first; second", combined.Error())
	assert.ErrorIs(t, combined, err2)
}

func TestSimplifyFunction(t *testing.T) {
	tests := []struct {
		full     string
		wantType string
		wantFn   string
	}{
		{"github.com/app/server.(*Server).Handle", "Server", "Handle"},
		{"github.com/app/server.(*Server).Handle.func1", "Server", "Handle"},
		{"github.com/app/server.Server.Close", "Server", "Close"},
		{"github.com/app/server.(*Cache[...]).Get", "Cache", "Get"},
		{"main.run", "main", "run"},
		{"main.run.func2.1", "main", "run"},
		{"main.main.gowrap1", "main", "main"},
		{"main.(*Worker).loop.deferwrap2", "Worker", "loop"},
		{"nodot", "nodot", "nodot"},
		{"gopkg.in/yaml%2ev3.Unmarshal", "yaml.v3", "Unmarshal"},
		{"gopkg.in/yaml%2ev3.(*decoder).unmarshal", "decoder", "unmarshal"},
		{"gopkg.in/yaml.v3.Unmarshal", "yaml.v3", "Unmarshal"},
		{"gopkg.in/yaml.v3.(*parser).parse.func1", "parser", "parse"},
	}

	for _, tt := range tests {
		t.Run(tt.full, func(t *testing.T) {
			typ, fn := simplifyFunction(tt.full)
			assert.Equal(t, tt.wantType, typ)
			assert.Equal(t, tt.wantFn, fn)
		})
	}
}

func TestResolveTag(t *testing.T) {
	loc := callerLocation{Type: "Server", Function: "Handle", File: "server.go", Line: 42, OK: true}

	tests := []struct {
		name      string
		globalTag string
		tag       string
		loc       callerLocation
		callerTag bool
		want      string
	}{
		{"caller type", "", "", loc, false, "Server"},
		{"explicit", "", "Net", loc, false, "Net"},
		{"blank explicit", "", "  ", loc, false, "Server"},
		{"global wins", "Global", "Net", loc, false, "Global"},
		{"no caller", "", "", callerLocation{}, false, fallbackTag},
		{"caller tag", "", "Net", loc, true, "[Net at Handle(server.go:42)]"},
		{"caller tag without location", "", "Net", callerLocation{}, true, "Net"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.GlobalTag = tt.globalTag
			cfg.CallerTag = tt.callerTag
			assert.Equal(t, tt.want, resolveTag(cfg, tt.tag, tt.loc))
		})
	}
}

func TestGoroutineID(t *testing.T) {
	id := goroutineID()
	assert.NotZero(t, id)

	other := make(chan uint64)
	go func() { other <- goroutineID() }()
	assert.NotEqual(t, id, <-other)
}
