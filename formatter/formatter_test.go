// FILE: lixenwraith/devlog/formatter/formatter_test.go
package formatter

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y int
}

type namedValue string

func (n namedValue) String() string { return "named:" + string(n) }

func TestBody(t *testing.T) {
	t.Run("no content", func(t *testing.T) {
		assert.Equal(t, NoContent, Body(nil))
		assert.Equal(t, NoContent, Body([]any{}))
	})

	t.Run("single values", func(t *testing.T) {
		assert.Equal(t, Null, Body([]any{nil}))
		assert.Equal(t, "hello", Body([]any{"hello"}))
		assert.Equal(t, "42", Body([]any{42}))
		assert.Equal(t, "true", Body([]any{true}))
		assert.Equal(t, "1.5", Body([]any{1.5}))
		assert.Equal(t, "raw bytes", Body([]any{[]byte("raw bytes")}))
		assert.Equal(t, "boom", Body([]any{errors.New("boom")}))
		assert.Equal(t, "named:x", Body([]any{namedValue("x")}))
	})

	t.Run("typed nil pointer", func(t *testing.T) {
		var p *point
		assert.Equal(t, Null, Body([]any{p}))
	})

	t.Run("complex value", func(t *testing.T) {
		out := Body([]any{point{X: 1, Y: 2}})
		assert.Contains(t, out, "X: (int) 1")
		assert.Contains(t, out, "Y: (int) 2")
	})

	t.Run("multiple values", func(t *testing.T) {
		out := Body([]any{"a", nil, 3})
		assert.Equal(t, "args[0] = a\nargs[1] = null\nargs[2] = 3", out)
	})
}

func TestPrettyJSON(t *testing.T) {
	t.Run("object", func(t *testing.T) {
		in := `{"name":"devlog","tags":["a","b"],"nested":{"n":1}}`
		out := PrettyJSON(in)

		assert.Contains(t, out, "\n    \"name\": \"devlog\"")
		assert.Contains(t, out, "\n        \"n\": 1")

		var before, after any
		require.NoError(t, json.Unmarshal([]byte(in), &before))
		require.NoError(t, json.Unmarshal([]byte(out), &after))
		assert.Equal(t, before, after)
	})

	t.Run("array", func(t *testing.T) {
		out := PrettyJSON(`[1,2]`)
		assert.Equal(t, "[\n    1,\n    2\n]", out)
	})

	t.Run("invalid passes through", func(t *testing.T) {
		for _, in := range []string{"", "plain text", `{"broken":`, `"just a string"`, "123"} {
			assert.Equal(t, in, PrettyJSON(in))
		}
	})
}

func TestPrettyXML(t *testing.T) {
	t.Run("document", func(t *testing.T) {
		in := `<?xml version="1.0" encoding="UTF-8"?><root><item id="1">one</item><item id="2"><sub>two</sub></item></root>`
		out := PrettyXML(in)

		assert.Contains(t, out, "\n    <item id=\"1\">one</item>")
		assert.Contains(t, out, "\n        <sub>two</sub>")

		// Output is still well-formed
		dec := xml.NewDecoder(strings.NewReader(out))
		for {
			_, err := dec.Token()
			if err != nil {
				assert.Equal(t, "EOF", err.Error())
				break
			}
		}
	})

	t.Run("namespace prefixes kept", func(t *testing.T) {
		in := `<s:Envelope xmlns:s="urn:x"><s:Body>b</s:Body></s:Envelope>`
		out := PrettyXML(in)
		assert.Contains(t, out, "<s:Envelope xmlns:s=\"urn:x\">")
		assert.Contains(t, out, "\n    <s:Body>b</s:Body>")
		assert.NotContains(t, out, "xmlns=\"s\"")
	})

	t.Run("malformed passes through", func(t *testing.T) {
		for _, in := range []string{"", "not xml", "<a><b></a>", "<open>"} {
			assert.Equal(t, in, PrettyXML(in))
		}
	})
}

func TestHeaderAndDecorate(t *testing.T) {
	assert.Equal(t, "Thread: goroutine 7, Handle(server.go:42)", Header(7, "Handle", "server.go", 42))

	assert.Equal(t, "a\nb", Decorate("a\nb", false))
	assert.Equal(t, LeftBorder+"a\n"+LeftBorder+"b", Decorate("a\nb", true))
}

func TestCompose(t *testing.T) {
	err := fmt.Errorf("outer: %w", errors.New("inner"))

	assert.Equal(t, "body", Compose("", "body", nil))
	assert.Equal(t, "head\nbody", Compose("head", "body", nil))
	assert.Equal(t, "head\nbody\nouter: inner", Compose("head", "body", err))
}
