// FILE: lixenwraith/devlog/formatter/chunk_test.go
package formatter

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkFits(t *testing.T) {
	body := strings.Repeat("a", 100)
	assert.Equal(t, []string{body}, Chunk(body, 100, LeftBorder))
	assert.Equal(t, []string{""}, Chunk("", 100, LeftBorder))
}

func TestChunkInvariants(t *testing.T) {
	bodies := map[string]string{
		"ascii":      strings.Repeat("0123456789", 1000),
		"multibyte":  strings.Repeat("日本語テキスト", 700),
		"mixed":      strings.Repeat("ascii ║ 日本 ", 900),
		"newlines":   strings.Repeat("line\n", 2000),
		"emoji tail": strings.Repeat("x", 4001) + "😀😀😀",
	}

	for name, body := range bodies {
		for _, prefix := range []string{"", LeftBorder} {
			t.Run(name+"/prefix="+prefix, func(t *testing.T) {
				const max = 4000
				segments := Chunk(body, max, prefix)

				assert.Greater(t, len(segments), 1)
				for i, seg := range segments {
					assert.LessOrEqual(t, len(seg), max, "segment %d too long", i)
					assert.True(t, utf8.ValidString(seg), "segment %d splits a rune", i)
					if i > 0 {
						assert.True(t, strings.HasPrefix(seg, prefix))
					}
				}
				assert.Equal(t, body, Unchunk(segments, max, prefix))
			})
		}
	}
}

func TestChunkSmallLimit(t *testing.T) {
	body := "héllo wörld"
	segments := Chunk(body, 4, "")
	for _, seg := range segments {
		assert.LessOrEqual(t, len(seg), 4)
		assert.True(t, utf8.ValidString(seg))
	}
	assert.Equal(t, body, Unchunk(segments, 4, ""))
}

func TestChunkPrefixTooLong(t *testing.T) {
	body := LeftBorder + "abc" + LeftBorder + "def"
	segments := Chunk(body, 5, LeftBorder)

	require.Greater(t, len(segments), 1)
	for _, seg := range segments {
		assert.LessOrEqual(t, len(seg), 5)
	}
	// A prefix in the content itself survives the round trip
	assert.Equal(t, body, Unchunk(segments, 5, LeftBorder))
}
