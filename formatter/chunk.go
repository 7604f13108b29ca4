// FILE: lixenwraith/devlog/formatter/chunk.go
package formatter

import (
	"strings"
	"unicode/utf8"
)

// Chunk splits body into ordered segments of at most max bytes each.
// Segments after the first start with wrapPrefix, which counts toward max.
// Cuts are moved back to a rune boundary so no UTF-8 sequence is split.
func Chunk(body string, max int, wrapPrefix string) []string {
	max, wrapPrefix = chunkLimits(max, wrapPrefix)
	if len(body) <= max {
		return []string{body}
	}

	segments := make([]string, 0, len(body)/(max-len(wrapPrefix))+1)
	prefix := ""
	for {
		limit := max - len(prefix)
		if len(body) <= limit {
			segments = append(segments, prefix+body)
			return segments
		}

		cut := limit
		for cut > 0 && !utf8.RuneStart(body[cut]) {
			cut--
		}
		if cut == 0 {
			// Not valid UTF-8 around the limit, cut on bytes
			cut = limit
		}

		segments = append(segments, prefix+body[:cut])
		body = body[cut:]
		prefix = wrapPrefix
	}
}

// chunkLimits raises max to one full rune and drops a prefix that leaves
// no room for content
func chunkLimits(max int, wrapPrefix string) (int, string) {
	if max < utf8.UTFMax {
		max = utf8.UTFMax
	}
	if max-len(wrapPrefix) < utf8.UTFMax {
		wrapPrefix = ""
	}
	return max, wrapPrefix
}

// Unchunk reverses Chunk called with the same max and wrapPrefix
func Unchunk(segments []string, max int, wrapPrefix string) string {
	_, wrapPrefix = chunkLimits(max, wrapPrefix)
	var sb strings.Builder
	for i, seg := range segments {
		if i > 0 {
			seg = strings.TrimPrefix(seg, wrapPrefix)
		}
		sb.WriteString(seg)
	}
	return sb.String()
}
