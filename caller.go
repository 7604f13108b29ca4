// FILE: lixenwraith/devlog/caller.go
package devlog

import (
	"bytes"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"unicode"
)

// captureCaller resolves the user frame skip levels above itself.
// A failed lookup returns a location with OK unset, never an error.
func captureCaller(skip int) callerLocation {
	loc := callerLocation{Goroutine: goroutineID()}
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return loc
	}
	loc.File = filepath.Base(file)
	loc.Line = line
	if fn := runtime.FuncForPC(pc); fn != nil {
		loc.Type, loc.Function = simplifyFunction(fn.Name())
	}
	loc.OK = loc.Type != ""
	return loc
}

// simplifyFunction splits a fully qualified function name into the
// receiver type (or package name for plain functions) and the function name.
//
//	github.com/app/server.(*Server).Handle.func1 -> Server, Handle
//	github.com/app/server.Server.Close           -> Server, Close
//	main.run.func2.1                             -> main, run
//	gopkg.in/yaml%2ev3.Unmarshal                 -> yaml.v3, Unmarshal
func simplifyFunction(full string) (typ, fn string) {
	name := full
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	name = stripTypeParams(name)

	pkg, rest, found := strings.Cut(name, ".")
	if !found {
		return name, name
	}

	// The runtime escapes dots in the last path element (gopkg.in/yaml%2ev3);
	// a literal "yaml.v3" is folded back the same way
	pkg = strings.ReplaceAll(pkg, "%2e", ".")
	parts := strings.Split(rest, ".")
	if len(parts) > 1 && isMajorVersion(parts[0]) {
		pkg += "." + parts[0]
		parts = parts[1:]
	}
	for len(parts) > 1 && isClosurePart(parts[len(parts)-1]) {
		parts = parts[:len(parts)-1]
	}

	switch {
	case strings.HasPrefix(parts[0], "("):
		typ = strings.TrimSuffix(strings.TrimPrefix(strings.TrimPrefix(parts[0], "("), "*"), ")")
		if len(parts) > 1 {
			fn = parts[1]
		}
	case len(parts) > 1:
		typ, fn = parts[0], parts[1]
	default:
		typ, fn = pkg, parts[0]
	}
	if fn == "" {
		fn = typ
	}
	return typ, fn
}

// isMajorVersion matches gopkg.in style version suffixes such as v3
func isMajorVersion(part string) bool {
	return len(part) > 1 && part[0] == 'v' && allDigits(part[1:])
}

// isClosurePart reports whether a name segment is compiler generated
func isClosurePart(part string) bool {
	if part == "" {
		return true
	}
	for _, prefix := range []string{"func", "gowrap", "deferwrap"} {
		if strings.HasPrefix(part, prefix) && allDigits(part[len(prefix):]) {
			return true
		}
	}
	return allDigits(part)
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// stripTypeParams removes generic instantiation brackets, "Map[...]" -> "Map"
func stripTypeParams(name string) string {
	var b strings.Builder
	depth := 0
	for _, r := range name {
		switch {
		case r == '[':
			depth++
		case r == ']' && depth > 0:
			depth--
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// goroutineID parses the current goroutine number from the stack header
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	b := bytes.TrimPrefix(buf[:n], []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i > 0 {
		b = b[:i]
	}
	id, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// resolveTag applies the tag precedence: global tag, explicit tag, caller type, fallback.
func resolveTag(cfg *Config, tag string, loc callerLocation) string {
	switch {
	case !isBlank(cfg.GlobalTag):
		tag = cfg.GlobalTag
	case !isBlank(tag):
	case loc.OK:
		tag = loc.Type
	default:
		tag = fallbackTag
	}

	if cfg.CallerTag && loc.OK {
		return "[" + tag + " at " + loc.Function + "(" + loc.File + ":" + strconv.Itoa(loc.Line) + ")]"
	}
	return tag
}
