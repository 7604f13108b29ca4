// FILE: lixenwraith/devlog/formatter/formatter.go
package formatter

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Decoration and placeholder text
const (
	TopBorder    = "╔═══════════════════════════════════════════════════════════════════════════════════════════════════"
	LeftBorder   = "║ "
	BottomBorder = "╚═══════════════════════════════════════════════════════════════════════════════════════════════════"

	NoContent = "no content supplied"
	Null      = "null"

	indent = "    "
)

// dumper renders values without a natural string form
var dumper = &spew.ConfigState{
	Indent:                  indent,
	MaxDepth:                10,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Body renders the content arguments of a log call.
// No arguments yield NoContent, a single argument its natural string,
// several arguments one "args[i] = v" line each.
func Body(args []any) string {
	switch len(args) {
	case 0:
		return NoContent
	case 1:
		return Value(args[0])
	}

	var sb strings.Builder
	for i, arg := range args {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("args[")
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString("] = ")
		sb.WriteString(Value(arg))
	}
	return sb.String()
}

// Value converts a single value to its log representation.
// Nil values, typed nil pointers included, render as Null.
func Value(v any) string {
	if v == nil {
		return Null
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return Null
		}
	}

	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	case error, fmt.Stringer:
		// fmt recovers panics raised by Error and String
		return fmt.Sprint(val)
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	}

	switch rv.Kind() {
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array, reflect.Pointer:
		return strings.TrimSpace(dumper.Sdump(v))
	default:
		return fmt.Sprint(v)
	}
}

// PrettyJSON re-indents a JSON object or array with four spaces.
// Anything that is not valid JSON is returned unchanged.
func PrettyJSON(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "{") && !strings.HasPrefix(trimmed, "[") {
		return s
	}
	if !json.Valid([]byte(trimmed)) {
		return s
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(trimmed), "", indent); err != nil {
		return s
	}
	return buf.String()
}

// PrettyXML re-indents a well-formed XML document with four spaces.
// Malformed input is returned unchanged.
func PrettyXML(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "<") || !wellFormedXML(trimmed) {
		return s
	}

	var buf bytes.Buffer
	dec := xml.NewDecoder(strings.NewReader(trimmed))
	enc := xml.NewEncoder(&buf)
	enc.Indent("", indent)

	for {
		tok, err := dec.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return s
		}

		switch t := tok.(type) {
		case xml.CharData:
			if len(bytes.TrimSpace(t)) == 0 {
				continue
			}
		case xml.StartElement:
			tok = flattenStart(t)
		case xml.EndElement:
			t.Name = flattenName(t.Name)
			tok = t
		}

		if err := enc.EncodeToken(xml.CopyToken(tok)); err != nil {
			return s
		}
	}

	if err := enc.Flush(); err != nil {
		return s
	}
	return buf.String()
}

// wellFormedXML runs a strict decoding pass over the whole document
func wellFormedXML(s string) bool {
	dec := xml.NewDecoder(strings.NewReader(s))
	sawElement := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return sawElement
		}
		if err != nil {
			return false
		}
		if _, ok := tok.(xml.StartElement); ok {
			sawElement = true
		}
	}
}

// flattenName keeps namespace prefixes as literal text so the encoder
// reproduces them instead of inventing xmlns attributes
func flattenName(n xml.Name) xml.Name {
	if n.Space == "" {
		return n
	}
	return xml.Name{Local: n.Space + ":" + n.Local}
}

func flattenStart(se xml.StartElement) xml.StartElement {
	out := xml.StartElement{Name: flattenName(se.Name)}
	out.Attr = make([]xml.Attr, 0, len(se.Attr))
	for _, a := range se.Attr {
		out.Attr = append(out.Attr, xml.Attr{Name: flattenName(a.Name), Value: a.Value})
	}
	return out
}

// Header renders the thread and caller line placed above a message
func Header(goroutine uint64, function, file string, line int) string {
	return "Thread: goroutine " + strconv.FormatUint(goroutine, 10) + ", " +
		function + "(" + file + ":" + strconv.Itoa(line) + ")"
}

// Decorate prefixes every line of msg with the left border when border is set
func Decorate(msg string, border bool) string {
	if !border {
		return msg
	}
	return LeftBorder + strings.ReplaceAll(msg, "\n", "\n"+LeftBorder)
}

// AppendError adds the detailed error text on its own line after the body
func AppendError(body string, err error) string {
	if err == nil {
		return body
	}
	return body + "\n" + fmt.Sprintf("%+v", err)
}

// Compose joins the optional header, the body and the error text
func Compose(header, body string, err error) string {
	msg := AppendError(body, err)
	if header == "" {
		return msg
	}
	return header + "\n" + msg
}
