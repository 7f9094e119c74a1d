package vtype

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Decode converts the raw textual wire form of one field into the native
// Value described by t. A nil src is the SQL NULL of the whole field. loc is
// the session timezone, consulted only for temporal values whose text names
// no offset or zone; pass a snapshot, not shared mutable state.
//
// Top-level scalar text that is itself a complete single-quoted literal is
// unquoted before decoding, so the output of Encode reads back. The server
// never quotes a top-level scalar, but hand-fed text spelled like a quoted
// literal loses its quotes under this rule.
func Decode(src []byte, t *Type, loc *time.Location) (Value, error) {
	if t == nil {
		return nil, &UnsupportedTypeError{TypeName: "<nil>"}
	}
	if loc == nil {
		loc = time.UTC
	}
	if src == nil {
		return Null{}, nil
	}
	return decodeText(strings.TrimSpace(string(src)), t, loc)
}

func decodeText(s string, t *Type, loc *time.Location) (Value, error) {
	if isNullToken(s) {
		return Null{}, nil
	}
	switch t.Kind {
	case ArrayKind:
		elems, err := containerElements(s, "ARRAY", '[', ']')
		if err != nil {
			return nil, formatError(t, s, err.Error())
		}
		out := make(Array, 0, len(elems))
		for _, e := range elems {
			v, err := decodeElement(e, t.Elem, loc)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case SetKind:
		elems, err := containerElements(s, "SET", '[', ']')
		if err != nil {
			return nil, formatError(t, s, err.Error())
		}
		out := make(Set, 0, len(elems))
		for _, e := range elems {
			v, err := decodeElement(e, t.Elem, loc)
			if err != nil {
				return nil, err
			}
			if !containsValue(out, v) {
				out = append(out, v)
			}
		}
		return out, nil
	case RowKind:
		elems, err := containerElements(s, "ROW", '(', ')')
		if err != nil {
			return nil, formatError(t, s, err.Error())
		}
		if len(elems) != len(t.Fields) {
			return nil, formatError(t, s, fmt.Sprintf("expected %d fields, got %d", len(t.Fields), len(elems)))
		}
		row := Row{Names: make([]string, len(elems)), Values: make([]Value, len(elems))}
		for i, f := range t.Fields {
			v, err := decodeElement(elems[i], f.Type, loc)
			if err != nil {
				return nil, err
			}
			row.Names[i] = f.Name
			row.Values[i] = v
		}
		return row, nil
	default:
		return decodeScalar(s, t, loc)
	}
}

// decodeElement decodes one comma-split container element. Quoted elements
// are unescaped here, before the scalar codec sees them; the quoting
// convention inside containers exists because quotes and commas double as
// container syntax.
func decodeElement(tok string, t *Type, loc *time.Location) (Value, error) {
	if t == nil {
		return nil, &UnsupportedTypeError{TypeName: "<nil>"}
	}
	if isNullToken(tok) {
		return Null{}, nil
	}
	if tok != "" && tok[0] == '\'' {
		inner, err := unquote(tok)
		if err != nil {
			return nil, formatError(t, tok, err.Error())
		}
		switch t.Kind {
		case ArrayKind, SetKind, RowKind:
			return nil, formatError(t, tok, "quoted value for container type")
		}
		return decodeScalarRaw(inner, t, loc)
	}
	return decodeText(tok, t, loc)
}

func decodeScalar(s string, t *Type, loc *time.Location) (Value, error) {
	// The server never quotes a top-level scalar, but the literal encoder
	// does; accept its own output so values round-trip.
	if s != "" && s[0] == '\'' {
		if inner, err := unquote(s); err == nil {
			s = inner
		}
	}
	return decodeScalarRaw(s, t, loc)
}

func decodeScalarRaw(s string, t *Type, loc *time.Location) (Value, error) {
	switch t.Kind {
	case BoolKind:
		return decodeBool(s, t)
	case IntKind:
		return decodeInt(s, t)
	case FloatKind:
		return decodeFloat(s, t)
	case NumericKind:
		return decodeNumeric(s, t)
	case CharKind, VarcharKind:
		return decodeString(s, t)
	case BinaryKind, VarbinaryKind:
		return decodeBytes(s, t)
	case UUIDKind:
		return decodeUUID(s, t)
	case DateKind:
		return decodeDate(s, t)
	case TimeKind:
		return decodeTime(s, t)
	case TimeTzKind:
		return decodeTimeTz(s, t, loc)
	case TimestampKind:
		return decodeTimestamp(s, t)
	case TimestampTzKind:
		return decodeTimestampTz(s, t, loc)
	case IntervalKind:
		return decodeInterval(s, t)
	}
	return nil, &UnsupportedTypeError{TypeName: t.Name()}
}

func isNullToken(s string) bool {
	return strings.EqualFold(s, "null")
}

// containerElements strips an optional leading keyword, validates the
// delimiter pair, and splits the body on top-level commas. Nesting depth of
// both bracket kinds and single-quote state are tracked so nested containers
// and quoted commas never split. A trailing ::cast after the closing
// delimiter is tolerated; it is the encoder's own output.
func containerElements(s, keyword string, open, close byte) ([]string, error) {
	rest := s
	if n := len(keyword); len(rest) >= n && strings.EqualFold(rest[:n], keyword) {
		rest = strings.TrimSpace(rest[n:])
	}
	if rest == "" || rest[0] != open {
		return nil, fmt.Errorf("expected %q", string(open))
	}

	var elems []string
	depth := 0
	inQuote := false
	start := 1
	for i := 0; i < len(rest); i++ {
		c := rest[i]
		if inQuote {
			switch c {
			case '\\':
				i++
			case '\'':
				if i+1 < len(rest) && rest[i+1] == '\'' {
					i++
				} else {
					inQuote = false
				}
			}
			continue
		}
		switch c {
		case '\'':
			inQuote = true
		case '[', '(':
			depth++
		case ']', ')':
			depth--
			if depth > 0 {
				continue
			}
			if depth < 0 || c != close {
				return nil, fmt.Errorf("mismatched %q", string(c))
			}
			inner := strings.TrimSpace(rest[start:i])
			if inner != "" || len(elems) > 0 {
				elems = append(elems, inner)
			}
			tail := strings.TrimSpace(rest[i+1:])
			if tail != "" && !strings.HasPrefix(tail, "::") {
				return nil, fmt.Errorf("unexpected trailing %q", tail)
			}
			return elems, nil
		case ',':
			if depth == 1 {
				elems = append(elems, strings.TrimSpace(rest[start:i]))
				start = i + 1
			}
		}
	}
	if inQuote {
		return nil, errors.New("unterminated string")
	}
	return nil, errors.New("unterminated container")
}

// unquote parses a complete single-quoted literal: '' is an escaped quote,
// a backslash escapes the next byte. Anything after the closing quote other
// than a ::cast is an error.
func unquote(s string) (string, error) {
	if s == "" || s[0] != '\'' {
		return "", errors.New("not a quoted string")
	}
	var b strings.Builder
	i := 1
	for i < len(s) {
		switch s[i] {
		case '\\':
			if i+1 >= len(s) {
				return "", errors.New("dangling escape")
			}
			b.WriteByte(s[i+1])
			i += 2
		case '\'':
			if i+1 < len(s) && s[i+1] == '\'' {
				b.WriteByte('\'')
				i += 2
				continue
			}
			tail := strings.TrimSpace(s[i+1:])
			if tail != "" && !strings.HasPrefix(tail, "::") {
				return "", fmt.Errorf("unexpected trailing %q", tail)
			}
			return b.String(), nil
		default:
			b.WriteByte(s[i])
			i++
		}
	}
	return "", errors.New("unterminated string")
}
