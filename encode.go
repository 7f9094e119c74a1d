package vtype

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vertigosql/vtype/internal/sanitize"
)

// Encode renders v as escaped SQL literal text, safe to interpolate into a
// statement. typeName, when nonempty, is the declared target type; it is
// checked against the value's shape and drives the spelling of intervals and
// of empty or all-null containers, which need an explicit cast to be typable
// by the server.
func Encode(v Value, typeName string) (string, error) {
	var t *Type
	if typeName != "" {
		var err error
		t, err = ParseTypeName(typeName)
		if err != nil {
			return "", err
		}
	}
	return encodeValue(v, t)
}

func encodeValue(v Value, t *Type) (string, error) {
	if v == nil {
		return "", errors.New("cannot encode nil Value")
	}
	switch av := v.(type) {
	case Null:
		return "NULL", nil
	case Bool:
		if !kindOK(t, BoolKind) {
			return "", mismatch(v, t)
		}
		return encodeBool(av), nil
	case Int:
		// An integer is a valid literal for the wider numeric families.
		if !kindOK(t, IntKind, NumericKind, FloatKind) {
			return "", mismatch(v, t)
		}
		return encodeInt(av), nil
	case Float:
		if !kindOK(t, FloatKind) {
			return "", mismatch(v, t)
		}
		return encodeFloat(av), nil
	case Numeric:
		if !kindOK(t, NumericKind) {
			return "", mismatch(v, t)
		}
		return encodeNumeric(av), nil
	case Text:
		if !kindOK(t, CharKind, VarcharKind) {
			return "", mismatch(v, t)
		}
		return string(sanitize.QuoteString(nil, string(av))), nil
	case Bytes:
		if !kindOK(t, BinaryKind, VarbinaryKind) {
			return "", mismatch(v, t)
		}
		return string(sanitize.QuoteBytes(nil, av)), nil
	case UUID:
		if !kindOK(t, UUIDKind) {
			return "", mismatch(v, t)
		}
		return encodeUUID(av), nil
	case Date:
		if !kindOK(t, DateKind) {
			return "", mismatch(v, t)
		}
		return encodeDate(av), nil
	case Time:
		if !kindOK(t, TimeKind) {
			return "", mismatch(v, t)
		}
		return encodeTime(av), nil
	case TimeTz:
		if !kindOK(t, TimeTzKind) {
			return "", mismatch(v, t)
		}
		return encodeTimeTz(av), nil
	case Timestamp:
		if !kindOK(t, TimestampKind) {
			return "", mismatch(v, t)
		}
		return encodeTimestamp(av), nil
	case TimestampTz:
		if !kindOK(t, TimestampTzKind) {
			return "", mismatch(v, t)
		}
		return encodeTimestampTz(av), nil
	case Interval:
		if !kindOK(t, IntervalKind) {
			return "", mismatch(v, t)
		}
		body, err := encodeInterval(av, intervalTarget(av, t))
		if err != nil {
			return "", err
		}
		return "'" + body + "'", nil
	case Array:
		if !kindOK(t, ArrayKind) {
			return "", mismatch(v, t)
		}
		return encodeContainer("ARRAY", av, t)
	case Set:
		if !kindOK(t, SetKind) {
			return "", mismatch(v, t)
		}
		return encodeContainer("SET", av, t)
	case Row:
		if !kindOK(t, RowKind) {
			return "", mismatch(v, t)
		}
		return encodeRow(av, t)
	}
	return "", fmt.Errorf("cannot encode %T", v)
}

func kindOK(t *Type, kinds ...Kind) bool {
	if t == nil {
		return true
	}
	for _, k := range kinds {
		if t.Kind == k {
			return true
		}
	}
	return false
}

func mismatch(v Value, t *Type) error {
	return &EncodingTypeMismatchError{Value: v, Target: t.Name()}
}

// intervalTarget picks the range an interval renders in when the caller
// named no target: the value's own family, day-time for zero.
func intervalTarget(v Interval, t *Type) *Type {
	if t != nil {
		return t
	}
	if v.totalMonths() != 0 {
		return IntervalType(Year, Month)
	}
	return IntervalType(Day, Second)
}

// encodeContainer renders an ARRAY or SET literal. A container with no typed
// element, empty or all nulls, carries a cast so the server can type it.
func encodeContainer(keyword string, elems []Value, t *Type) (string, error) {
	var elemType *Type
	if t != nil {
		elemType = t.Elem
	}
	var b strings.Builder
	b.WriteString(keyword)
	b.WriteByte('[')
	typed := false
	for i, e := range elems {
		if i > 0 {
			b.WriteByte(',')
		}
		s, err := encodeValue(e, elemType)
		if err != nil {
			return "", err
		}
		if _, isNull := e.(Null); !isNull {
			typed = true
		}
		b.WriteString(s)
	}
	b.WriteByte(']')
	if !typed && t != nil {
		b.WriteString("::")
		b.WriteString(t.Name())
	}
	return b.String(), nil
}

func encodeRow(v Row, t *Type) (string, error) {
	if t != nil && len(t.Fields) != len(v.Values) {
		return "", mismatch(v, t)
	}
	var b strings.Builder
	b.WriteString("ROW(")
	for i, e := range v.Values {
		if i > 0 {
			b.WriteByte(',')
		}
		var ft *Type
		if t != nil {
			ft = t.Fields[i].Type
		}
		s, err := encodeValue(e, ft)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	b.WriteByte(')')
	return b.String(), nil
}
