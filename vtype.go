package vtype

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Kind discriminates the type families the codec understands.
type Kind int

const (
	BoolKind Kind = iota
	IntKind
	FloatKind
	NumericKind
	CharKind
	VarcharKind
	BinaryKind
	VarbinaryKind
	UUIDKind
	DateKind
	TimeKind
	TimeTzKind
	TimestampKind
	TimestampTzKind
	IntervalKind
	ArrayKind
	SetKind
	RowKind
)

// Type describes a column or element type. Types are immutable once
// constructed from server metadata and shared read-only across decode calls
// for the same column.
type Type struct {
	Kind Kind

	// Precision is the digit count for Numeric. For the time family it is
	// the fractional-second digit count, 0 through 6.
	Precision int32
	Scale     int32

	// Length is the declared octet length for the Char and Binary families.
	// Zero means unbounded.
	Length int32

	Range  IntervalRange // Interval only
	Elem   *Type         // Array and Set only
	Fields []RowField    // Row only
}

// RowField is one named field of a Row type.
type RowField struct {
	Name string
	Type *Type
}

func BoolType() *Type  { return &Type{Kind: BoolKind} }
func IntType() *Type   { return &Type{Kind: IntKind} }
func FloatType() *Type { return &Type{Kind: FloatKind} }
func UUIDType() *Type  { return &Type{Kind: UUIDKind} }
func DateType() *Type  { return &Type{Kind: DateKind} }

func NumericType(precision, scale int32) *Type {
	return &Type{Kind: NumericKind, Precision: precision, Scale: scale}
}

func CharType(length int32) *Type      { return &Type{Kind: CharKind, Length: length} }
func VarcharType(length int32) *Type   { return &Type{Kind: VarcharKind, Length: length} }
func BinaryType(length int32) *Type    { return &Type{Kind: BinaryKind, Length: length} }
func VarbinaryType(length int32) *Type { return &Type{Kind: VarbinaryKind, Length: length} }

func TimeType(precision int32) *Type {
	return &Type{Kind: TimeKind, Precision: precision}
}

func TimeTzType(precision int32) *Type {
	return &Type{Kind: TimeTzKind, Precision: precision}
}

func TimestampType(precision int32) *Type {
	return &Type{Kind: TimestampKind, Precision: precision}
}

func TimestampTzType(precision int32) *Type {
	return &Type{Kind: TimestampTzKind, Precision: precision}
}

func IntervalType(start, end IntervalUnit) *Type {
	return &Type{Kind: IntervalKind, Range: IntervalRange{Start: start, End: end}}
}

func ArrayType(elem *Type) *Type { return &Type{Kind: ArrayKind, Elem: elem} }
func SetType(elem *Type) *Type   { return &Type{Kind: SetKind, Elem: elem} }

func RowType(fields ...RowField) *Type {
	return &Type{Kind: RowKind, Fields: fields}
}

// Name renders the type as SQL type name text, the same spelling
// ParseTypeName accepts.
func (t *Type) Name() string {
	if t == nil {
		return "<nil>"
	}
	switch t.Kind {
	case BoolKind:
		return "BOOL"
	case IntKind:
		return "INT"
	case FloatKind:
		return "FLOAT"
	case NumericKind:
		if t.Precision > 0 {
			return fmt.Sprintf("NUMERIC(%d,%d)", t.Precision, t.Scale)
		}
		return "NUMERIC"
	case CharKind:
		if t.Length > 0 {
			return fmt.Sprintf("CHAR(%d)", t.Length)
		}
		return "CHAR"
	case VarcharKind:
		if t.Length > 0 {
			return fmt.Sprintf("VARCHAR(%d)", t.Length)
		}
		return "VARCHAR"
	case BinaryKind:
		if t.Length > 0 {
			return fmt.Sprintf("BINARY(%d)", t.Length)
		}
		return "BINARY"
	case VarbinaryKind:
		if t.Length > 0 {
			return fmt.Sprintf("VARBINARY(%d)", t.Length)
		}
		return "VARBINARY"
	case UUIDKind:
		return "UUID"
	case DateKind:
		return "DATE"
	case TimeKind:
		return timeName("TIME", t.Precision)
	case TimeTzKind:
		return timeName("TIMETZ", t.Precision)
	case TimestampKind:
		return timeName("TIMESTAMP", t.Precision)
	case TimestampTzKind:
		return timeName("TIMESTAMPTZ", t.Precision)
	case IntervalKind:
		return "INTERVAL " + t.Range.String()
	case ArrayKind:
		return "ARRAY[" + t.Elem.Name() + "]"
	case SetKind:
		return "SET[" + t.Elem.Name() + "]"
	case RowKind:
		parts := make([]string, len(t.Fields))
		for i, f := range t.Fields {
			parts[i] = f.Name + " " + f.Type.Name()
		}
		return "ROW(" + strings.Join(parts, ", ") + ")"
	}
	return fmt.Sprintf("<kind %d>", int(t.Kind))
}

func timeName(base string, precision int32) string {
	if precision > 0 && precision < 6 {
		return fmt.Sprintf("%s(%d)", base, precision)
	}
	return base
}

// fractionalDigits is the effective fractional-second precision for the time
// family. The zero Type value means full microsecond precision.
func (t *Type) fractionalDigits() int32 {
	if t.Precision <= 0 {
		return 6
	}
	if t.Precision > 6 {
		return 6
	}
	return t.Precision
}

// Session is the connection-scoped state the codec consults: the active
// timezone. It defaults to UTC; the connection layer calls SetTimezone when
// it observes a timezone-setting statement. The codec only ever reads it.
type Session struct {
	mu  sync.RWMutex
	loc *time.Location
}

func NewSession() *Session {
	return &Session{loc: time.UTC}
}

// SetTimezone accepts an IANA zone name or a fixed offset such as "+06:30"
// or "-0500".
func (s *Session) SetTimezone(tz string) error {
	loc, err := parseTimezone(tz)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.loc = loc
	s.mu.Unlock()
	return nil
}

// Location snapshots the active timezone. Decode calls in flight keep the
// snapshot they were given; a concurrent SetTimezone affects later calls.
func (s *Session) Location() *time.Location {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loc
}

// Decode decodes one raw field against t using the session's current
// timezone snapshot.
func (s *Session) Decode(src []byte, t *Type) (Value, error) {
	return Decode(src, t, s.Location())
}

func parseTimezone(tz string) (*time.Location, error) {
	if tz == "" {
		return nil, fmt.Errorf("empty timezone")
	}
	if tz[0] == '+' || tz[0] == '-' {
		off, err := parseNumericOffset(tz)
		if err != nil {
			return nil, fmt.Errorf("invalid timezone %q: %w", tz, err)
		}
		return time.FixedZone(tz, off), nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", tz, err)
	}
	return loc, nil
}
