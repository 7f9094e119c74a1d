package vtype

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTypeName parses SQL type name text into a Type descriptor. It accepts
// the spellings Type.Name produces plus the usual aliases: BOOLEAN, INTEGER,
// DOUBLE PRECISION, DECIMAL, CHARACTER, LONG VARCHAR, TIME WITH TIME ZONE,
// and so on. Matching is case-insensitive.
func ParseTypeName(s string) (*Type, error) {
	p := &typeNameParser{s: s}
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.s) {
		return nil, fmt.Errorf("invalid type name %q: trailing %q", s, p.s[p.pos:])
	}
	return t, nil
}

type typeNameParser struct {
	s   string
	pos int
}

func (p *typeNameParser) skipSpace() {
	for p.pos < len(p.s) && (p.s[p.pos] == ' ' || p.s[p.pos] == '\t' || p.s[p.pos] == '\n') {
		p.pos++
	}
}

// word reads the next identifier, uppercased. Empty when the next character
// is punctuation or the input is exhausted.
func (p *typeNameParser) word() string {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.s) {
		c := p.s[p.pos]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' {
			p.pos++
			continue
		}
		break
	}
	return strings.ToUpper(p.s[start:p.pos])
}

func (p *typeNameParser) tryByte(c byte) bool {
	p.skipSpace()
	if p.pos < len(p.s) && p.s[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

func (p *typeNameParser) expectByte(c byte) error {
	if !p.tryByte(c) {
		return fmt.Errorf("invalid type name %q: expected %q", p.s, string(c))
	}
	return nil
}

// intArgs parses an optional parenthesized integer list such as "(10,2)".
func (p *typeNameParser) intArgs(max int) ([]int32, error) {
	if !p.tryByte('(') {
		return nil, nil
	}
	var args []int32
	for {
		w := p.word()
		if !isDigits(w) {
			return nil, fmt.Errorf("invalid type name %q: expected integer", p.s)
		}
		n, err := strconv.ParseInt(w, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid type name %q: %v", p.s, err)
		}
		args = append(args, int32(n))
		if p.tryByte(',') {
			continue
		}
		break
	}
	if len(args) > max {
		return nil, fmt.Errorf("invalid type name %q: too many arguments", p.s)
	}
	return args, p.expectByte(')')
}

func (p *typeNameParser) parseType() (*Type, error) {
	w := p.word()
	switch w {
	case "BOOL", "BOOLEAN":
		return BoolType(), nil
	case "INT", "INTEGER", "INT8", "BIGINT", "SMALLINT", "TINYINT":
		return IntType(), nil
	case "FLOAT", "FLOAT8", "REAL":
		return FloatType(), nil
	case "DOUBLE":
		save := p.pos
		if p.word() != "PRECISION" {
			p.pos = save
		}
		return FloatType(), nil
	case "NUMERIC", "DECIMAL", "NUMBER", "MONEY":
		args, err := p.intArgs(2)
		if err != nil {
			return nil, err
		}
		t := NumericType(0, 0)
		if len(args) > 0 {
			t.Precision = args[0]
		}
		if len(args) > 1 {
			t.Scale = args[1]
		}
		return t, nil
	case "CHAR", "CHARACTER":
		return p.lengthType(CharKind)
	case "VARCHAR":
		return p.lengthType(VarcharKind)
	case "BINARY", "BYTEA", "RAW":
		return p.lengthType(BinaryKind)
	case "VARBINARY":
		return p.lengthType(VarbinaryKind)
	case "LONG":
		switch p.word() {
		case "VARCHAR":
			return p.lengthType(VarcharKind)
		case "VARBINARY":
			return p.lengthType(VarbinaryKind)
		}
		return nil, fmt.Errorf("invalid type name %q: LONG must qualify VARCHAR or VARBINARY", p.s)
	case "UUID":
		return UUIDType(), nil
	case "DATE":
		return DateType(), nil
	case "TIME":
		return p.timeType(TimeKind, TimeTzKind)
	case "TIMETZ":
		return p.precisionType(TimeTzKind)
	case "TIMESTAMP":
		return p.timeType(TimestampKind, TimestampTzKind)
	case "TIMESTAMPTZ", "DATETIME", "SMALLDATETIME":
		if w != "TIMESTAMPTZ" {
			return p.precisionType(TimestampKind)
		}
		return p.precisionType(TimestampTzKind)
	case "INTERVAL":
		return p.intervalType()
	case "ARRAY":
		if err := p.expectByte('['); err != nil {
			return nil, err
		}
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		// A declared bound does not affect decoding; skip it.
		if p.tryByte(',') {
			if !isDigits(p.word()) {
				return nil, fmt.Errorf("invalid type name %q: expected array bound", p.s)
			}
		}
		return ArrayType(elem), p.expectByte(']')
	case "SET":
		if err := p.expectByte('['); err != nil {
			return nil, err
		}
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return SetType(elem), p.expectByte(']')
	case "ROW":
		return p.rowType()
	case "":
		return nil, fmt.Errorf("invalid type name %q: expected type keyword", p.s)
	}
	return nil, &UnsupportedTypeError{TypeName: w}
}

func (p *typeNameParser) lengthType(k Kind) (*Type, error) {
	args, err := p.intArgs(1)
	if err != nil {
		return nil, err
	}
	t := &Type{Kind: k}
	if len(args) > 0 {
		t.Length = args[0]
	}
	return t, nil
}

func (p *typeNameParser) precisionType(k Kind) (*Type, error) {
	args, err := p.intArgs(1)
	if err != nil {
		return nil, err
	}
	t := &Type{Kind: k}
	if len(args) > 0 {
		t.Precision = args[0]
	}
	return t, nil
}

// timeType handles TIME and TIMESTAMP with an optional precision and an
// optional WITH/WITHOUT TIME ZONE suffix.
func (p *typeNameParser) timeType(plain, withTz Kind) (*Type, error) {
	t, err := p.precisionType(plain)
	if err != nil {
		return nil, err
	}
	save := p.pos
	switch p.word() {
	case "WITH":
		if p.word() != "TIME" || p.word() != "ZONE" {
			return nil, fmt.Errorf("invalid type name %q: expected TIME ZONE", p.s)
		}
		t.Kind = withTz
	case "WITHOUT":
		if p.word() != "TIME" || p.word() != "ZONE" {
			return nil, fmt.Errorf("invalid type name %q: expected TIME ZONE", p.s)
		}
	default:
		p.pos = save
	}
	return t, nil
}

var intervalUnits = map[string]IntervalUnit{
	"YEAR": Year, "MONTH": Month, "DAY": Day,
	"HOUR": Hour, "MINUTE": Minute, "SECOND": Second,
}

// intervalType parses INTERVAL [unit [TO unit]] [(p)]. A bare INTERVAL is
// DAY TO SECOND.
func (p *typeNameParser) intervalType() (*Type, error) {
	save := p.pos
	start, ok := intervalUnits[p.word()]
	if !ok {
		p.pos = save
		return IntervalType(Day, Second), nil
	}
	end := start
	save = p.pos
	if p.word() == "TO" {
		var err error
		if end, err = p.intervalEnd(start); err != nil {
			return nil, err
		}
	} else {
		p.pos = save
	}
	t := IntervalType(start, end)
	if end == Second {
		args, err := p.intArgs(1)
		if err != nil {
			return nil, err
		}
		if len(args) > 0 {
			t.Precision = args[0]
		}
	}
	return t, nil
}

func (p *typeNameParser) intervalEnd(start IntervalUnit) (IntervalUnit, error) {
	end, ok := intervalUnits[p.word()]
	if !ok || end < start {
		return 0, fmt.Errorf("invalid type name %q: bad interval range", p.s)
	}
	// Year-month and day-time fields never mix.
	if start <= Month && end > Month {
		return 0, fmt.Errorf("invalid type name %q: bad interval range", p.s)
	}
	return end, nil
}

// rowType parses ROW(field, ...). Each field is an optionally named type;
// unnamed fields get positional names f0, f1, and so on, matching how the
// server labels anonymous row fields.
func (p *typeNameParser) rowType() (*Type, error) {
	if err := p.expectByte('('); err != nil {
		return nil, err
	}
	var fields []RowField
	if p.tryByte(')') {
		return RowType(), nil
	}
	for {
		name := ""
		save := p.pos
		w := p.word()
		if w != "" && !typeKeywords[w] {
			// An identifier that is not a type keyword names the field.
			name = strings.ToLower(p.s[save:p.pos])
			name = strings.TrimSpace(name)
		} else {
			p.pos = save
		}
		ft, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if name == "" {
			name = fmt.Sprintf("f%d", len(fields))
		}
		fields = append(fields, RowField{Name: name, Type: ft})
		if p.tryByte(',') {
			continue
		}
		break
	}
	return RowType(fields...), p.expectByte(')')
}

var typeKeywords = map[string]bool{
	"BOOL": true, "BOOLEAN": true,
	"INT": true, "INTEGER": true, "INT8": true, "BIGINT": true, "SMALLINT": true, "TINYINT": true,
	"FLOAT": true, "FLOAT8": true, "REAL": true, "DOUBLE": true,
	"NUMERIC": true, "DECIMAL": true, "NUMBER": true, "MONEY": true,
	"CHAR": true, "CHARACTER": true, "VARCHAR": true,
	"BINARY": true, "BYTEA": true, "RAW": true, "VARBINARY": true, "LONG": true,
	"UUID": true, "DATE": true,
	"TIME": true, "TIMETZ": true, "TIMESTAMP": true, "TIMESTAMPTZ": true,
	"DATETIME": true, "SMALLDATETIME": true,
	"INTERVAL": true, "ARRAY": true, "SET": true, "ROW": true,
}
