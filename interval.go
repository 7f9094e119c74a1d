package vtype

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	microsecondsPerSecond int64 = 1000000
	microsecondsPerMinute       = 60 * microsecondsPerSecond
	microsecondsPerHour         = 60 * microsecondsPerMinute
	microsecondsPerDay          = 24 * microsecondsPerHour
)

// IntervalUnit is one field of an interval's declared range, ordered coarse
// to fine.
type IntervalUnit int

const (
	Year IntervalUnit = iota
	Month
	Day
	Hour
	Minute
	Second
)

var intervalUnitNames = [...]string{"YEAR", "MONTH", "DAY", "HOUR", "MINUTE", "SECOND"}

func (u IntervalUnit) String() string {
	if u < Year || u > Second {
		return fmt.Sprintf("<unit %d>", int(u))
	}
	return intervalUnitNames[u]
}

// IntervalRange is the declared field range of an interval type, Start no
// finer than End. The two families never mix: a range lies entirely within
// YEAR..MONTH or entirely within DAY..SECOND.
type IntervalRange struct {
	Start, End IntervalUnit
}

func (r IntervalRange) String() string {
	if r.Start == r.End {
		return r.Start.String()
	}
	return r.Start.String() + " TO " + r.End.String()
}

func (r IntervalRange) yearMonth() bool { return r.End <= Month }

func decodeInterval(s string, t *Type) (Value, error) {
	if t.Range.yearMonth() {
		return decodeIntervalYM(s, t)
	}
	return decodeIntervalDT(s, t)
}

// decodeIntervalYM parses the year-month rendering: "2y", "2y 3m", "3m", or
// a bare count of the range's start unit. Negation is a leading minus or a
// trailing "ago"; both together still negate once.
func decodeIntervalYM(s string, t *Type) (Value, error) {
	body := strings.TrimSpace(s)
	neg := false
	if tail := strings.TrimSuffix(body, "ago"); tail != body {
		neg = true
		body = strings.TrimSpace(tail)
	}
	if strings.HasPrefix(body, "-") {
		neg = true
		body = strings.TrimSpace(body[1:])
	}

	var years, months int64
	var done bool
	fields := strings.Fields(body)
	if len(fields) == 0 || len(fields) > 2 {
		return nil, formatError(t, s, "malformed interval")
	}
	for _, tok := range fields {
		if done {
			return nil, formatError(t, s, "malformed interval")
		}
		switch {
		case strings.HasSuffix(tok, "y"):
			if years != 0 || months != 0 {
				return nil, formatError(t, s, "malformed interval")
			}
			n, err := intervalInt(tok[:len(tok)-1], t, s)
			if err != nil {
				return nil, err
			}
			years = n
		case strings.HasSuffix(tok, "m"):
			n, err := intervalInt(tok[:len(tok)-1], t, s)
			if err != nil {
				return nil, err
			}
			months = n
			done = true
		default:
			if len(fields) != 1 {
				return nil, formatError(t, s, "malformed interval")
			}
			n, err := intervalInt(tok, t, s)
			if err != nil {
				return nil, err
			}
			if t.Range.Start == Year {
				years = n
			} else {
				months = n
			}
			done = true
		}
	}

	// The total month count must stay representable.
	if months/12 > math.MaxInt64-years {
		return nil, &OverflowError{TypeName: t.Name(), Raw: s}
	}
	years += months / 12
	months %= 12
	if years > (math.MaxInt64-months)/12 {
		return nil, &OverflowError{TypeName: t.Name(), Raw: s}
	}
	if neg {
		years, months = -years, -months
	}
	return Interval{Years: years, Months: months}, nil
}

// decodeIntervalDT parses the day-time rendering. The grammar depends on the
// declared range:
//
//	a bare number counts the range's start unit ("216901" under SECOND);
//	a leading integer before a space is the day part, allowed only when the
//	range starts at DAY, and a bare number after it counts hours;
//	colon fields start at the range's start unit, except that three fields
//	are always H:M:S and a day part forces the clock to start at hours;
//	a fraction may ride only on a seconds field.
//
// A leading minus negates the whole value. The result is normalized upward
// through days regardless of the range: HOUR '32' is one day eight hours.
func decodeIntervalDT(s string, t *Type) (Value, error) {
	r := t.Range
	body := strings.TrimSpace(s)
	neg := false
	if strings.HasPrefix(body, "-") {
		neg = true
		body = strings.TrimSpace(body[1:])
	}

	fields := strings.Fields(body)
	var dayTok, clockTok string
	switch len(fields) {
	case 1:
		clockTok = fields[0]
	case 2:
		dayTok, clockTok = fields[0], fields[1]
	default:
		return nil, formatError(t, s, "malformed interval")
	}

	var total int64
	if dayTok != "" {
		if r.Start != Day || !isDigits(dayTok) {
			return nil, formatError(t, s, "malformed interval")
		}
		days, err := intervalInt(dayTok, t, s)
		if err != nil {
			return nil, err
		}
		var ok bool
		total, ok = addUnits(total, days, microsecondsPerDay)
		if !ok {
			return nil, &OverflowError{TypeName: t.Name(), Raw: s}
		}
	}

	parts := strings.Split(clockTok, ":")
	firstUnit := r.Start
	if firstUnit == Day || dayTok != "" {
		firstUnit = Hour
	}
	if len(parts) == 3 {
		// Three fields are H:M:S; the range must reach up to hours.
		if r.Start > Hour {
			return nil, formatError(t, s, "interval field outside declared range")
		}
		firstUnit = Hour
	}
	if len(parts) > 3 {
		return nil, formatError(t, s, "malformed interval")
	}
	if len(parts) == 1 && dayTok == "" {
		// Bare number: a count of the range's start unit.
		firstUnit = r.Start
		if firstUnit == Day {
			if !isDigits(parts[0]) {
				return nil, formatError(t, s, "malformed interval")
			}
			days, err := intervalInt(parts[0], t, s)
			if err != nil {
				return nil, err
			}
			us, ok := addUnits(0, days, microsecondsPerDay)
			if !ok {
				return nil, &OverflowError{TypeName: t.Name(), Raw: s}
			}
			return intervalFromMicros(us, neg), nil
		}
	}

	finest := firstUnit + IntervalUnit(len(parts)) - 1
	if finest > Second || (finest > r.End && !(len(parts) == 1 && dayTok != "")) {
		return nil, formatError(t, s, "malformed interval")
	}

	for i, p := range parts {
		unit := firstUnit + IntervalUnit(i)
		intPart, frac := p, ""
		if dot := strings.IndexByte(p, '.'); dot >= 0 {
			intPart, frac = p[:dot], p[dot+1:]
		}
		if frac != "" && (unit != Second || i != len(parts)-1) {
			return nil, formatError(t, s, "fraction on non-seconds field")
		}
		if i > 0 && !isDigits(intPart) {
			return nil, formatError(t, s, "malformed interval")
		}
		n, err := intervalInt(intPart, t, s)
		if err != nil {
			return nil, err
		}
		if i > 0 && n > 59 {
			return nil, formatError(t, s, "interval field out of range")
		}
		var scale int64
		switch unit {
		case Hour:
			scale = microsecondsPerHour
		case Minute:
			scale = microsecondsPerMinute
		case Second:
			scale = microsecondsPerSecond
		}
		var ok bool
		total, ok = addUnits(total, n, scale)
		if !ok {
			return nil, &OverflowError{TypeName: t.Name(), Raw: s}
		}
		if frac != "" {
			us, ferr := fracMicros(frac)
			if ferr != nil {
				return nil, formatError(t, s, ferr.Error())
			}
			us, carry := roundMicros(us, t.fractionalDigits())
			total, ok = addUnits(total, us+int64(carry)*microsecondsPerSecond, 1)
			if !ok {
				return nil, &OverflowError{TypeName: t.Name(), Raw: s}
			}
		}
	}
	return intervalFromMicros(total, neg), nil
}

// addUnits accumulates n units of scale microseconds each onto total. All
// arguments are nonnegative; it reports false when the sum would exceed the
// representable microsecond range instead of wrapping.
func addUnits(total, n, scale int64) (int64, bool) {
	if n > (math.MaxInt64-total)/scale {
		return 0, false
	}
	return total + n*scale, true
}

// intervalFromMicros decomposes a nonnegative day-time magnitude into its
// components, with the sign applied to every nonzero component.
func intervalFromMicros(total int64, neg bool) Interval {
	v := Interval{
		Days:         total / microsecondsPerDay,
		Hours:        total % microsecondsPerDay / microsecondsPerHour,
		Minutes:      total % microsecondsPerHour / microsecondsPerMinute,
		Seconds:      total % microsecondsPerMinute / microsecondsPerSecond,
		Microseconds: total % microsecondsPerSecond,
	}
	if neg {
		v.Days, v.Hours, v.Minutes = -v.Days, -v.Hours, -v.Minutes
		v.Seconds, v.Microseconds = -v.Seconds, -v.Microseconds
	}
	return v
}

func intervalInt(s string, t *Type, raw string) (int64, error) {
	if !isDigits(s) {
		return 0, formatError(t, raw, "malformed interval")
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &OverflowError{TypeName: t.Name(), Raw: raw}
	}
	return n, nil
}

// encodeInterval renders v in the shape the declared range calls for. The
// value's family must match the range's family.
func encodeInterval(v Interval, t *Type) (string, error) {
	r := t.Range
	if r.yearMonth() {
		if v.totalMicroseconds() != 0 {
			return "", &EncodingTypeMismatchError{Value: v, Target: t.Name()}
		}
		return encodeIntervalYM(v.totalMonths()), nil
	}
	if v.totalMonths() != 0 {
		return "", &EncodingTypeMismatchError{Value: v, Target: t.Name()}
	}
	return encodeIntervalDT(v.totalMicroseconds(), r), nil
}

func encodeIntervalYM(months int64) string {
	if months == 0 {
		return "0"
	}
	neg := months < 0
	if neg {
		months = -months
	}
	y, m := months/12, months%12
	var b strings.Builder
	if y > 0 {
		fmt.Fprintf(&b, "%dy", y)
	}
	if m > 0 {
		if y > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%dm", m)
	}
	if neg {
		b.WriteString(" ago")
	}
	return b.String()
}

func encodeIntervalDT(total int64, r IntervalRange) string {
	neg := total < 0
	if neg {
		total = -total
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}

	clockFirst := r.Start
	if r.Start == Day {
		days := total / microsecondsPerDay
		total %= microsecondsPerDay
		if r.End == Day {
			fmt.Fprintf(&b, "%d", days)
			return b.String()
		}
		// A zero-day DAY TO HOUR value still gets the day prefix, else the
		// bare hour count would read back as a count of days.
		if days > 0 || r.End == Hour {
			fmt.Fprintf(&b, "%d ", days)
		}
		clockFirst = Hour
	}

	padded := r.Start == Day
	for unit := clockFirst; unit <= r.End; unit++ {
		var n int64
		switch unit {
		case clockFirst:
			switch unit {
			case Hour:
				n = total / microsecondsPerHour
				total %= microsecondsPerHour
			case Minute:
				n = total / microsecondsPerMinute
				total %= microsecondsPerMinute
			case Second:
				n = total / microsecondsPerSecond
				total %= microsecondsPerSecond
			}
		case Minute:
			n = total / microsecondsPerMinute
			total %= microsecondsPerMinute
		case Second:
			n = total / microsecondsPerSecond
			total %= microsecondsPerSecond
		}
		if unit > clockFirst {
			b.WriteByte(':')
		}
		if padded {
			fmt.Fprintf(&b, "%02d", n)
		} else {
			fmt.Fprintf(&b, "%d", n)
			padded = true
		}
		if unit == Second {
			b.WriteString(formatMicros(total))
		}
	}
	return b.String()
}
