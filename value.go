package vtype

import (
	"bytes"
	"math"
	"math/big"
	"time"

	"github.com/cockroachdb/apd"
	"github.com/gofrs/uuid"
	"github.com/golang-sql/civil"
)

// Value is the native representation of a single database value. It is a
// closed set of variants; the zero Value (a nil interface) is not valid, the
// SQL NULL is the Null variant.
type Value interface {
	value()
}

// Null is the SQL NULL of any type, scalar or container.
type Null struct{}

type Bool bool

// Int is a 64-bit signed integer.
type Int int64

// Float is an IEEE-754 double, including NaN and the infinities.
type Float float64

// Numeric is an exact decimal. The coefficient and exponent are kept exactly
// as parsed from the wire text, so trailing zeros implied by the scale
// survive a round trip: 0E-10 has scale 10, not 0.
type Numeric struct {
	apd.Decimal
}

// Scale is the count of digits after the decimal point.
func (n Numeric) Scale() int32 { return -n.Exponent }

type Text string

type Bytes []byte

// Date is a proleptic calendar date. The year is not clamped to a civil
// calendar range; years below 1000 and above 9999 are representable.
type Date struct {
	civil.Date
}

// Time is a zone-less time of day with sub-second precision.
type Time struct {
	civil.Time
}

// TimeTz is a time of day with a fixed UTC offset in seconds east.
type TimeTz struct {
	Time   civil.Time
	Offset int
}

// Timestamp is a zone-less date and time, same extended year range as Date.
type Timestamp struct {
	civil.DateTime
}

// TimestampTz is an instant carried in a fixed-offset zone.
type TimestampTz struct {
	time.Time
}

// Interval is a sparse duration. Which fields are populated depends on the
// declared field range of the interval type the value was decoded from.
type Interval struct {
	Years        int64
	Months       int64
	Days         int64
	Hours        int64
	Minutes      int64
	Seconds      int64
	Microseconds int64
}

type UUID struct {
	uuid.UUID
}

// Array is an ordered element sequence. It may be empty, and elements may be
// Null; both are distinct from the whole array being Null.
type Array []Value

// Set is a deduplicated collection with at most one Null element. Element
// order is the order of first appearance in the wire text.
type Set []Value

// Row is an ordered mapping of field name to value. Names and order come
// from the type descriptor, never from the wire text.
type Row struct {
	Names  []string
	Values []Value
}

func (Null) value()        {}
func (Bool) value()        {}
func (Int) value()         {}
func (Float) value()       {}
func (Numeric) value()     {}
func (Text) value()        {}
func (Bytes) value()       {}
func (Date) value()        {}
func (Time) value()        {}
func (TimeTz) value()      {}
func (Timestamp) value()   {}
func (TimestampTz) value() {}
func (Interval) value()    {}
func (UUID) value()        {}
func (Array) value()       {}
func (Set) value()         {}
func (Row) value()         {}

// Equal reports whether two values are equal under SET semantics: Numeric
// compares numerically (scale excluded), TimestampTz compares instants,
// Interval compares normalized magnitudes, containers compare recursively,
// and NaN equals NaN so a SET can hold at most one.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Int:
		bv, ok := b.(Int)
		return ok && av == bv
	case Float:
		bv, ok := b.(Float)
		if !ok {
			return false
		}
		if math.IsNaN(float64(av)) && math.IsNaN(float64(bv)) {
			return true
		}
		return av == bv
	case Numeric:
		bv, ok := b.(Numeric)
		return ok && decimalEqual(&av.Decimal, &bv.Decimal)
	case Text:
		bv, ok := b.(Text)
		return ok && av == bv
	case Bytes:
		bv, ok := b.(Bytes)
		return ok && bytes.Equal(av, bv)
	case Date:
		bv, ok := b.(Date)
		return ok && av.Date == bv.Date
	case Time:
		bv, ok := b.(Time)
		return ok && av.Time == bv.Time
	case TimeTz:
		bv, ok := b.(TimeTz)
		return ok && timeTzUTCMicros(av) == timeTzUTCMicros(bv)
	case Timestamp:
		bv, ok := b.(Timestamp)
		return ok && av.DateTime == bv.DateTime
	case TimestampTz:
		bv, ok := b.(TimestampTz)
		return ok && av.Time.Equal(bv.Time)
	case Interval:
		bv, ok := b.(Interval)
		return ok && av.totalMonths() == bv.totalMonths() && av.totalMicroseconds() == bv.totalMicroseconds()
	case UUID:
		bv, ok := b.(UUID)
		return ok && av.UUID == bv.UUID
	case Array:
		bv, ok := b.(Array)
		return ok && valuesEqual(av, bv)
	case Set:
		bv, ok := b.(Set)
		if !ok || len(av) != len(bv) {
			return false
		}
		for _, e := range av {
			if !containsValue(bv, e) {
				return false
			}
		}
		return true
	case Row:
		bv, ok := b.(Row)
		if !ok || len(av.Names) != len(bv.Names) {
			return false
		}
		for i := range av.Names {
			if av.Names[i] != bv.Names[i] {
				return false
			}
		}
		return valuesEqual(av.Values, bv.Values)
	}
	return false
}

func valuesEqual(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func containsValue(vs []Value, v Value) bool {
	for _, have := range vs {
		if Equal(have, v) {
			return true
		}
	}
	return false
}

func (v Interval) totalMonths() int64 {
	return v.Years*12 + v.Months
}

func (v Interval) totalMicroseconds() int64 {
	return v.Microseconds +
		v.Seconds*microsecondsPerSecond +
		v.Minutes*microsecondsPerMinute +
		v.Hours*microsecondsPerHour +
		v.Days*microsecondsPerDay
}

func timeTzUTCMicros(v TimeTz) int64 {
	us := int64(v.Time.Hour)*microsecondsPerHour +
		int64(v.Time.Minute)*microsecondsPerMinute +
		int64(v.Time.Second)*microsecondsPerSecond +
		int64(v.Time.Nanosecond)/1000
	return us - int64(v.Offset)*microsecondsPerSecond
}

func decimalEqual(a, b *apd.Decimal) bool {
	if a.Coeff.Sign() == 0 && b.Coeff.Sign() == 0 {
		return true
	}
	if a.Negative != b.Negative {
		return false
	}
	ca := new(big.Int).Set(&a.Coeff)
	cb := new(big.Int).Set(&b.Coeff)
	if d := a.Exponent - b.Exponent; d > 0 {
		ca.Mul(ca, pow10big(int(d)))
	} else if d < 0 {
		cb.Mul(cb, pow10big(int(-d)))
	}
	return ca.Cmp(cb) == 0
}

func pow10big(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
