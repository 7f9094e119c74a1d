package vtype

import (
	"strings"

	"github.com/cockroachdb/apd"
)

// decodeNumeric records the scale implied by the wire text's digit count and
// exponent directly in the coefficient/exponent pair. The value never passes
// through binary floating point.
func decodeNumeric(s string, t *Type) (Value, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, formatError(t, s, "not a numeric")
	}
	return Numeric{Decimal: *d}, nil
}

// encodeNumeric writes the plain (non-scientific) form, keeping every
// trailing zero the exponent implies so the scale survives a round trip.
func encodeNumeric(v Numeric) string {
	digits := v.Coeff.String()
	exp := int(v.Exponent)

	var b strings.Builder
	if v.Negative {
		b.WriteByte('-')
	}
	if exp >= 0 {
		b.WriteString(digits)
		for i := 0; i < exp; i++ {
			b.WriteByte('0')
		}
	} else if frac := -exp; len(digits) <= frac {
		b.WriteString("0.")
		for i := 0; i < frac-len(digits); i++ {
			b.WriteByte('0')
		}
		b.WriteString(digits)
	} else {
		b.WriteString(digits[:len(digits)-frac])
		b.WriteByte('.')
		b.WriteString(digits[len(digits)-frac:])
	}
	return b.String()
}
