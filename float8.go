package vtype

import (
	"math"
	"strconv"
	"strings"
)

func decodeFloat(s string, t *Type) (Value, error) {
	switch strings.ToLower(s) {
	case "infinity", "inf":
		return Float(math.Inf(1)), nil
	case "-infinity", "-inf":
		return Float(math.Inf(-1)), nil
	case "nan", "-nan":
		return Float(math.NaN()), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, formatError(t, s, "not a float")
	}
	return Float(f), nil
}

// encodeFloat renders the specials as quoted, cast tokens; a bare Infinity
// is not valid SQL.
func encodeFloat(v Float) string {
	f := float64(v)
	switch {
	case math.IsInf(f, 1):
		return "'Infinity'::float"
	case math.IsInf(f, -1):
		return "'-Infinity'::float"
	case math.IsNaN(f):
		return "'NaN'::float"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
