package vtype

import (
	"errors"
	"strconv"
)

func decodeInt(s string, t *Type) (Value, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && ne.Err == strconv.ErrRange {
			return nil, &OverflowError{TypeName: t.Name(), Raw: s}
		}
		return nil, formatError(t, s, "not an integer")
	}
	return Int(n), nil
}

func encodeInt(v Int) string {
	return strconv.FormatInt(int64(v), 10)
}
