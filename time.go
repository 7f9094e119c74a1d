package vtype

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/golang-sql/civil"
)

// parseClock parses HH:MM[:SS[.fraction]]. The fraction is rounded to the
// declared precision; a round-up can carry all the way into the hour, so the
// returned hour may be 24. Callers decide whether that wraps (time of day)
// or rolls the date (timestamps).
func parseClock(s string, digits int32) (civil.Time, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return civil.Time{}, errors.New("not a time")
	}

	secPart := "0"
	frac := ""
	if len(parts) == 3 {
		secPart = parts[2]
		if dot := strings.IndexByte(secPart, '.'); dot >= 0 {
			frac = secPart[dot+1:]
			secPart = secPart[:dot]
		}
	}
	if !isDigits(parts[0]) || !isDigits(parts[1]) || !isDigits(secPart) {
		return civil.Time{}, errors.New("not a time")
	}
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	sec, _ := strconv.Atoi(secPart)
	if h > 23 || m > 59 || sec > 59 {
		return civil.Time{}, errors.New("time field out of range")
	}

	var us int64
	if frac != "" {
		var err error
		us, err = fracMicros(frac)
		if err != nil {
			return civil.Time{}, err
		}
	}
	us, carry := roundMicros(us, digits)
	sec += carry
	if sec == 60 {
		sec = 0
		m++
	}
	if m == 60 {
		m = 0
		h++
	}
	return civil.Time{Hour: h, Minute: m, Second: sec, Nanosecond: int(us) * 1000}, nil
}

// fracMicros converts fractional-second digit text to microseconds, rounding
// digits beyond the sixth.
func fracMicros(frac string) (int64, error) {
	if !isDigits(frac) {
		return 0, errors.New("bad fractional seconds")
	}
	var us int64
	for i := 0; i < 6; i++ {
		us *= 10
		if i < len(frac) {
			us += int64(frac[i] - '0')
		}
	}
	if len(frac) > 6 && frac[6] >= '5' {
		us++
	}
	return us, nil
}

var microsStep = [7]int64{1000000, 100000, 10000, 1000, 100, 10, 1}

// roundMicros rounds half away from zero to the given fractional digit
// count and reports a one-second carry when the result overflows.
func roundMicros(us int64, digits int32) (int64, int) {
	if digits < 0 {
		digits = 0
	} else if digits > 6 {
		digits = 6
	}
	step := microsStep[digits]
	us = (us + step/2) / step * step
	if us >= 1000000 {
		return us - 1000000, 1
	}
	return us, 0
}

func decodeTime(s string, t *Type) (Value, error) {
	c, err := parseClock(s, t.fractionalDigits())
	if err != nil {
		return nil, formatError(t, s, err.Error())
	}
	if c.Hour == 24 {
		c.Hour = 0
	}
	return Time{c}, nil
}

func encodeTime(v Time) string {
	return fmt.Sprintf("'%02d:%02d:%02d%s'",
		v.Hour, v.Minute, v.Second, formatMicros(int64(v.Nanosecond)/1000))
}

// formatMicros renders a nonzero microsecond fraction as ".ffffff" with
// trailing zeros trimmed.
func formatMicros(us int64) string {
	if us == 0 {
		return ""
	}
	return strings.TrimRight(fmt.Sprintf(".%06d", us), "0")
}
