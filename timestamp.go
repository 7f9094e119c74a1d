package vtype

import (
	"fmt"
	"time"

	"github.com/golang-sql/civil"
)

// decodeTimestamp parses the zone-less YYYY-MM-DD[ HH:MM:SS[.ffffff]] form.
// A fractional round-up may roll the date; time.Date normalizes the carry,
// and it is not bounded to the civil-calendar year range.
func decodeTimestamp(s string, t *Type) (Value, error) {
	p, err := splitTemporal(s)
	if err != nil || p.date == "" || p.zone != "" || p.offset != "" {
		return nil, formatError(t, s, "not a timestamp")
	}
	y, mo, d, err := parseDateFields(p.date)
	if err != nil {
		return nil, formatError(t, s, err.Error())
	}
	var c civil.Time
	if p.clock != "" {
		c, err = parseClock(p.clock, t.fractionalDigits())
		if err != nil {
			return nil, formatError(t, s, err.Error())
		}
	}
	tt := time.Date(y, time.Month(mo), d, c.Hour, c.Minute, c.Second, c.Nanosecond, time.UTC)
	return Timestamp{civil.DateTimeOf(tt)}, nil
}

func encodeTimestamp(v Timestamp) string {
	return fmt.Sprintf("'%04d-%02d-%02d %02d:%02d:%02d%s'",
		v.Date.Year, int(v.Date.Month), v.Date.Day,
		v.Time.Hour, v.Time.Minute, v.Time.Second,
		formatMicros(int64(v.Time.Nanosecond)/1000))
}
