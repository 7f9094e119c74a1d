package vtype

import (
	"fmt"
	"time"

	"github.com/golang-sql/civil"
)

// decodeTimestampTz resolves the literal to an instant. The literal's own
// offset or zone wins when it names one; otherwise the wall clock is read in
// the session timezone. The result is always rendered in the session
// timezone, so the same raw text decodes to different offsets under
// different sessions.
func decodeTimestampTz(s string, t *Type, loc *time.Location) (Value, error) {
	p, err := splitTemporal(s)
	if err != nil || p.date == "" {
		return nil, formatError(t, s, "not a timestamp with zone")
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

	var instant time.Time
	switch {
	case p.offset != "":
		off, oerr := parseNumericOffset(p.offset)
		if oerr != nil {
			return nil, formatError(t, s, oerr.Error())
		}
		instant = time.Date(y, time.Month(mo), d, c.Hour, c.Minute, c.Second, c.Nanosecond, time.FixedZone("", off))
	case p.zone != "":
		z, zerr := time.LoadLocation(p.zone)
		if zerr != nil {
			return nil, formatError(t, s, fmt.Sprintf("unknown zone %q", p.zone))
		}
		instant = time.Date(y, time.Month(mo), d, c.Hour, c.Minute, c.Second, c.Nanosecond, z)
	default:
		instant = time.Date(y, time.Month(mo), d, c.Hour, c.Minute, c.Second, c.Nanosecond, loc)
	}

	local := instant.In(loc)
	_, off := local.Zone()
	return TimestampTz{local.In(time.FixedZone("", off))}, nil
}

func encodeTimestampTz(v TimestampTz) string {
	y, mo, d := v.Date()
	h, mi, sec := v.Clock()
	_, off := v.Zone()
	return fmt.Sprintf("'%04d-%02d-%02d %02d:%02d:%02d%s%s'",
		y, int(mo), d, h, mi, sec,
		formatMicros(int64(v.Nanosecond())/1000), formatOffset(off))
}
