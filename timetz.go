package vtype

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-sql/civil"
)

// temporalParts is the coarse decomposition of a temporal literal: an
// optional date, a clock, and at most one of a numeric offset or a named
// zone.
type temporalParts struct {
	date   string
	clock  string
	zone   string
	offset string
}

func splitTemporal(s string) (temporalParts, error) {
	var p temporalParts
	fields := strings.Fields(s)
	i := 0
	if i < len(fields) && isDateToken(fields[i]) {
		p.date = fields[i]
		i++
	}
	if i < len(fields) && strings.IndexByte(fields[i], ':') >= 0 {
		tok := fields[i]
		i++
		// A trailing +HHMM style offset rides on the clock token; the
		// clock itself never contains a sign.
		for j := 1; j < len(tok); j++ {
			if tok[j] == '+' || tok[j] == '-' {
				p.offset = tok[j:]
				tok = tok[:j]
				break
			}
		}
		p.clock = tok
	}
	if i < len(fields) {
		rest := strings.Join(fields[i:], " ")
		if rest[0] == '+' || rest[0] == '-' {
			p.offset = rest
		} else {
			p.zone = rest
		}
	}
	if p.clock == "" && p.date == "" {
		return p, errors.New("not a temporal value")
	}
	return p, nil
}

func isDateToken(s string) bool {
	return strings.IndexByte(s, '-') > 0 && strings.IndexByte(s, ':') < 0
}

// parseNumericOffset parses ±HH, ±HHMM, ±HHMMSS and the colon-separated
// spellings, returning seconds east of UTC.
func parseNumericOffset(s string) (int, error) {
	if len(s) < 2 || (s[0] != '+' && s[0] != '-') {
		return 0, errors.New("not a zone offset")
	}
	sign := 1
	if s[0] == '-' {
		sign = -1
	}
	body := s[1:]

	var hh, mm, ss string
	if strings.IndexByte(body, ':') >= 0 {
		parts := strings.Split(body, ":")
		if len(parts) > 3 {
			return 0, errors.New("not a zone offset")
		}
		hh = parts[0]
		if len(parts) > 1 {
			mm = parts[1]
		}
		if len(parts) > 2 {
			ss = parts[2]
		}
	} else {
		switch len(body) {
		case 1, 2:
			hh = body
		case 4:
			hh, mm = body[:2], body[2:]
		case 6:
			hh, mm, ss = body[:2], body[2:4], body[4:]
		default:
			return 0, errors.New("not a zone offset")
		}
	}

	total := 0
	for _, part := range []struct {
		text  string
		scale int
		max   int
	}{{hh, 3600, 18}, {mm, 60, 59}, {ss, 1, 59}} {
		if part.text == "" {
			continue
		}
		if !isDigits(part.text) {
			return 0, errors.New("not a zone offset")
		}
		n, _ := strconv.Atoi(part.text)
		if n > part.max {
			return 0, errors.New("zone offset out of range")
		}
		total += n * part.scale
	}
	return sign * total, nil
}

func formatOffset(off int) string {
	sign := byte('+')
	if off < 0 {
		sign = '-'
		off = -off
	}
	hh, mm, ss := off/3600, off%3600/60, off%60
	if ss != 0 {
		return fmt.Sprintf("%c%02d:%02d:%02d", sign, hh, mm, ss)
	}
	return fmt.Sprintf("%c%02d:%02d", sign, hh, mm)
}

// decodeTimeTz keeps the offset the literal names; only an offset-less
// literal consults the session timezone. A leading date anchors zone-name
// resolution, so historical offsets apply.
func decodeTimeTz(s string, t *Type, loc *time.Location) (Value, error) {
	p, err := splitTemporal(s)
	if err != nil || p.clock == "" {
		return nil, formatError(t, s, "not a time with zone")
	}
	c, err := parseClock(p.clock, t.fractionalDigits())
	if err != nil {
		return nil, formatError(t, s, err.Error())
	}
	if c.Hour == 24 {
		c.Hour = 0
	}

	var off int
	switch {
	case p.offset != "":
		off, err = parseNumericOffset(p.offset)
		if err != nil {
			return nil, formatError(t, s, err.Error())
		}
	case p.zone != "":
		z, zerr := time.LoadLocation(p.zone)
		if zerr != nil {
			return nil, formatError(t, s, fmt.Sprintf("unknown zone %q", p.zone))
		}
		off, err = zoneOffset(z, p.date, c)
		if err != nil {
			return nil, formatError(t, s, err.Error())
		}
	default:
		off, err = zoneOffset(loc, p.date, c)
		if err != nil {
			return nil, formatError(t, s, err.Error())
		}
	}
	return TimeTz{Time: c, Offset: off}, nil
}

// zoneOffset resolves a zone's UTC offset for the given wall clock, at the
// literal's own date when it carries one, else at the current date.
func zoneOffset(z *time.Location, dateStr string, c civil.Time) (int, error) {
	var y, mo, d int
	if dateStr != "" {
		var err error
		y, mo, d, err = parseDateFields(dateStr)
		if err != nil {
			return 0, err
		}
	} else {
		var m time.Month
		y, m, d = time.Now().In(z).Date()
		mo = int(m)
	}
	_, off := time.Date(y, time.Month(mo), d, c.Hour, c.Minute, c.Second, c.Nanosecond, z).Zone()
	return off, nil
}

func encodeTimeTz(v TimeTz) string {
	return fmt.Sprintf("'%02d:%02d:%02d%s%s'",
		v.Time.Hour, v.Time.Minute, v.Time.Second,
		formatMicros(int64(v.Time.Nanosecond)/1000), formatOffset(v.Offset))
}
